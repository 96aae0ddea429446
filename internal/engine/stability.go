package engine

import "github.com/piwi3910/TetraLog/internal/model"

// Physical placement rules.
const (
	// MinSupportRatio is the share of a box's footprint that must rest on
	// boxes directly below it. The boundary itself is accepted.
	MinSupportRatio = 0.60

	// ContactTolerance is how close (cm) a lower box's top face must be to
	// the candidate's bottom face to count as directly underneath.
	ContactTolerance = 0.1
)

// Rejection names the first rule a trial placement broke.
type Rejection int

const (
	Accepted      Rejection = iota
	OutOfBounds             // Box sticks out of the bay
	Collision               // Box shares volume with a placed box
	OnFragile               // Box would rest on a fragile box
	Unsupported             // Less than MinSupportRatio of the footprint is supported
)

func (r Rejection) String() string {
	switch r {
	case OutOfBounds:
		return "out of bounds"
	case Collision:
		return "collision"
	case OnFragile:
		return "on fragile"
	case Unsupported:
		return "unsupported"
	default:
		return "accepted"
	}
}

// checkFit tests the boundary and overlap rules for a box against the bay.
func checkFit(c *model.Container, candidate model.Box) Rejection {
	if !candidate.Within(c.Dims) {
		return OutOfBounds
	}
	for _, p := range c.Placed {
		if candidate.Overlaps(p.Box()) {
			return Collision
		}
	}
	return Accepted
}

// checkSupport tests the stability and fragility rules for a box against
// the boxes already placed. It has no state between calls.
func checkSupport(placed []*model.Item, candidate model.Box) Rejection {
	bottom := candidate.Origin.Z
	if bottom == 0 {
		return Accepted
	}

	var contact float64
	for _, p := range placed {
		pb := p.Box()
		if abs(pb.Top()-bottom) >= ContactTolerance {
			continue
		}
		area := candidate.FootprintOverlap(pb)
		if area <= 0 {
			continue
		}
		if p.Fragile {
			return OnFragile
		}
		contact += area
	}

	if contact/candidate.Size.Footprint() < MinSupportRatio {
		return Unsupported
	}
	return Accepted
}

// CheckPlacement runs every placement rule for a box in the given bay, in
// the order the packer applies them.
func CheckPlacement(c *model.Container, candidate model.Box) Rejection {
	if r := checkFit(c, candidate); r != Accepted {
		return r
	}
	return checkSupport(c.Placed, candidate)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
