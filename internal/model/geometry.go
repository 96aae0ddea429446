package model

// Vec3 is a point in container space in cm.
// X runs along the width, Y along the depth (cab to doors) and Z up from the floor.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Dims holds box extents along the width, depth and height axes.
type Dims struct {
	W float64 `json:"w"`
	D float64 `json:"d"`
	H float64 `json:"h"`
}

// Swapped returns the dims turned 90° about the vertical axis.
func (d Dims) Swapped() Dims {
	return Dims{W: d.D, D: d.W, H: d.H}
}

// Volume returns w·d·h.
func (d Dims) Volume() float64 {
	return d.W * d.D * d.H
}

// Footprint returns the floor area w·d.
func (d Dims) Footprint() float64 {
	return d.W * d.D
}

// Box is an axis-aligned box anchored at its minimum corner.
type Box struct {
	Origin Vec3
	Size   Dims
}

// Max returns the corner opposite the origin.
func (b Box) Max() Vec3 {
	return Vec3{X: b.Origin.X + b.Size.W, Y: b.Origin.Y + b.Size.D, Z: b.Origin.Z + b.Size.H}
}

// Top returns the height of the box's upper face.
func (b Box) Top() float64 {
	return b.Origin.Z + b.Size.H
}

// Within reports whether the box lies inside a space of the given bounds
// anchored at the origin.
func (b Box) Within(bounds Dims) bool {
	m := b.Max()
	return m.X <= bounds.W && m.Y <= bounds.D && m.Z <= bounds.H
}

// Overlaps returns true if the boxes share volume. Boxes that only touch
// at a face, edge or corner do not overlap.
func (b Box) Overlaps(o Box) bool {
	bm, om := b.Max(), o.Max()
	return b.Origin.X < om.X && bm.X > o.Origin.X &&
		b.Origin.Y < om.Y && bm.Y > o.Origin.Y &&
		b.Origin.Z < om.Z && bm.Z > o.Origin.Z
}

// FootprintOverlap returns the area shared by the two boxes' projections
// onto the floor plane.
func (b Box) FootprintOverlap(o Box) float64 {
	bm, om := b.Max(), o.Max()
	dx := min(bm.X, om.X) - max(b.Origin.X, o.Origin.X)
	dy := min(bm.Y, om.Y) - max(b.Origin.Y, o.Origin.Y)
	if dx <= 0 || dy <= 0 {
		return 0
	}
	return dx * dy
}
