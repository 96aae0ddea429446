// Package engine places cargo units in a vehicle bay and computes the
// resulting axle loads.
package engine

import (
	"github.com/piwi3910/TetraLog/internal/model"
)

// Packer runs the greedy extreme-point loading heuristic for one bay.
// A Packer and its Container must not be shared between goroutines.
type Packer struct {
	Container *model.Container

	// Stats of the last Pack call.
	Stats PackStats
}

// PackStats counts the work done by a Pack call.
type PackStats struct {
	Trials     int               // (point, rotation) pairs evaluated
	Rejections map[Rejection]int // Failed trials by reason
	Placed     int
	Skipped    int
	Candidates int // Candidate points left after the run
}

func New(container *model.Container) *Packer {
	return &Packer{Container: container}
}

// Pack loads items into the container, mutating the position and rotation of
// each unit that fits and appending it to Container.Placed. Units that do not
// fit anywhere keep a nil Position and are not retried.
//
// The caller's slice is not reordered; loading order is decided by strategy.
func (p *Packer) Pack(items []*model.Item, strategy model.Strategy) {
	p.Stats = PackStats{Rejections: make(map[Rejection]int)}
	candidates := newCandidateSet(p.Container.Dims)

	for _, item := range orderItems(items, strategy) {
		if item.Placed() {
			// Placement state is written once; a unit already loaded
			// elsewhere is not moved.
			continue
		}
		if p.place(item, candidates) {
			p.Stats.Placed++
		} else {
			p.Stats.Skipped++
		}
	}
	p.Stats.Candidates = candidates.count()
}

// place tries every candidate point, un-rotated first, and commits the first
// admissible placement.
func (p *Packer) place(item *model.Item, candidates *candidateSet) bool {
	rotations := []bool{false}
	if item.CanRotate {
		rotations = append(rotations, true)
	}

	for _, point := range candidates.ordered() {
		for _, rotated := range rotations {
			size := item.Dims
			if rotated {
				size = size.Swapped()
			}
			box := model.Box{Origin: point, Size: size}

			p.Stats.Trials++
			if r := CheckPlacement(p.Container, box); r != Accepted {
				p.Stats.Rejections[r]++
				continue
			}

			pos := point
			item.Position = &pos
			item.Rotated = rotated
			p.Container.Placed = append(p.Container.Placed, item)
			candidates.commit(point, size)
			return true
		}
	}
	return false
}

// Unplaced returns the units of items that Pack left out, in input order.
func Unplaced(items []*model.Item) []*model.Item {
	var out []*model.Item
	for _, it := range items {
		if !it.Placed() {
			out = append(out, it)
		}
	}
	return out
}

// CalculateAxleLoads returns the front and rear axle loads of the packed container.
func (p *Packer) CalculateAxleLoads() (front, rear float64) {
	return CalculateAxleLoads(p.Container)
}
