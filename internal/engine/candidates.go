package engine

import (
	"sort"

	"github.com/piwi3910/TetraLog/internal/model"
)

// candidateSet holds the extreme points at which the next box's minimum
// corner may be tried. It lives for a single Pack call.
//
// Points are never merged or pruned, so a region may carry several points
// that get checked again on later items. Placement results depend on the
// exact point order, so pruning must not be added without keeping it.
type candidateSet struct {
	points []model.Vec3
	bounds model.Dims
}

func newCandidateSet(bounds model.Dims) *candidateSet {
	return &candidateSet{
		points: []model.Vec3{{X: 0, Y: 0, Z: 0}},
		bounds: bounds,
	}
}

// ordered sorts the working set by (Y, Z, X) ascending: fill the bay from the
// cab backwards, floor first, left to right. The returned slice is a snapshot
// that stays valid while the set is modified.
func (cs *candidateSet) ordered() []model.Vec3 {
	sort.Slice(cs.points, func(i, j int) bool {
		a, b := cs.points[i], cs.points[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.X < b.X
	})
	return append([]model.Vec3(nil), cs.points...)
}

// commit retires the point a box was placed at and derives the three points
// touching the box's right, front and top faces.
func (cs *candidateSet) commit(at model.Vec3, size model.Dims) {
	cs.remove(at)
	cs.add(model.Vec3{X: at.X + size.W, Y: at.Y, Z: at.Z})
	cs.add(model.Vec3{X: at.X, Y: at.Y + size.D, Z: at.Z})
	cs.add(model.Vec3{X: at.X, Y: at.Y, Z: at.Z + size.H})
}

// add inserts p if it lies strictly inside the bounds and is not present yet.
func (cs *candidateSet) add(p model.Vec3) {
	if p.X >= cs.bounds.W || p.Y >= cs.bounds.D || p.Z >= cs.bounds.H {
		return
	}
	if cs.contains(p) {
		return
	}
	cs.points = append(cs.points, p)
}

func (cs *candidateSet) remove(p model.Vec3) {
	for i, q := range cs.points {
		if q == p {
			cs.points = append(cs.points[:i], cs.points[i+1:]...)
			return
		}
	}
}

func (cs *candidateSet) contains(p model.Vec3) bool {
	for _, q := range cs.points {
		if q == p {
			return true
		}
	}
	return false
}

func (cs *candidateSet) count() int {
	return len(cs.points)
}
