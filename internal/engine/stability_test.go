package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/TetraLog/internal/model"
)

func placedAt(x, y, z, w, d, h float64) *model.Item {
	it := model.NewItem(0, "Base", w, d, h, 10)
	it.Position = &model.Vec3{X: x, Y: y, Z: z}
	return it
}

func TestCheckSupport_FloorAlwaysValid(t *testing.T) {
	box := model.Box{Size: model.Dims{W: 10, D: 10, H: 10}}
	assert.Equal(t, Accepted, checkSupport(nil, box))
}

func TestCheckSupport_Threshold(t *testing.T) {
	base := placedAt(0, 0, 0, 100, 100, 50)

	// 60 x 100 of a 100 x 100 footprint rests on the base.
	at60 := model.Box{Origin: model.Vec3{X: 40, Y: 0, Z: 50}, Size: model.Dims{W: 100, D: 100, H: 20}}
	assert.Equal(t, Accepted, checkSupport([]*model.Item{base}, at60), "60% support is enough")

	// 59 x 100 rests on the base.
	at59 := model.Box{Origin: model.Vec3{X: 41, Y: 0, Z: 50}, Size: model.Dims{W: 100, D: 100, H: 20}}
	assert.Equal(t, Unsupported, checkSupport([]*model.Item{base}, at59), "59% support is not")
}

func TestCheckSupport_SumsSeveralSupports(t *testing.T) {
	left := placedAt(0, 0, 0, 50, 100, 50)
	right := placedAt(70, 0, 0, 30, 100, 50)

	// 50% + 30% of the footprint.
	box := model.Box{Origin: model.Vec3{X: 0, Y: 0, Z: 50}, Size: model.Dims{W: 100, D: 100, H: 10}}
	assert.Equal(t, Accepted, checkSupport([]*model.Item{left, right}, box))
	assert.Equal(t, Unsupported, checkSupport([]*model.Item{left}, box))
}

func TestCheckSupport_Tolerance(t *testing.T) {
	base := placedAt(0, 0, 0, 100, 100, 50)
	size := model.Dims{W: 100, D: 100, H: 10}

	near := model.Box{Origin: model.Vec3{Z: 50.05}, Size: size}
	assert.Equal(t, Accepted, checkSupport([]*model.Item{base}, near))

	far := model.Box{Origin: model.Vec3{Z: 50.1}, Size: size}
	assert.Equal(t, Unsupported, checkSupport([]*model.Item{base}, far), "a gap of 0.1 is not contact")
}

func TestCheckSupport_Fragile(t *testing.T) {
	sturdy := placedAt(0, 0, 0, 100, 100, 50)
	glass := placedAt(100, 0, 0, 10, 100, 50)
	glass.Fragile = true

	// Full support from the sturdy box plus a sliver over the glass.
	box := model.Box{Origin: model.Vec3{X: 5, Y: 0, Z: 50}, Size: model.Dims{W: 100, D: 100, H: 10}}
	assert.Equal(t, OnFragile, checkSupport([]*model.Item{sturdy, glass}, box),
		"any contact with a fragile box rejects regardless of area")

	// A fragile box at the same height but not underneath is irrelevant.
	clear := model.Box{Origin: model.Vec3{X: 0, Y: 0, Z: 50}, Size: model.Dims{W: 100, D: 100, H: 10}}
	assert.Equal(t, Accepted, checkSupport([]*model.Item{sturdy, glass}, clear))
}

func TestCheckSupport_IgnoresBoxesAtOtherHeights(t *testing.T) {
	low := placedAt(0, 0, 0, 100, 100, 20)
	box := model.Box{Origin: model.Vec3{Z: 50}, Size: model.Dims{W: 100, D: 100, H: 10}}
	assert.Equal(t, Unsupported, checkSupport([]*model.Item{low}, box), "floating boxes are unsupported")
}

func TestCheckFit(t *testing.T) {
	c := model.NewContainer(100, 100, 100, 1000)
	c.Placed = append(c.Placed, placedAt(0, 0, 0, 50, 50, 50))

	assert.Equal(t, OutOfBounds, checkFit(c, model.Box{Origin: model.Vec3{X: 60}, Size: model.Dims{W: 50, D: 10, H: 10}}))
	assert.Equal(t, Collision, checkFit(c, model.Box{Origin: model.Vec3{X: 49}, Size: model.Dims{W: 10, D: 10, H: 10}}))
	assert.Equal(t, Accepted, checkFit(c, model.Box{Origin: model.Vec3{X: 50}, Size: model.Dims{W: 10, D: 10, H: 10}}),
		"touching faces is allowed")
}

func TestCheckPlacement_Order(t *testing.T) {
	c := model.NewContainer(100, 100, 100, 1000)
	glass := placedAt(0, 0, 0, 100, 100, 50)
	glass.Fragile = true
	c.Placed = append(c.Placed, glass)

	assert.Equal(t, OutOfBounds, CheckPlacement(c, model.Box{Origin: model.Vec3{Z: 50}, Size: model.Dims{W: 100, D: 100, H: 60}}),
		"bounds are checked before support")
	assert.Equal(t, OnFragile, CheckPlacement(c, model.Box{Origin: model.Vec3{Z: 50}, Size: model.Dims{W: 100, D: 100, H: 50}}))
}

func TestRejectionString(t *testing.T) {
	assert.Equal(t, "accepted", Accepted.String())
	assert.Equal(t, "on fragile", OnFragile.String())
	assert.Equal(t, "unsupported", Unsupported.String())
}
