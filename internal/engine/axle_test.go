package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/TetraLog/internal/model"
)

func TestCalculateAxleLoads_Centered(t *testing.T) {
	c := model.NewContainer(200, 1000, 250, 3500)
	assert.Equal(t, 100.0, c.AxleFront)
	assert.Equal(t, 850.0, c.AxleRear)

	// Centre of gravity at 475, midway between the axles.
	it := placedAt(0, 450, 0, 50, 50, 50)
	it.Weight = 100
	c.Placed = append(c.Placed, it)

	front, rear := CalculateAxleLoads(c)
	assert.InDelta(t, 50.0, front, 1e-9)
	assert.InDelta(t, 50.0, rear, 1e-9)
	assert.InDelta(t, 475.0, LoadCenter(c), 1e-9)
}

func TestCalculateAxleLoads_Empty(t *testing.T) {
	c := model.NewContainer(200, 1000, 250, 3500)
	front, rear := CalculateAxleLoads(c)
	assert.Zero(t, front)
	assert.Zero(t, rear)

	weightless := placedAt(0, 0, 0, 10, 10, 10)
	weightless.Weight = 0
	c.Placed = append(c.Placed, weightless)
	front, rear = CalculateAxleLoads(c)
	assert.Zero(t, front)
	assert.Zero(t, rear)
}

func TestCalculateAxleLoads_OverFrontAxle(t *testing.T) {
	c := model.NewContainerWithAxles(100, 1000, 100, 1000, 100, 900)
	it := placedAt(0, 50, 0, 100, 100, 100)
	it.Weight = 200
	c.Placed = append(c.Placed, it)

	front, rear := CalculateAxleLoads(c)
	assert.InDelta(t, 200.0, front, 1e-9)
	assert.InDelta(t, 0.0, rear, 1e-9)
}

func TestCalculateAxleLoads_OutsideWheelbase(t *testing.T) {
	// Load behind the rear axle lifts the front: negative front load is
	// reported as is.
	c := model.NewContainerWithAxles(100, 1000, 100, 1000, 100, 500)
	it := placedAt(0, 850, 0, 100, 100, 100)
	it.Weight = 100
	c.Placed = append(c.Placed, it)

	front, rear := CalculateAxleLoads(c)
	assert.InDelta(t, -100.0, front, 1e-9)
	assert.InDelta(t, 200.0, rear, 1e-9)
}

func TestCalculateAxleLoads_UsesRotatedDepth(t *testing.T) {
	c := model.NewContainer(200, 1000, 250, 3500)
	it := placedAt(0, 0, 0, 200, 50, 50)
	it.Weight = 100
	it.Rotated = true
	c.Placed = append(c.Placed, it)

	// Rotated depth is 200, so the centre sits at 100, over the front axle.
	assert.InDelta(t, 100.0, LoadCenter(c), 1e-9)
	front, _ := CalculateAxleLoads(c)
	assert.InDelta(t, 100.0, front, 1e-9)
}

func TestSummarize(t *testing.T) {
	c := model.NewContainer(100, 100, 100, 15)
	items := []*model.Item{item(0, 50, 50, 50, 10), item(1, 50, 50, 50, 10), item(2, 200, 10, 10, 1)}
	items[2].CanRotate = false

	p := New(c)
	p.Pack(items, model.StrategyBalanced)
	s := Summarize(c, len(items))

	assert.Equal(t, 3, s.Requested)
	assert.Equal(t, 2, s.Fitted)
	assert.Equal(t, 1, s.Unplaced())
	assert.Equal(t, 250000.0, s.UsedVolume)
	assert.Equal(t, 1_000_000.0, s.TotalVolume)
	assert.InDelta(t, 25.0, s.VolumeUsage(), 1e-9)
	assert.Equal(t, 20.0, s.TotalWeight)
	assert.True(t, s.Overweight(), "overweight is flagged, not enforced")
	assert.InDelta(t, s.TotalWeight, s.FrontAxle+s.RearAxle, 1e-9)

	front, rear := p.CalculateAxleLoads()
	assert.Equal(t, s.FrontAxle, front)
	assert.Equal(t, s.RearAxle, rear)
}
