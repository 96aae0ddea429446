package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_EffectiveDims(t *testing.T) {
	it := NewItem(0, "Box", 80, 120, 100, 20)
	assert.Equal(t, Dims{W: 80, D: 120, H: 100}, it.EffectiveDims())

	it.Rotated = true
	assert.Equal(t, Dims{W: 120, D: 80, H: 100}, it.EffectiveDims(), "rotation swaps width and depth only")
	assert.Equal(t, 960000.0, it.Volume())
}

func TestItem_Density(t *testing.T) {
	it := NewItem(0, "Box", 10, 10, 10, 50)
	assert.InDelta(t, 0.05, it.Density(), 1e-12)

	flat := NewItem(1, "Flat", 10, 10, 0, 50)
	assert.Equal(t, 0.0, flat.Density())
}

func TestItem_PlacedAndBox(t *testing.T) {
	it := NewItem(0, "Box", 80, 120, 100, 20)
	assert.False(t, it.Placed())

	it.Position = &Vec3{X: 10, Y: 20, Z: 30}
	it.Rotated = true
	assert.True(t, it.Placed())
	assert.Equal(t, Box{Origin: Vec3{X: 10, Y: 20, Z: 30}, Size: Dims{W: 120, D: 80, H: 100}}, it.Box())
}

func TestExpandManifest(t *testing.T) {
	a := NewManifestLine("A", 80, 120, 100, 20, 3)
	a.Destination = "Ankara"
	a.StopOrder = 2
	a.Fragile = true
	b := NewManifestLine("B", 100, 100, 150, 15, 2)
	b.CanRotate = false

	items := ExpandManifest([]ManifestLine{a, b})
	require.Len(t, items, 5)

	for i, it := range items {
		assert.Equal(t, i, it.Index, "indexes follow request order")
		assert.False(t, it.Placed())
	}
	assert.Equal(t, a.ID, items[2].LineID)
	assert.Equal(t, "Ankara", items[0].Destination)
	assert.True(t, items[1].Fragile)
	assert.Equal(t, 2, items[2].StopOrder)
	assert.False(t, items[4].CanRotate)

	// Units are independent instances.
	items[0].Position = &Vec3{}
	assert.False(t, items[1].Placed())
}

func TestExpandManifest_ZeroQuantity(t *testing.T) {
	items := ExpandManifest([]ManifestLine{NewManifestLine("A", 1, 1, 1, 1, 0)})
	assert.Empty(t, items)
}

func TestNewContainer_DefaultAxles(t *testing.T) {
	c := NewContainer(200, 1000, 250, 3500)
	assert.Equal(t, 100.0, c.AxleFront)
	assert.Equal(t, 850.0, c.AxleRear)
	assert.NotNil(t, c.Placed)
	assert.NoError(t, c.Validate())
}

func TestContainer_Validate(t *testing.T) {
	assert.Error(t, NewContainer(0, 1000, 250, 1).Validate())
	assert.Error(t, NewContainerWithAxles(200, 1000, 250, 1, 500, 500).Validate(), "zero wheelbase")
	assert.Error(t, NewContainerWithAxles(200, 1000, 250, 1, 600, 100).Validate(), "axles reversed")
	assert.NoError(t, NewContainerWithAxles(200, 1000, 250, 1, 100, 900).Validate())
}

func TestContainer_Totals(t *testing.T) {
	c := NewContainer(100, 100, 100, 30)
	a := NewItem(0, "A", 10, 10, 10, 20)
	b := NewItem(1, "B", 20, 10, 10, 15)
	c.Placed = append(c.Placed, a, b)

	assert.Equal(t, 3000.0, c.UsedVolume())
	assert.Equal(t, 1000000.0, c.TotalVolume())
	assert.Equal(t, 35.0, c.TotalWeight())
	assert.True(t, c.Overweight())
}

func TestContainer_Sequence(t *testing.T) {
	c := NewContainer(100, 100, 100, 30)
	c.Placed = append(c.Placed, NewItem(0, "A", 1, 1, 1, 1), NewItem(1, "B", 1, 1, 1, 1))

	assert.Len(t, c.Sequence(-1), 0)
	assert.Len(t, c.Sequence(1), 1)
	assert.Equal(t, "A", c.Sequence(1)[0].Label)
	assert.Len(t, c.Sequence(5), 2)
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"", StrategyBalanced, false},
		{"Balanced", StrategyBalanced, false},
		{"Balanced (LIFO)", StrategyBalanced, false},
		{"density", StrategyDensity, false},
		{"Density (Heavy Bottom)", StrategyDensity, false},
		{"D", StrategyDensity, false},
		{"random", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetVehicle(t *testing.T) {
	assert.Equal(t, "van", GetVehicle("van").ID)
	assert.Equal(t, "truck", GetVehicle("Truck (8m)").ID)
	assert.Equal(t, "trailer", GetVehicle("spaceship").ID, "unknown vehicles fall back to the trailer")

	_, ok := LookupVehicle("spaceship")
	assert.False(t, ok)
}

func TestCatalog(t *testing.T) {
	sprinter := NewVehicleType("Sprinter", 170, 430, 180, 1200)
	c := Catalog{}.WithCustom(sprinter)

	v, ok := c.Lookup("Sprinter")
	require.True(t, ok)
	assert.Equal(t, 1200.0, v.MaxWeight)
	assert.Equal(t, sprinter.ID, c.Get(sprinter.ID).ID)
	assert.Equal(t, "trailer", c.Get("spaceship").ID)
	assert.Contains(t, c.Names(), "Sprinter")
	assert.Len(t, c.All(), len(VehicleTypes)+1)

	_, ok = LookupVehicle("Sprinter")
	assert.False(t, ok, "package lookups only see built-in vehicles")
}

func TestCatalog_WithCustomDoesNotAlias(t *testing.T) {
	base := Catalog{Custom: make([]VehicleType, 1, 4)}
	base.Custom[0] = NewVehicleType("A", 100, 200, 100, 500)

	b := base.WithCustom(NewVehicleType("B", 100, 200, 100, 500))
	c := base.WithCustom(NewVehicleType("C", 100, 200, 100, 500))

	assert.Len(t, base.Custom, 1)
	assert.Equal(t, "B", b.Custom[1].Name)
	assert.Equal(t, "C", c.Custom[1].Name)
}

func TestVehicleType_NewContainer(t *testing.T) {
	c := GetVehicle("trailer").NewContainer()
	assert.Equal(t, Dims{W: 240, D: 1360, H: 270}, c.Dims)
	assert.Equal(t, 24000.0, c.MaxWeight)
	assert.Equal(t, 100.0, c.AxleFront)
	assert.Equal(t, 1210.0, c.AxleRear)

	v := NewVehicleType("Custom", 200, 600, 200, 5000)
	v.AxleFront = 50
	v.AxleRear = 500
	c = v.NewContainer()
	assert.Equal(t, 50.0, c.AxleFront)
	assert.Equal(t, 500.0, c.AxleRear)
}

func TestLoadSummary(t *testing.T) {
	s := LoadSummary{
		Requested:   10,
		Fitted:      8,
		UsedVolume:  2_500_000,
		TotalVolume: 10_000_000,
		TotalWeight: 4000,
		MaxWeight:   3500,
		FrontAxle:   1000,
		RearAxle:    3000,
	}

	assert.Equal(t, 2, s.Unplaced())
	assert.InDelta(t, 0.8, s.FillRate(), 1e-12)
	assert.InDelta(t, 2.5, s.UsedVolumeM3(), 1e-12)
	assert.InDelta(t, 25.0, s.VolumeUsage(), 1e-12)
	assert.True(t, s.Overweight())
	assert.InDelta(t, 0.25, s.FrontShare(), 1e-12)

	var empty LoadSummary
	assert.Equal(t, 0.0, empty.FillRate())
	assert.Equal(t, 0.0, empty.VolumeUsage())
	assert.Equal(t, 0.0, empty.FrontShare())
}

func TestLoadPlan_UnplacedItems(t *testing.T) {
	a := NewItem(0, "A", 1, 1, 1, 1)
	b := NewItem(1, "B", 1, 1, 1, 1)
	a.Position = &Vec3{}
	plan := LoadPlan{Items: []*Item{a, b}}

	unplaced := plan.UnplacedItems()
	require.Len(t, unplaced, 1)
	assert.Equal(t, 1, unplaced[0].Index)
}

func TestItemWeightOpacity(t *testing.T) {
	assert.Equal(t, 0.4, ItemWeightOpacity(10))
	assert.Equal(t, 0.5, ItemWeightOpacity(250))
	assert.Equal(t, 1.0, ItemWeightOpacity(900))
}

func TestManifest_CopyAndTotals(t *testing.T) {
	m := NewManifest()
	m.Lines = append(m.Lines, NewManifestLine("A", 1, 1, 1, 1, 3), NewManifestLine("B", 1, 1, 1, 1, 2))
	m.Plan = &LoadPlan{}

	assert.Equal(t, 5, m.TotalUnits())

	cp := m.Copy()
	cp.Lines[0].Quantity = 99
	assert.Equal(t, 3, m.Lines[0].Quantity)
	assert.Nil(t, cp.Plan)
}
