package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Strategy selects the ordering policy applied before packing.
type Strategy string

const (
	StrategyBalanced Strategy = "balanced" // Later stops first, then larger volume
	StrategyDensity  Strategy = "density"  // Later stops first, then denser, then larger volume
)

func (s Strategy) String() string {
	switch s {
	case StrategyDensity:
		return "Density (Heavy Bottom)"
	default:
		return "Balanced (LIFO)"
	}
}

// Strategies lists the supported strategies in display order.
var Strategies = []Strategy{StrategyBalanced, StrategyDensity}

// ParseStrategy converts user input to a Strategy. It accepts the canonical
// names, their display names and the first letter.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "balanced", "b", "lifo", "balanced (lifo)":
		return StrategyBalanced, nil
	case "density", "d", "heavy", "density (heavy bottom)":
		return StrategyDensity, nil
	default:
		return "", fmt.Errorf("unknown strategy %q", s)
	}
}

// ManifestLine is one row of the load manifest. Quantity units of identical
// boxes are requested for the same destination.
type ManifestLine struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Width       float64 `json:"width"`  // cm
	Depth       float64 `json:"depth"`  // cm (length along the bay)
	Height      float64 `json:"height"` // cm
	Weight      float64 `json:"weight"` // kg per unit
	Quantity    int     `json:"quantity"`
	Destination string  `json:"destination"`
	StopOrder   int     `json:"stop_order"` // Higher = unloaded later
	Color       string  `json:"color"`
	Fragile     bool    `json:"fragile"`
	CanRotate   bool    `json:"can_rotate"`
}

func NewManifestLine(label string, w, d, h, weight float64, qty int) ManifestLine {
	return ManifestLine{
		ID:        uuid.New().String()[:8],
		Label:     label,
		Width:     w,
		Depth:     d,
		Height:    h,
		Weight:    weight,
		Quantity:  qty,
		CanRotate: true,
	}
}

// Item is a single physical box to be loaded.
type Item struct {
	Index       int     `json:"index"`   // Position in the expanded request; stable handle
	LineID      string  `json:"line_id"` // ManifestLine the unit came from
	Label       string  `json:"label"`
	Dims        Dims    `json:"dims"` // Nominal dimensions
	Weight      float64 `json:"weight"`
	Destination string  `json:"destination"`
	StopOrder   int     `json:"stop_order"`
	Color       string  `json:"color"`
	Fragile     bool    `json:"fragile"`
	CanRotate   bool    `json:"can_rotate"`

	// Placement state, written once by the packer.
	Position *Vec3 `json:"position,omitempty"` // nil while unplaced
	Rotated  bool  `json:"rotated"`            // Width and depth swapped
}

// NewItem creates an unplaced item with the given nominal dimensions.
func NewItem(index int, label string, w, d, h, weight float64) *Item {
	return &Item{
		Index:     index,
		Label:     label,
		Dims:      Dims{W: w, D: d, H: h},
		Weight:    weight,
		CanRotate: true,
	}
}

// Volume returns the nominal volume; rotation does not change it.
func (it *Item) Volume() float64 {
	return it.Dims.Volume()
}

// Density returns weight per unit volume, or 0 for a degenerate box.
func (it *Item) Density() float64 {
	v := it.Volume()
	if v == 0 {
		return 0
	}
	return it.Weight / v
}

// EffectiveDims returns the dimensions after applying the rotation flag.
func (it *Item) EffectiveDims() Dims {
	if it.Rotated {
		return it.Dims.Swapped()
	}
	return it.Dims
}

// Placed reports whether the packer assigned a position.
func (it *Item) Placed() bool {
	return it.Position != nil
}

// Box returns the occupied space. Only meaningful once placed.
func (it *Item) Box() Box {
	var origin Vec3
	if it.Position != nil {
		origin = *it.Position
	}
	return Box{Origin: origin, Size: it.EffectiveDims()}
}

// ExpandManifest turns manifest lines into one independent Item per
// requested unit. Index values follow line order, then unit order.
func ExpandManifest(lines []ManifestLine) []*Item {
	var items []*Item
	for _, l := range lines {
		for i := 0; i < l.Quantity; i++ {
			items = append(items, &Item{
				Index:       len(items),
				LineID:      l.ID,
				Label:       l.Label,
				Dims:        Dims{W: l.Width, D: l.Depth, H: l.Height},
				Weight:      l.Weight,
				Destination: l.Destination,
				StopOrder:   l.StopOrder,
				Color:       l.Color,
				Fragile:     l.Fragile,
				CanRotate:   l.CanRotate,
			})
		}
	}
	return items
}

// Default axle reference positions relative to the bay, in cm.
const (
	DefaultAxleFront      = 100.0 // Front axle, measured from the cab wall
	DefaultAxleRearOffset = 150.0 // Rear axle, measured back from the doors
)

// Container is the loading space of a vehicle.
type Container struct {
	Dims      Dims    `json:"dims"`
	MaxWeight float64 `json:"max_weight"` // kg payload
	AxleFront float64 `json:"axle_front"` // Y coordinate of the front axle
	AxleRear  float64 `json:"axle_rear"`  // Y coordinate of the rear axle

	// Placed items in placement order. Append-only while packing.
	Placed []*Item `json:"placed"`
}

// NewContainer creates an empty container with the default axle positions.
func NewContainer(w, d, h, maxWeight float64) *Container {
	return NewContainerWithAxles(w, d, h, maxWeight, DefaultAxleFront, d-DefaultAxleRearOffset)
}

// NewContainerWithAxles creates an empty container with explicit axle positions.
// Callers must pass front < rear.
func NewContainerWithAxles(w, d, h, maxWeight, front, rear float64) *Container {
	return &Container{
		Dims:      Dims{W: w, D: d, H: h},
		MaxWeight: maxWeight,
		AxleFront: front,
		AxleRear:  rear,
		Placed:    []*Item{},
	}
}

// Validate checks the preconditions the packer and axle calculator rely on.
func (c *Container) Validate() error {
	if c.Dims.W <= 0 || c.Dims.D <= 0 || c.Dims.H <= 0 {
		return fmt.Errorf("container dimensions must be positive, got %.1fx%.1fx%.1f", c.Dims.W, c.Dims.D, c.Dims.H)
	}
	if c.AxleRear <= c.AxleFront {
		return fmt.Errorf("rear axle (%.1f) must be behind front axle (%.1f)", c.AxleRear, c.AxleFront)
	}
	return nil
}

// TotalVolume returns the interior volume.
func (c *Container) TotalVolume() float64 {
	return c.Dims.Volume()
}

// UsedVolume returns the volume taken by placed items.
func (c *Container) UsedVolume() float64 {
	var total float64
	for _, it := range c.Placed {
		total += it.Volume()
	}
	return total
}

// TotalWeight returns the summed weight of placed items.
func (c *Container) TotalWeight() float64 {
	var total float64
	for _, it := range c.Placed {
		total += it.Weight
	}
	return total
}

// Overweight reports whether the loaded weight exceeds the payload limit.
func (c *Container) Overweight() bool {
	return c.TotalWeight() > c.MaxWeight
}

// Sequence returns the first step placed items, i.e. the state of the bay
// after step loading operations. step is clamped to [0, len(Placed)].
func (c *Container) Sequence(step int) []*Item {
	if step < 0 {
		step = 0
	}
	if step > len(c.Placed) {
		step = len(c.Placed)
	}
	return c.Placed[:step]
}
