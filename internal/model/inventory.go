package model

import "github.com/google/uuid"

// BoxPreset is a reusable package size, e.g. a standard pallet.
type BoxPreset struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Width     float64 `json:"width"`
	Depth     float64 `json:"depth"`
	Height    float64 `json:"height"`
	Weight    float64 `json:"weight"` // Typical gross weight in kg
	Fragile   bool    `json:"fragile"`
	CanRotate bool    `json:"can_rotate"`
}

// NewBoxPreset creates a new BoxPreset with a generated ID.
func NewBoxPreset(name string, w, d, h, weight float64) BoxPreset {
	return BoxPreset{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Width:     w,
		Depth:     d,
		Height:    h,
		Weight:    weight,
		CanRotate: true,
	}
}

// ToManifestLine converts the preset into a manifest line for a destination.
func (bp BoxPreset) ToManifestLine(destination string, qty int) ManifestLine {
	l := NewManifestLine(bp.Name, bp.Width, bp.Depth, bp.Height, bp.Weight, qty)
	l.Destination = destination
	l.Fragile = bp.Fragile
	l.CanRotate = bp.CanRotate
	return l
}

// Inventory holds the user's saved box presets and vehicles.
type Inventory struct {
	Boxes    []BoxPreset   `json:"boxes"`
	Vehicles []VehicleType `json:"vehicles"`
}

// DefaultInventory returns an inventory populated with common defaults.
func DefaultInventory() Inventory {
	glass := NewBoxPreset("Glassware crate 60x40x40", 60, 40, 40, 25)
	glass.Fragile = true
	return Inventory{
		Boxes: []BoxPreset{
			NewBoxPreset("Euro pallet 80x120", 80, 120, 100, 20),
			NewBoxPreset("Industrial pallet 100x120", 100, 120, 150, 15),
			NewBoxPreset("Half pallet 60x80", 60, 80, 100, 12),
			NewBoxPreset("Carton 60x40x40", 60, 40, 40, 8),
			glass,
		},
		Vehicles: []VehicleType{},
	}
}

// FindBoxByID returns a pointer to the preset with the given ID, or nil.
func (inv *Inventory) FindBoxByID(id string) *BoxPreset {
	for i := range inv.Boxes {
		if inv.Boxes[i].ID == id {
			return &inv.Boxes[i]
		}
	}
	return nil
}

// FindBoxByName returns a pointer to the first preset with the given name, or nil.
func (inv *Inventory) FindBoxByName(name string) *BoxPreset {
	for i := range inv.Boxes {
		if inv.Boxes[i].Name == name {
			return &inv.Boxes[i]
		}
	}
	return nil
}

// BoxNames returns the preset names in catalogue order.
func (inv *Inventory) BoxNames() []string {
	names := make([]string, len(inv.Boxes))
	for i, b := range inv.Boxes {
		names[i] = b.Name
	}
	return names
}

// FindVehicleByID returns a pointer to the custom vehicle with the given ID, or nil.
func (inv *Inventory) FindVehicleByID(id string) *VehicleType {
	for i := range inv.Vehicles {
		if inv.Vehicles[i].ID == id {
			return &inv.Vehicles[i]
		}
	}
	return nil
}
