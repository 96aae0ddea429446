package model

import (
	"testing"
)

func TestDefaultInventory(t *testing.T) {
	inv := DefaultInventory()
	if len(inv.Boxes) == 0 {
		t.Fatal("expected default box presets")
	}
	if inv.Vehicles == nil {
		t.Error("Vehicles should not be nil")
	}

	fragile := 0
	for _, b := range inv.Boxes {
		if b.ID == "" {
			t.Errorf("preset %q has no ID", b.Name)
		}
		if b.Fragile {
			fragile++
		}
	}
	if fragile != 1 {
		t.Errorf("expected exactly one fragile preset, got %d", fragile)
	}
}

func TestBoxPreset_ToManifestLine(t *testing.T) {
	bp := NewBoxPreset("Euro pallet", 80, 120, 100, 20)
	bp.Fragile = true
	bp.CanRotate = false

	l := bp.ToManifestLine("Ankara", 4)
	if l.Quantity != 4 {
		t.Errorf("expected quantity 4, got %d", l.Quantity)
	}
	if l.Destination != "Ankara" {
		t.Errorf("expected destination Ankara, got %s", l.Destination)
	}
	if l.Depth != 120 || l.Weight != 20 {
		t.Errorf("unexpected dims/weight %+v", l)
	}
	if !l.Fragile || l.CanRotate {
		t.Errorf("flags not carried over: fragile=%v rotate=%v", l.Fragile, l.CanRotate)
	}
	if l.ID == bp.ID {
		t.Error("manifest line should get its own ID")
	}
}

func TestInventoryLookups(t *testing.T) {
	inv := DefaultInventory()
	first := inv.Boxes[0]

	if got := inv.FindBoxByID(first.ID); got == nil || got.Name != first.Name {
		t.Errorf("FindBoxByID failed for %s", first.ID)
	}
	if got := inv.FindBoxByName(first.Name); got == nil || got.ID != first.ID {
		t.Errorf("FindBoxByName failed for %s", first.Name)
	}
	if inv.FindBoxByID("missing") != nil {
		t.Error("expected nil for unknown ID")
	}
	if names := inv.BoxNames(); len(names) != len(inv.Boxes) || names[0] != first.Name {
		t.Errorf("unexpected names %v", names)
	}

	v := NewVehicleType("Sprinter", 170, 430, 180, 1200)
	inv.Vehicles = append(inv.Vehicles, v)
	if got := inv.FindVehicleByID(v.ID); got == nil || got.Name != "Sprinter" {
		t.Error("FindVehicleByID failed")
	}
}
