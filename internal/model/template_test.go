package model

import (
	"testing"
)

func testManifest() Manifest {
	m := NewManifest()
	m.Vehicle = "truck"
	m.Strategy = StrategyDensity
	m.Lines = []ManifestLine{
		NewManifestLine("Pallet", 80, 120, 100, 20, 2),
		NewManifestLine("Crate", 60, 40, 40, 8, 5),
	}
	return m
}

func TestNewManifestTemplate(t *testing.T) {
	tmpl := NewManifestTemplate("Weekly Ankara", "Standing order", testManifest())

	if tmpl.Name != "Weekly Ankara" {
		t.Errorf("expected name 'Weekly Ankara', got %q", tmpl.Name)
	}
	if tmpl.ID == "" {
		t.Error("expected non-empty ID")
	}
	if tmpl.CreatedAt == "" || tmpl.UpdatedAt == "" {
		t.Error("expected timestamps")
	}
	if len(tmpl.Lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(tmpl.Lines))
	}
	if tmpl.Vehicle != "truck" || tmpl.Strategy != StrategyDensity {
		t.Errorf("vehicle/strategy not captured: %s %s", tmpl.Vehicle, tmpl.Strategy)
	}
}

func TestNewManifestTemplate_NilLines(t *testing.T) {
	m := NewManifest()
	m.Lines = nil
	tmpl := NewManifestTemplate("Empty", "", m)
	if tmpl.Lines == nil {
		t.Error("template lines should never be nil")
	}
}

func TestManifestTemplate_ToManifest(t *testing.T) {
	src := testManifest()
	tmpl := NewManifestTemplate("T", "", src)
	m := tmpl.ToManifest("Monday")

	if m.Name != "Monday" {
		t.Errorf("expected name Monday, got %s", m.Name)
	}
	if m.Vehicle != "truck" || m.Strategy != StrategyDensity {
		t.Errorf("unexpected vehicle/strategy %s %s", m.Vehicle, m.Strategy)
	}
	if len(m.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(m.Lines))
	}
	if m.Lines[0].ID == tmpl.Lines[0].ID {
		t.Error("expected fresh line IDs")
	}
	m.Lines[0].Quantity = 42
	if tmpl.Lines[0].Quantity == 42 {
		t.Error("manifest lines alias the template")
	}
}

func TestTemplateStore(t *testing.T) {
	store := NewTemplateStore()
	a := NewManifestTemplate("A", "", testManifest())
	b := NewManifestTemplate("B", "", testManifest())
	store.Add(a)
	store.Add(b)

	if got := store.FindByName("B"); got == nil || got.ID != b.ID {
		t.Error("FindByName failed")
	}
	if got := store.FindByID(a.ID); got == nil || got.Name != "A" {
		t.Error("FindByID failed")
	}
	if names := store.Names(); len(names) != 2 || names[0] != "A" {
		t.Errorf("unexpected names %v", names)
	}
	if !store.Remove(a.ID) {
		t.Error("expected Remove to succeed")
	}
	if store.Remove(a.ID) {
		t.Error("expected second Remove to fail")
	}
	if len(store.Templates) != 1 {
		t.Errorf("expected 1 template left, got %d", len(store.Templates))
	}
}
