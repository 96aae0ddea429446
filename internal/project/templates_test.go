package project

import (
	"path/filepath"
	"testing"

	"github.com/piwi3910/TetraLog/internal/model"
)

func TestSaveAndLoadTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")

	m := model.NewManifest()
	m.Vehicle = "truck"
	m.Lines = append(m.Lines, model.NewManifestLine("Pallet", 80, 120, 100, 20, 10))

	store := model.NewTemplateStore()
	store.Add(model.NewManifestTemplate("Monday Ankara run", "Standing order", m))
	store.Add(model.NewManifestTemplate("Empty", "", model.NewManifest()))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates failed: %v", err)
	}
	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates failed: %v", err)
	}

	if len(loaded.Templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(loaded.Templates))
	}
	tmpl := loaded.FindByName("Monday Ankara run")
	if tmpl == nil {
		t.Fatal("expected to find template by name")
	}
	if tmpl.Vehicle != "truck" || len(tmpl.Lines) != 1 || tmpl.Lines[0].Quantity != 10 {
		t.Errorf("unexpected template %+v", tmpl)
	}
}

func TestLoadTemplates_NotFound(t *testing.T) {
	store, err := LoadTemplates(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if store.Templates == nil || len(store.Templates) != 0 {
		t.Errorf("expected empty store, got %+v", store)
	}
}
