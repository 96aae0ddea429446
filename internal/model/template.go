package model

import (
	"time"

	"github.com/google/uuid"
)

// ManifestTemplate is a reusable load request, e.g. a weekly standing
// order. It captures the lines, vehicle and strategy but never a plan.
type ManifestTemplate struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
	Vehicle     string         `json:"vehicle"`
	Strategy    Strategy       `json:"strategy"`
	Lines       []ManifestLine `json:"lines"`
}

// NewManifestTemplate creates a template from the given manifest.
func NewManifestTemplate(name, description string, m Manifest) ManifestTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return ManifestTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Vehicle:     m.Vehicle,
		Strategy:    m.Strategy,
		Lines:       copyLines(m.Lines),
	}
}

// ToManifest creates a new Manifest from this template.
// Lines get fresh IDs so they are independent of the template.
func (t ManifestTemplate) ToManifest(name string) Manifest {
	lines := make([]ManifestLine, len(t.Lines))
	for i, l := range t.Lines {
		lines[i] = l
		lines[i].ID = uuid.New().String()[:8]
	}
	m := NewManifest()
	m.Name = name
	m.Vehicle = t.Vehicle
	m.Strategy = t.Strategy
	m.Lines = lines
	return m
}

// TemplateStore holds a collection of manifest templates.
type TemplateStore struct {
	Templates []ManifestTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []ManifestTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t ManifestTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *ManifestTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *ManifestTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

func copyLines(lines []ManifestLine) []ManifestLine {
	if lines == nil {
		return []ManifestLine{}
	}
	cp := make([]ManifestLine, len(lines))
	copy(cp, lines)
	return cp
}
