package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/piwi3910/TetraLog/internal/model"
)

// ManifestExt is the file extension of saved manifests.
const ManifestExt = ".tetralog.json"

// SaveManifest writes a manifest, including its last plan if any, to path.
func SaveManifest(path string, m model.Manifest) error {
	if err := writeJSON(path, m); err != nil {
		return fmt.Errorf("save manifest: %w", err)
	}
	return nil
}

// LoadManifest reads a manifest from path. A saved plan is relinked so that
// the bay's placed sequence shares units with the plan's item list.
func LoadManifest(path string) (model.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Manifest{}, err
	}
	var m model.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return model.Manifest{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if m.Lines == nil {
		m.Lines = []model.ManifestLine{}
	}
	if m.Strategy == "" {
		m.Strategy = model.StrategyBalanced
	}
	if m.Plan != nil {
		if err := relinkPlan(m.Plan); err != nil {
			return model.Manifest{}, fmt.Errorf("manifest %s: %w", path, err)
		}
	}
	return m, nil
}

// relinkPlan replaces the decoded copies in Bay.Placed with the matching
// units from Items.
func relinkPlan(p *model.LoadPlan) error {
	if p.Bay == nil {
		return nil
	}
	for i, placed := range p.Bay.Placed {
		if placed.Index < 0 || placed.Index >= len(p.Items) {
			return fmt.Errorf("placed unit %d not in plan", placed.Index)
		}
		it := p.Items[placed.Index]
		if it.Index != placed.Index || it.Position == nil {
			return fmt.Errorf("placed unit %d does not match plan items", placed.Index)
		}
		p.Bay.Placed[i] = it
	}
	return nil
}
