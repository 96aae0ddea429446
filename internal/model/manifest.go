package model

// Manifest ties a load request together for save/load.
type Manifest struct {
	Name     string         `json:"name"`
	Vehicle  string         `json:"vehicle"` // VehicleType ID or name
	Strategy Strategy       `json:"strategy"`
	Lines    []ManifestLine `json:"lines"`
	Plan     *LoadPlan      `json:"plan,omitempty"`
}

func NewManifest() Manifest {
	return Manifest{
		Name:     "Untitled",
		Vehicle:  VehicleTypes[0].ID,
		Strategy: StrategyBalanced,
		Lines:    []ManifestLine{},
	}
}

// TotalUnits returns the number of units requested across all lines.
func (m Manifest) TotalUnits() int {
	total := 0
	for _, l := range m.Lines {
		total += l.Quantity
	}
	return total
}

// Copy returns a manifest whose lines can be modified independently.
// The plan is dropped since it belongs to the original lines.
func (m Manifest) Copy() Manifest {
	cp := m
	cp.Lines = append([]ManifestLine(nil), m.Lines...)
	cp.Plan = nil
	return cp
}
