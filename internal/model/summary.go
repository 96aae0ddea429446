package model

// cm3PerM3 converts cubic centimetres to cubic metres.
const cm3PerM3 = 1_000_000.0

// LoadSummary holds the dashboard figures of a packed container.
type LoadSummary struct {
	Requested   int     `json:"requested"`    // Units requested by the manifest
	Fitted      int     `json:"fitted"`       // Units placed in the bay
	UsedVolume  float64 `json:"used_volume"`  // cm³
	TotalVolume float64 `json:"total_volume"` // cm³
	TotalWeight float64 `json:"total_weight"` // kg
	MaxWeight   float64 `json:"max_weight"`   // kg
	FrontAxle   float64 `json:"front_axle"`   // kg carried by the front axle
	RearAxle    float64 `json:"rear_axle"`    // kg carried by the rear axle
}

// Unplaced returns the number of requested units left out.
func (s LoadSummary) Unplaced() int {
	return s.Requested - s.Fitted
}

// FillRate returns fitted / requested, or 0 for an empty manifest.
func (s LoadSummary) FillRate() float64 {
	if s.Requested == 0 {
		return 0
	}
	return float64(s.Fitted) / float64(s.Requested)
}

// UsedVolumeM3 returns the loaded volume in m³.
func (s LoadSummary) UsedVolumeM3() float64 {
	return s.UsedVolume / cm3PerM3
}

// VolumeUsage returns the loaded share of the bay volume in percent.
func (s LoadSummary) VolumeUsage() float64 {
	if s.TotalVolume == 0 {
		return 0
	}
	return (s.UsedVolume / s.TotalVolume) * 100.0
}

// Overweight reports whether the payload limit is exceeded.
func (s LoadSummary) Overweight() bool {
	return s.TotalWeight > s.MaxWeight
}

// FrontShare returns the fraction of the load carried by the front axle.
func (s LoadSummary) FrontShare() float64 {
	if s.TotalWeight == 0 {
		return 0
	}
	return s.FrontAxle / s.TotalWeight
}

// LoadPlan is the outcome of one packing run.
type LoadPlan struct {
	Vehicle  VehicleType `json:"vehicle"`
	Strategy Strategy    `json:"strategy"`
	Items    []*Item     `json:"items"` // All requested units in request order
	Bay      *Container  `json:"bay"`
	Summary  LoadSummary `json:"summary"`
}

// UnplacedItems returns the requested units that were left out, in request order.
func (p LoadPlan) UnplacedItems() []*Item {
	var out []*Item
	for _, it := range p.Items {
		if !it.Placed() {
			out = append(out, it)
		}
	}
	return out
}

// ItemWeightOpacity maps an item's weight to a display opacity for the
// weight-based color mode: 500 kg and above is fully opaque, light items
// never drop below 0.4.
func ItemWeightOpacity(weight float64) float64 {
	return min(1.0, max(0.4, weight/500.0))
}
