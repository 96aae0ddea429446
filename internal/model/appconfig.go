package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Planning defaults
	DefaultVehicle  string   `json:"default_vehicle"`
	DefaultStrategy Strategy `json:"default_strategy"`

	// Delivery route. Stops[0] is the origin depot; a destination's stop
	// order is its index in this list.
	Stops []string `json:"stops"`

	// Colors assigned to destinations by stop order modulo len(Palette).
	Palette []string `json:"palette"`

	// Application preferences
	OutputDir       string   `json:"output_dir"`
	RecentManifests []string `json:"recent_manifests"`
}

// DefaultStops is the route used when none is configured.
var DefaultStops = []string{"Istanbul", "Kocaeli", "Ankara", "Erzurum"}

// DefaultPalette is the destination color scheme.
var DefaultPalette = []string{"#e74c3c", "#3498db", "#f1c40f", "#8e44ad", "#27ae60"}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultVehicle:  VehicleTypes[0].ID,
		DefaultStrategy: StrategyBalanced,
		Stops:           append([]string(nil), DefaultStops...),
		Palette:         append([]string(nil), DefaultPalette...),
		OutputDir:       ".",
		RecentManifests: []string{},
	}
}

// StopIndex returns the stop order of a destination and whether it is on
// the route. Unknown destinations map to the first stop after the depot.
func (c AppConfig) StopIndex(destination string) (int, bool) {
	for i, s := range c.Stops {
		if s == destination {
			return i, true
		}
	}
	return 1, false
}

// ColorFor returns the palette color for a stop order.
func (c AppConfig) ColorFor(stop int) string {
	palette := c.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	if stop < 0 {
		stop = -stop
	}
	return palette[stop%len(palette)]
}

// ApplyToLine fills in stop order and color of a manifest line from its destination.
// It reports whether the destination was found on the route.
func (c AppConfig) ApplyToLine(l *ManifestLine) bool {
	stop, ok := c.StopIndex(l.Destination)
	l.StopOrder = stop
	l.Color = c.ColorFor(stop)
	return ok
}

// MaxRecentManifests bounds the recent-manifests list.
const MaxRecentManifests = 10

// AddRecentManifest moves path to the front of the recent list, dropping
// duplicates and the oldest entries beyond MaxRecentManifests.
func (c *AppConfig) AddRecentManifest(path string) {
	recent := []string{path}
	for _, p := range c.RecentManifests {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > MaxRecentManifests {
		recent = recent[:MaxRecentManifests]
	}
	c.RecentManifests = recent
}
