package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/piwi3910/TetraLog/internal/model"
)

// Environment variables that override the saved configuration.
const (
	EnvVehicle   = "TETRALOG_VEHICLE"
	EnvStrategy  = "TETRALOG_STRATEGY"
	EnvOutputDir = "TETRALOG_OUTPUT_DIR"
	EnvStops     = "TETRALOG_STOPS" // Comma-separated, origin first
)

// DefaultConfigDir returns the default directory for application data.
// On all platforms this is ~/.tetralog/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".tetralog")
}

// Paths locates the application data files inside one directory.
type Paths struct {
	Dir string
}

// DefaultPaths returns the paths under DefaultConfigDir.
func DefaultPaths() Paths {
	return Paths{Dir: DefaultConfigDir()}
}

func (p Paths) Config() string    { return filepath.Join(p.Dir, "config.json") }
func (p Paths) Vehicles() string  { return filepath.Join(p.Dir, "vehicles.json") }
func (p Paths) Inventory() string { return filepath.Join(p.Dir, "inventory.json") }
func (p Paths) Templates() string { return filepath.Join(p.Dir, "templates.json") }

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	return writeJSON(path, config)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
// Fields missing from the file keep their defaults.
func LoadAppConfig(path string) (model.AppConfig, error) {
	config := model.DefaultAppConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return model.AppConfig{}, err
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if config.RecentManifests == nil {
		config.RecentManifests = []string{}
	}
	if len(config.Stops) == 0 {
		config.Stops = append([]string(nil), model.DefaultStops...)
	}
	return config, nil
}

// ApplyEnv loads the given dotenv files, if present, and applies the
// TETRALOG_* environment overrides to config. Variables already set in the
// process environment win over the files. TETRALOG_VEHICLE is resolved
// against vehicles.
func ApplyEnv(config *model.AppConfig, vehicles model.Catalog, envFiles ...string) error {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvVehicle)); v != "" {
		vehicle, ok := vehicles.Lookup(v)
		if !ok {
			return fmt.Errorf("%s: unknown vehicle %q", EnvVehicle, v)
		}
		config.DefaultVehicle = vehicle.ID
	}
	if v := os.Getenv(EnvStrategy); v != "" {
		s, err := model.ParseStrategy(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStrategy, err)
		}
		config.DefaultStrategy = s
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutputDir)); v != "" {
		config.OutputDir = v
	}
	if v := os.Getenv(EnvStops); v != "" {
		var stops []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				stops = append(stops, s)
			}
		}
		if len(stops) < 2 {
			return fmt.Errorf("%s: need the origin and at least one destination", EnvStops)
		}
		config.Stops = stops
	}
	return nil
}

// writeJSON marshals v with indentation to path, creating parent directories.
func writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
