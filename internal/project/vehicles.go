package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/piwi3910/TetraLog/internal/model"
)

// ValidateVehicle checks that a vehicle describes a usable bay.
func ValidateVehicle(v model.VehicleType) error {
	if v.Name == "" {
		return errors.New("vehicle has no name")
	}
	if v.Width <= 0 || v.Depth <= 0 || v.Height <= 0 {
		return fmt.Errorf("vehicle %q: dimensions must be positive", v.Name)
	}
	if v.MaxWeight <= 0 {
		return fmt.Errorf("vehicle %q: max weight must be positive", v.Name)
	}
	if err := v.NewContainer().Validate(); err != nil {
		return fmt.Errorf("vehicle %q: %w", v.Name, err)
	}
	return nil
}

// SaveCustomVehicles saves custom vehicles to a JSON file.
func SaveCustomVehicles(path string, vehicles []model.VehicleType) error {
	return writeJSON(path, vehicles)
}

// LoadCustomVehicles loads custom vehicles from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomVehicles(path string) ([]model.VehicleType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.VehicleType{}, nil
		}
		return nil, err
	}

	var vehicles []model.VehicleType
	if err := json.Unmarshal(data, &vehicles); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, v := range vehicles {
		if err := ValidateVehicle(v); err != nil {
			return nil, err
		}
	}
	return vehicles, nil
}

// LoadCatalog builds the vehicle catalog from the built-in types and the
// custom vehicles saved at path.
func LoadCatalog(path string) (model.Catalog, error) {
	vehicles, err := LoadCustomVehicles(path)
	if err != nil {
		return model.Catalog{}, err
	}
	return model.Catalog{Custom: vehicles}, nil
}

// ExportVehicle exports a single vehicle to a JSON file (for sharing).
func ExportVehicle(path string, vehicle model.VehicleType) error {
	vehicle.IsBuiltIn = false
	data, err := json.MarshalIndent(vehicle, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportVehicle imports a single vehicle from a JSON file.
func ImportVehicle(path string) (model.VehicleType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.VehicleType{}, err
	}

	var vehicle model.VehicleType
	if err := json.Unmarshal(data, &vehicle); err != nil {
		return model.VehicleType{}, err
	}
	if err := ValidateVehicle(vehicle); err != nil {
		return model.VehicleType{}, err
	}
	return vehicle, nil
}
