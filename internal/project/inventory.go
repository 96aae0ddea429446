package project

import (
	"encoding/json"
	"os"

	"github.com/piwi3910/TetraLog/internal/model"
)

// SaveInventory writes the inventory to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveInventory(path string, inv model.Inventory) error {
	return writeJSON(path, inv)
}

// LoadInventory reads the inventory from the specified JSON file.
// If the file does not exist, it returns the default inventory and saves it.
func LoadInventory(path string) (model.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			inv := model.DefaultInventory()
			if saveErr := SaveInventory(path, inv); saveErr != nil {
				return inv, saveErr
			}
			return inv, nil
		}
		return model.Inventory{}, err
	}
	var inv model.Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return model.Inventory{}, err
	}
	if inv.Boxes == nil {
		inv.Boxes = []model.BoxPreset{}
	}
	if inv.Vehicles == nil {
		inv.Vehicles = []model.VehicleType{}
	}
	return inv, nil
}

// ImportInventory imports an inventory from a user-specified JSON file,
// merging it with the existing inventory. Duplicate IDs are skipped.
func ImportInventory(path string, existing model.Inventory) (model.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Inventory
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	boxIDs := make(map[string]bool, len(existing.Boxes))
	for _, b := range existing.Boxes {
		boxIDs[b.ID] = true
	}
	vehicleIDs := make(map[string]bool, len(existing.Vehicles))
	for _, v := range existing.Vehicles {
		vehicleIDs[v.ID] = true
	}

	for _, b := range imported.Boxes {
		if !boxIDs[b.ID] {
			existing.Boxes = append(existing.Boxes, b)
			boxIDs[b.ID] = true
		}
	}
	for _, v := range imported.Vehicles {
		if !vehicleIDs[v.ID] {
			existing.Vehicles = append(existing.Vehicles, v)
			vehicleIDs[v.ID] = true
		}
	}

	return existing, nil
}
