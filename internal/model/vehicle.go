package model

import "github.com/google/uuid"

// VehicleType describes a cargo bay and its payload limit.
type VehicleType struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Width     float64 `json:"width"`  // cm
	Depth     float64 `json:"depth"`  // cm
	Height    float64 `json:"height"` // cm
	MaxWeight float64 `json:"max_weight"`

	// Axle positions along the depth axis. Zero means use the defaults
	// (front 100 cm, rear 150 cm before the doors).
	AxleFront float64 `json:"axle_front,omitempty"`
	AxleRear  float64 `json:"axle_rear,omitempty"`

	IsBuiltIn bool `json:"-"`
}

// NewVehicleType creates a custom vehicle with a generated ID.
func NewVehicleType(name string, w, d, h, maxWeight float64) VehicleType {
	return VehicleType{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Width:     w,
		Depth:     d,
		Height:    h,
		MaxWeight: maxWeight,
	}
}

// NewContainer builds an empty container for this vehicle.
func (v VehicleType) NewContainer() *Container {
	front := v.AxleFront
	if front == 0 {
		front = DefaultAxleFront
	}
	rear := v.AxleRear
	if rear == 0 {
		rear = v.Depth - DefaultAxleRearOffset
	}
	return NewContainerWithAxles(v.Width, v.Depth, v.Height, v.MaxWeight, front, rear)
}

// Built-in vehicle types
var VehicleTypes = []VehicleType{
	{ID: "trailer", Name: "Standard Trailer (13.6m)", Width: 240, Depth: 1360, Height: 270, MaxWeight: 24000, IsBuiltIn: true},
	{ID: "truck", Name: "Truck (8m)", Width: 240, Depth: 800, Height: 270, MaxWeight: 15000, IsBuiltIn: true},
	{ID: "van", Name: "Van", Width: 190, Depth: 350, Height: 190, MaxWeight: 3500, IsBuiltIn: true},
}

// Catalog is the set of vehicles a run can choose from: the built-in
// types followed by the user's custom ones.
type Catalog struct {
	Custom []VehicleType
}

// All returns built-in vehicles followed by custom ones.
func (c Catalog) All() []VehicleType {
	all := make([]VehicleType, 0, len(VehicleTypes)+len(c.Custom))
	all = append(all, VehicleTypes...)
	all = append(all, c.Custom...)
	return all
}

// Lookup finds a vehicle by ID or name.
func (c Catalog) Lookup(key string) (VehicleType, bool) {
	for _, v := range c.All() {
		if v.ID == key || v.Name == key {
			return v, true
		}
	}
	return VehicleType{}, false
}

// Get finds a vehicle by ID or name, falling back to the standard trailer
// if nothing matches.
func (c Catalog) Get(key string) VehicleType {
	v, ok := c.Lookup(key)
	if !ok {
		return VehicleTypes[0]
	}
	return v
}

// Names returns the display names of all vehicles.
func (c Catalog) Names() []string {
	var names []string
	for _, v := range c.All() {
		names = append(names, v.Name)
	}
	return names
}

// WithCustom returns a catalog with v appended to the custom vehicles.
// The receiver is left unchanged.
func (c Catalog) WithCustom(v VehicleType) Catalog {
	custom := make([]VehicleType, 0, len(c.Custom)+1)
	custom = append(custom, c.Custom...)
	return Catalog{Custom: append(custom, v)}
}

// GetVehicle looks a built-in vehicle up by ID or name, falling back to the
// standard trailer.
func GetVehicle(key string) VehicleType {
	return Catalog{}.Get(key)
}

// LookupVehicle looks a built-in vehicle up by ID or name.
func LookupVehicle(key string) (VehicleType, bool) {
	return Catalog{}.Lookup(key)
}
