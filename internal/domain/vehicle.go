package domain

import "strings"

// VehicleClass selects the speed and fuel-economy profile used for estimates.
type VehicleClass string

const (
	VehicleTruck VehicleClass = "truck"
	VehicleVan   VehicleClass = "van"
	VehicleCar   VehicleClass = "car"
)

// DefaultVehicleClass is used when a caller does not name a vehicle.
const DefaultVehicleClass = VehicleTruck

// ParseVehicleClass is case-insensitive. Unknown values are kept as-is so
// that lookups can apply their own defaults.
func ParseVehicleClass(s string) VehicleClass {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultVehicleClass
	}
	return VehicleClass(s)
}

// OptimizationMode is the routing objective requested by the caller.
type OptimizationMode string

const (
	ModeFastest       OptimizationMode = "fastest"
	ModeShortest      OptimizationMode = "shortest"
	ModeFuelEfficient OptimizationMode = "fuel_efficient"
)

// ParseOptimizationMode accepts the canonical names plus "fuelefficient".
// Empty input means fastest.
func ParseOptimizationMode(s string) (OptimizationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fastest":
		return ModeFastest, nil
	case "shortest":
		return ModeShortest, nil
	case "fuel_efficient", "fuelefficient":
		return ModeFuelEfficient, nil
	default:
		return "", &InvalidRequestError{Field: "optimization_mode", Reason: "unknown mode " + s}
	}
}

func (m OptimizationMode) OrDefault() OptimizationMode {
	if m == "" {
		return ModeFastest
	}
	return m
}
