package services

import "route-optimization-service/internal/domain"

// Values applied to vehicle classes missing from a SpeedModel's tables.
const (
	fallbackSpeedMph = 50.0
	fallbackMPG      = 6.5
)

// SpeedModel maps a vehicle class to an assumed average road speed and fuel
// economy. Tables are copied on construction; a SpeedModel is immutable.
type SpeedModel struct {
	speedsMph map[domain.VehicleClass]float64
	mpg       map[domain.VehicleClass]float64
}

func NewSpeedModel(speedsMph, mpg map[domain.VehicleClass]float64) SpeedModel {
	return SpeedModel{
		speedsMph: copyPositive(nil, speedsMph),
		mpg:       copyPositive(nil, mpg),
	}
}

// DefaultSpeedModel returns the stock truck/van/car tables.
func DefaultSpeedModel() SpeedModel {
	return NewSpeedModel(
		map[domain.VehicleClass]float64{
			domain.VehicleTruck: 50,
			domain.VehicleVan:   55,
			domain.VehicleCar:   60,
		},
		map[domain.VehicleClass]float64{
			domain.VehicleTruck: 6.5,
			domain.VehicleVan:   14.0,
			domain.VehicleCar:   25.0,
		},
	)
}

// WithOverrides returns a new model with the given entries replaced.
// Non-positive override values are ignored.
func (m SpeedModel) WithOverrides(speedsMph, mpg map[domain.VehicleClass]float64) SpeedModel {
	return SpeedModel{
		speedsMph: copyPositive(m.speedsMph, speedsMph),
		mpg:       copyPositive(m.mpg, mpg),
	}
}

// AverageSpeedMph never fails; unknown classes get the truck speed.
func (m SpeedModel) AverageSpeedMph(vc domain.VehicleClass) float64 {
	return lookup(m.speedsMph, vc, fallbackSpeedMph)
}

// AverageMPG never fails; unknown classes get the truck economy.
func (m SpeedModel) AverageMPG(vc domain.VehicleClass) float64 {
	return lookup(m.mpg, vc, fallbackMPG)
}

func lookup(table map[domain.VehicleClass]float64, vc domain.VehicleClass, last float64) float64 {
	if v, ok := table[vc]; ok {
		return v
	}
	if v, ok := table[domain.DefaultVehicleClass]; ok {
		return v
	}
	return last
}

func copyPositive(base, overrides map[domain.VehicleClass]float64) map[domain.VehicleClass]float64 {
	out := make(map[domain.VehicleClass]float64, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		if v > 0 {
			out[k] = v
		}
	}
	return out
}
