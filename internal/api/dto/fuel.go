package dto

import "route-optimization-service/internal/domain"

// FuelCostRequest omits the price to use the configured default.
type FuelCostRequest struct {
	DistanceMiles      *float64 `json:"distance_miles"`
	VehicleClass       string   `json:"vehicle_class"`
	FuelPricePerGallon float64  `json:"fuel_price_per_gallon"`
}

func (r FuelCostRequest) Distance() (float64, error) {
	if r.DistanceMiles == nil {
		return 0, &domain.InvalidRequestError{Field: "distance_miles", Reason: "is required"}
	}
	return *r.DistanceMiles, nil
}

type FuelCostResponse struct {
	DistanceMiles          float64             `json:"distance_miles"`
	FuelConsumptionGallons float64             `json:"fuel_consumption_gallons"`
	FuelPricePerGallon     float64             `json:"fuel_price_per_gallon"`
	TotalFuelCost          float64             `json:"total_fuel_cost"`
	AverageMPG             float64             `json:"average_mpg"`
	VehicleClass           domain.VehicleClass `json:"vehicle_class"`
}

func FromFuelCost(e domain.FuelCostEstimate) FuelCostResponse {
	return FuelCostResponse{
		DistanceMiles:          e.DistanceMiles,
		FuelConsumptionGallons: e.FuelConsumptionGallons,
		FuelPricePerGallon:     e.FuelPricePerGallon,
		TotalFuelCost:          e.TotalFuelCost,
		AverageMPG:             e.AverageMPG,
		VehicleClass:           e.VehicleClass,
	}
}
