package services

import (
	"fmt"
	"math"
	"route-optimization-service/internal/domain"
)

// EstimateFuelCost is a pure function of the speed model's MPG table.
// Consumption is rounded to 2 decimals and cost to cents; cost is computed
// from the unrounded consumption.
func EstimateFuelCost(
	speeds SpeedModel,
	distanceMiles float64,
	vc domain.VehicleClass,
	fuelPricePerGallon float64,
) (domain.FuelCostEstimate, error) {
	if math.IsNaN(distanceMiles) || math.IsInf(distanceMiles, 0) || distanceMiles < 0 {
		return domain.FuelCostEstimate{}, &domain.InvalidRequestError{
			Field:  "distance_miles",
			Reason: fmt.Sprintf("must be a non-negative number, got %v", distanceMiles),
		}
	}
	if math.IsNaN(fuelPricePerGallon) || math.IsInf(fuelPricePerGallon, 0) || fuelPricePerGallon < 0 {
		return domain.FuelCostEstimate{}, &domain.InvalidRequestError{
			Field:  "fuel_price_per_gallon",
			Reason: fmt.Sprintf("must be a non-negative number, got %v", fuelPricePerGallon),
		}
	}

	if vc == "" {
		vc = domain.DefaultVehicleClass
	}
	mpg := speeds.AverageMPG(vc)
	gallons := distanceMiles / mpg

	return domain.FuelCostEstimate{
		DistanceMiles:          distanceMiles,
		FuelConsumptionGallons: domain.RoundTo(gallons, 2),
		FuelPricePerGallon:     fuelPricePerGallon,
		TotalFuelCost:          domain.RoundTo(gallons*fuelPricePerGallon, 2),
		AverageMPG:             mpg,
		VehicleClass:           vc,
	}, nil
}
