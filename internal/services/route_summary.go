package services

import (
	"math"
	"route-optimization-service/internal/domain"
)

const (
	// DefaultFuelPricePerGallon is used when no price is configured or supplied.
	DefaultFuelPricePerGallon = 3.50

	// One mandatory rest stop is assumed per this many hours of driving.
	drivingHoursPerRestStop = 4.0
)

func restStopsFor(durationMinutes int) int {
	hours := float64(durationMinutes) / 60
	return int(math.Floor(hours / drivingHoursPerRestStop))
}

// summarize derives the fuel and rest-stop figures shared by provider and
// fallback results. Gallons and cost are rounded for display; cost is
// computed from the unrounded consumption.
func summarize(
	mode domain.OptimizationMode,
	distanceMiles float64,
	durationMinutes int,
	mpg float64,
	fuelPrice float64,
	warnings []string,
) domain.RouteSummary {
	gallons := distanceMiles / mpg
	if warnings == nil {
		warnings = []string{}
	}

	return domain.RouteSummary{
		OptimizationMode:       mode,
		FuelConsumptionGallons: domain.RoundTo(gallons, 2),
		EstimatedFuelCost:      domain.RoundTo(gallons*fuelPrice, 2),
		RestStopsRequired:      restStopsFor(durationMinutes),
		Warnings:               warnings,
	}
}
