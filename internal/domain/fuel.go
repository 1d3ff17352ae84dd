package domain

import "math"

// FuelCostEstimate is the output of the fuel-cost model for one distance.
type FuelCostEstimate struct {
	DistanceMiles          float64
	FuelConsumptionGallons float64
	FuelPricePerGallon     float64
	TotalFuelCost          float64
	AverageMPG             float64
	VehicleClass           VehicleClass
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
