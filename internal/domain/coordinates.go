package domain

import "fmt"

// Immutable geographic coordinate in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Lon float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Return the coordinate as "lat,lon" for provider query parameters.
func (c Coordinate) LatLon() string { return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon) }
