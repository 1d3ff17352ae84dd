package services

import (
	"math"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/geo"
)

// OrderByNearestNeighbor orders waypoints with a greedy nearest-neighbor
// heuristic. The first and last waypoints stay pinned as origin and
// destination; each interior step picks the unvisited interior waypoint
// closest (haversine) to the last one added.
//
// There is no tour-improvement pass, so the order can be suboptimal for
// larger inputs. Ties are broken by input position, which keeps the
// output deterministic. The input slice is not modified.
func OrderByNearestNeighbor(waypoints []domain.Waypoint) []domain.Waypoint {
	n := len(waypoints)
	ordered := make([]domain.Waypoint, 0, n)
	if n <= 2 {
		return append(ordered, waypoints...)
	}

	visited := make([]bool, n)
	ordered = append(ordered, waypoints[0])
	current := 0

	for remaining := n - 2; remaining > 0; remaining-- {
		nearest := -1
		minDist := math.Inf(1)

		for j := 1; j < n-1; j++ {
			if visited[j] {
				continue
			}
			d := geo.DistanceMiles(waypoints[current].Coordinate, waypoints[j].Coordinate)
			if d < minDist {
				minDist = d
				nearest = j
			}
		}

		visited[nearest] = true
		ordered = append(ordered, waypoints[nearest])
		current = nearest
	}

	return append(ordered, waypoints[n-1])
}
