// Package cost implements the distance-cost cache (a lazy stop×stop
// distance matrix) and the delivery cost function that the solvers
// optimize against.
package cost

import (
	"math"

	"fleet-vrp/internal/geo"
	"fleet-vrp/internal/model"
)

// unset is the sentinel a fresh matrix entry holds before it is filled.
const unset = math.MaxFloat64

// DistanceCache computes the geodesic length of a route for a given
// Problem view, memoizing stop-to-stop segment distances in a stop×stop
// matrix; the route total itself is recomputed on every call. Depot legs are computed through the Router directly (and,
// if the Router is a *geo.CachedRouter, benefit from its own memoization)
// since they are visited far less often than stop-to-stop legs.
//
// A DistanceCache is created once per solve and is invalidated only when
// the Problem changes; it must not be reused across different Problems.
type DistanceCache struct {
	view   model.View
	router geo.Router

	n      int
	matrix []float64 // row-major n*n, unset until filled
}

// NewDistanceCache builds a cache sized to view's stop count. The backing
// matrix is allocated eagerly (all entries unset) but left unpopulated.
func NewDistanceCache(view model.View, router geo.Router) *DistanceCache {
	n := view.StopCount()
	matrix := make([]float64, n*n)
	for i := range matrix {
		matrix[i] = unset
	}
	return &DistanceCache{view: view, router: router, n: n, matrix: matrix}
}

// stopDistance returns the geodesic distance between stop a and stop b,
// filling the matrix entry on first access.
func (c *DistanceCache) stopDistance(a, b int) float64 {
	idx := a*c.n + b
	if d := c.matrix[idx]; d != unset {
		return d
	}
	d := c.router.Route(c.view.Location(c.view.StopLocation(a)), c.view.Location(c.view.StopLocation(b)))
	c.matrix[idx] = d
	return d
}

// RouteDistance returns the total geodesic length of vehicle v's route:
// start depot → stops[0] → … → stops[len-1] → end depot. An empty stops
// list yields the depot-to-depot distance.
func (c *DistanceCache) RouteDistance(v int, stops []int) float64 {
	if len(stops) == 0 {
		start := c.view.Location(c.view.VehicleStartLocation(v))
		end := c.view.Location(c.view.VehicleEndLocation(v))
		return c.router.Route(start, end)
	}

	total := c.router.Route(c.view.Location(c.view.VehicleStartLocation(v)), c.view.Location(c.view.StopLocation(stops[0])))
	for i := 1; i < len(stops); i++ {
		total += c.stopDistance(stops[i-1], stops[i])
	}
	total += c.router.Route(c.view.Location(c.view.StopLocation(stops[len(stops)-1])), c.view.Location(c.view.VehicleEndLocation(v)))
	return total
}

// SegmentDistance exposes the memoized stop-to-stop distance directly, for
// callers (the ruin-and-recreate driver's closest-stop lists) that need it
// without a full route walk.
func (c *DistanceCache) SegmentDistance(a, b int) float64 {
	return c.stopDistance(a, b)
}
