// Package geo provides geodesic distance computation between locations,
// with an optional memoizing wrapper.
package geo

import "fleet-vrp/internal/model"

// Router computes the geodesic distance, in meters, between two locations.
// Implementations must be pure, total and symmetric up to floating-point
// rounding.
type Router interface {
	Route(start, end model.Location) float64
}
