package geo

import (
	"github.com/golang/geo/s2"

	"fleet-vrp/internal/model"
)

// earthRadiusMeters is the IUGG mean radius, the same constant a geodesic
// distance library built on github.com/golang/geo's s1.Angle would use to
// turn an angular separation into meters.
const earthRadiusMeters = 6371008.8

// GeodesicRouter computes great-circle ("as the crow flies") distance using
// spherical geometry.
type GeodesicRouter struct{}

// NewGeodesicRouter constructs a GeodesicRouter. It holds no state.
func NewGeodesicRouter() GeodesicRouter {
	return GeodesicRouter{}
}

// Route returns the great-circle distance between start and end, in meters.
func (GeodesicRouter) Route(start, end model.Location) float64 {
	a := s2.LatLngFromDegrees(start.Latitude, start.Longitude)
	b := s2.LatLngFromDegrees(end.Latitude, end.Longitude)
	return a.Distance(b).Radians() * earthRadiusMeters
}
