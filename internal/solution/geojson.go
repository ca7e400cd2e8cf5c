package solution

import (
	geojson "github.com/paulmach/go.geojson"

	"fleet-vrp/internal/model"
)

// ToGeoJSON renders s against the given Problem view as a FeatureCollection
// with one LineString feature per vehicle: start depot, each stop in route
// order, end depot. An empty route still yields a depot-to-depot
// LineString.
func ToGeoJSON(view model.View, s Solution) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for v := 0; v < s.VehicleCount(); v++ {
		coords := make([][]float64, 0, s.RouteLen(v)+2)
		coords = append(coords, coordOf(view, view.VehicleStartLocation(v)))
		for _, stop := range s.Route(v) {
			coords = append(coords, coordOf(view, view.StopLocation(stop)))
		}
		coords = append(coords, coordOf(view, view.VehicleEndLocation(v)))

		feature := geojson.NewLineStringFeature(coords)
		feature.SetProperty("vehicle", v)
		fc.AddFeature(feature)
	}
	return fc
}

func coordOf(view model.View, locationIndex int) []float64 {
	loc := view.Location(locationIndex)
	return []float64{loc.Longitude, loc.Latitude}
}
