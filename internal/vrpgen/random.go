// Package vrpgen generates synthetic Problems for benchmarking and manual
// exploration: every vehicle starts and ends at one shared depot (the last
// location), and stops scatter across a small bounding box around a fixed
// origin so generated instances stay geographically realistic without
// depending on any external geocoder.
package vrpgen

import (
	"math/rand"

	"fleet-vrp/internal/model"
)

// Melbourne CBD, used as a fixed, realistic benchmark origin.
const (
	originLongitude = 145.00647210413496
	originLatitude  = -37.948738444529
	spread          = 0.1
)

// RandomProblem builds a Problem with vehicleCount vehicles sharing a single
// depot location and stopCount stops scattered within spread degrees of the
// origin. rng is supplied by the caller so generation stays reproducible
// under a fixed seed.
func RandomProblem(rng *rand.Rand, vehicleCount, stopCount int) (*model.Problem, error) {
	locations := make([]model.Location, 0, stopCount+1)
	for i := 0; i < stopCount+1; i++ {
		locations = append(locations, randomLocation(rng))
	}
	depot := stopCount

	vehicles := make([]model.Vehicle, 0, vehicleCount)
	for i := 0; i < vehicleCount; i++ {
		vehicles = append(vehicles, model.NewVehicle(depot, depot))
	}

	stops := make([]model.Stop, 0, stopCount)
	for i := 0; i < stopCount; i++ {
		stops = append(stops, model.NewStop(i))
	}

	return model.NewProblem(vehicles, stops, locations)
}

func randomLocation(rng *rand.Rand) model.Location {
	longitude := originLongitude + spread*rng.Float64()
	latitude := originLatitude + spread*rng.Float64()
	return model.NewLocation(longitude, latitude)
}
