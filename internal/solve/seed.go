package solve

import (
	"fleet-vrp/internal/geo"
	"fleet-vrp/internal/model"
	"fleet-vrp/internal/solution"
)

// NearestNeighborSolver builds a feasible initial solution by round-robin
// greedy assignment: vehicles take turns, and on each turn a vehicle
// appends the unvisited stop nearest to its current frontier (its last
// appended stop, or its start depot if it has none yet). Ties break by
// stop index. It never leaves a stop unassigned, so missed-stop cost is
// always zero for its output.
type NearestNeighborSolver struct {
	Router geo.Router
}

// NewNearestNeighborSolver builds a NearestNeighborSolver over router.
func NewNearestNeighborSolver(router geo.Router) *NearestNeighborSolver {
	return &NearestNeighborSolver{Router: router}
}

// Solve implements Solver.
func (n *NearestNeighborSolver) Solve(view model.View) solution.Solution {
	vehicleCount := view.VehicleCount()
	stopCount := view.StopCount()

	if vehicleCount == 0 {
		return solution.Solution{}
	}

	s := solution.Empty(vehicleCount)
	if stopCount == 0 {
		return s
	}

	unvisited := make([]bool, stopCount)
	for i := range unvisited {
		unvisited[i] = true
	}
	remaining := stopCount

	// frontier[v] is the location a vehicle would depart from next: its
	// start depot until it has a stop, thereafter its last stop's location.
	frontier := make([]model.Location, vehicleCount)
	for v := 0; v < vehicleCount; v++ {
		frontier[v] = view.Location(view.VehicleStartLocation(v))
	}

	for remaining > 0 {
		for v := 0; v < vehicleCount && remaining > 0; v++ {
			nearest := -1
			nearestDist := 0.0
			for stop := 0; stop < stopCount; stop++ {
				if !unvisited[stop] {
					continue
				}
				d := n.Router.Route(frontier[v], view.Location(view.StopLocation(stop)))
				if nearest == -1 || d < nearestDist {
					nearest = stop
					nearestDist = d
				}
			}

			s = s.AddStop(v, nearest)
			unvisited[nearest] = false
			remaining--
			frontier[v] = view.Location(view.StopLocation(nearest))
		}
	}

	return s
}
