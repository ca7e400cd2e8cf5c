package solve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-vrp/internal/cost"
	"fleet-vrp/internal/geo"
	"fleet-vrp/internal/model"
)

func solveWithRuinAndRecreate(t *testing.T, p *model.Problem) *RuinAndRecreateSolver {
	t.Helper()
	router := geo.NewGeodesicRouter()
	cache := cost.NewDistanceCache(p, router)
	calc := cost.NewDeliveryCost(cache, testDistanceCost, testQuadraticCost, testMissedCost)
	cfg := DefaultConfig()
	cfg.MaxSubProblemSize = 8
	return NewRuinAndRecreateSolver(NewNearestNeighborSolver(router), calc, router, cfg)
}

func TestRuinAndRecreateDoNothing(t *testing.T) {
	p, err := model.NewProblem(
		[]model.Vehicle{model.NewVehicle(0, 1)},
		nil,
		[]model.Location{model.NewLocation(0, 0), model.NewLocation(1, 0)},
	)
	require.NoError(t, err)

	s := solveWithRuinAndRecreate(t, p).Solve(p)
	assert.Empty(t, s.Route(0))
}

func TestRuinAndRecreateKeepOneStop(t *testing.T) {
	p, err := model.NewProblem(
		[]model.Vehicle{model.NewVehicle(0, 2)},
		[]model.Stop{model.NewStop(1)},
		[]model.Location{model.NewLocation(0, 0), model.NewLocation(1, 0), model.NewLocation(2, 0)},
	)
	require.NoError(t, err)

	s := solveWithRuinAndRecreate(t, p).Solve(p)
	assert.Equal(t, []int{0}, s.Route(0))
}

func TestRuinAndRecreateKeepTwoStops(t *testing.T) {
	p, err := model.NewProblem(
		[]model.Vehicle{model.NewVehicle(0, 3)},
		[]model.Stop{model.NewStop(1), model.NewStop(2)},
		[]model.Location{
			model.NewLocation(0, 0), model.NewLocation(1, 0),
			model.NewLocation(2, 0), model.NewLocation(3, 0),
		},
	)
	require.NoError(t, err)

	s := solveWithRuinAndRecreate(t, p).Solve(p)
	assert.Equal(t, []int{0, 1}, s.Route(0))
}

func TestRuinAndRecreateKeepThreeStops(t *testing.T) {
	p, err := model.NewProblem(
		[]model.Vehicle{model.NewVehicle(0, 4)},
		[]model.Stop{model.NewStop(1), model.NewStop(2), model.NewStop(3)},
		[]model.Location{
			model.NewLocation(0, 0), model.NewLocation(1, 0), model.NewLocation(2, 0),
			model.NewLocation(3, 0), model.NewLocation(4, 0),
		},
	)
	require.NoError(t, err)

	s := solveWithRuinAndRecreate(t, p).Solve(p)
	assert.Equal(t, []int{0, 1, 2}, s.Route(0))
}

func TestRuinAndRecreateEvenWorkload(t *testing.T) {
	p, err := model.NewProblem(
		[]model.Vehicle{model.NewVehicle(0, 2), model.NewVehicle(3, 5)},
		[]model.Stop{model.NewStop(1), model.NewStop(4)},
		[]model.Location{
			model.NewLocation(0, 0), model.NewLocation(1, 0), model.NewLocation(2, 0),
			model.NewLocation(0, 1), model.NewLocation(1, 1), model.NewLocation(2, 1),
		},
	)
	require.NoError(t, err)

	s := solveWithRuinAndRecreate(t, p).Solve(p)
	for v := 0; v < s.VehicleCount(); v++ {
		assert.Len(t, s.Route(v), 1)
	}
}

// TestRuinAndRecreateDistributesUnevenStops is the scenario-6 acceptance
// case: an odd number of stops split across two depots on opposite sides
// of the map, where the correct split is 3-and-2 by proximity.
func TestRuinAndRecreateDistributesUnevenStops(t *testing.T) {
	p, err := model.NewProblem(
		[]model.Vehicle{model.NewVehicle(0, 0), model.NewVehicle(4, 4)},
		[]model.Stop{
			model.NewStop(1), model.NewStop(2), model.NewStop(3),
			model.NewStop(5), model.NewStop(6),
		},
		[]model.Location{
			model.NewLocation(0.0, 0.0),
			model.NewLocation(0.1, 0.0),
			model.NewLocation(0.2, 0.0),
			model.NewLocation(0.3, 0.0),
			model.NewLocation(0.0, 1.0),
			model.NewLocation(0.1, 1.0),
			model.NewLocation(0.2, 1.0),
		},
	)
	require.NoError(t, err)

	solver := solveWithRuinAndRecreate(t, p)
	s := solver.Solve(p)

	seen := make(map[int]bool)
	for v := 0; v < s.VehicleCount(); v++ {
		for _, stop := range s.Route(v) {
			assert.False(t, seen[stop], "stop %d assigned twice", stop)
			seen[stop] = true
		}
	}
	assert.Len(t, seen, 5)

	router := geo.NewGeodesicRouter()
	cache := cost.NewDistanceCache(p, router)
	calc := cost.NewDeliveryCost(cache, testDistanceCost, testQuadraticCost, testMissedCost)
	finalCost := calc.Calculate(p, s)
	assert.False(t, math.IsNaN(finalCost) || math.IsInf(finalCost, 1))
}

func TestRuinAndRecreateIsDeterministic(t *testing.T) {
	p, err := model.NewProblem(
		[]model.Vehicle{model.NewVehicle(0, 0), model.NewVehicle(4, 4)},
		[]model.Stop{
			model.NewStop(1), model.NewStop(2), model.NewStop(3),
			model.NewStop(5), model.NewStop(6),
		},
		[]model.Location{
			model.NewLocation(0.0, 0.0),
			model.NewLocation(0.1, 0.0),
			model.NewLocation(0.2, 0.0),
			model.NewLocation(0.3, 0.0),
			model.NewLocation(0.0, 1.0),
			model.NewLocation(0.1, 1.0),
			model.NewLocation(0.2, 1.0),
		},
	)
	require.NoError(t, err)

	first := solveWithRuinAndRecreate(t, p).Solve(p)
	second := solveWithRuinAndRecreate(t, p).Solve(p)
	assert.True(t, first.Equal(second), "same seed must reproduce the same solution")
}
