package cost

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-vrp/internal/geo"
	"fleet-vrp/internal/model"
	"fleet-vrp/internal/solution"
)

func lineProblem(t *testing.T) *model.Problem {
	t.Helper()
	locs := []model.Location{
		model.NewLocation(0, 0),
		model.NewLocation(1, 0),
		model.NewLocation(2, 0),
		model.NewLocation(3, 0),
	}
	vehicles := []model.Vehicle{model.NewVehicle(0, 3)}
	stops := []model.Stop{model.NewStop(1), model.NewStop(2)}
	p, err := model.NewProblem(vehicles, stops, locs)
	require.NoError(t, err)
	return p
}

func TestRouteDistanceEmptyIsDepotToDepot(t *testing.T) {
	p := lineProblem(t)
	router := geo.NewMockRouter(0)
	router.Set(p.Location(0), p.Location(3), 30)

	c := NewDistanceCache(p, router)
	assert.Equal(t, 30.0, c.RouteDistance(0, nil))
}

func TestRouteDistanceSumsLegs(t *testing.T) {
	p := lineProblem(t)
	router := geo.NewMockRouter(0)
	router.Set(p.Location(0), p.Location(1), 10) // depot -> stop0's location
	router.Set(p.Location(1), p.Location(2), 10) // stop0 -> stop1
	router.Set(p.Location(2), p.Location(3), 10) // stop1 -> depot

	c := NewDistanceCache(p, router)
	assert.Equal(t, 30.0, c.RouteDistance(0, []int{0, 1}))
}

func TestLowerBoundNeverExceedsCost(t *testing.T) {
	p := lineProblem(t)
	router := geo.NewMockRouter(5)
	cache := NewDistanceCache(p, router)
	dc := NewDeliveryCost(cache, 1, 0.001, 1e9)

	s := solution.FromRoutes([][]int{{0}})
	assert.LessOrEqual(t, dc.LowerBound(p, s), dc.Calculate(p, s))
}

func TestMissedStopsDominateCost(t *testing.T) {
	p := lineProblem(t)
	router := geo.NewMockRouter(1000)
	cache := NewDistanceCache(p, router)
	dc := NewDeliveryCost(cache, 1, 0, 1e9)

	complete := solution.FromRoutes([][]int{{0, 1}})
	missingOne := solution.FromRoutes([][]int{{0}})
	assert.Less(t, dc.Calculate(p, complete), dc.Calculate(p, missingOne))
}

func TestCalculatePanicsOnNaN(t *testing.T) {
	p := lineProblem(t)
	router := geo.NewMockRouter(0)
	cache := NewDistanceCache(p, router)
	dc := NewDeliveryCost(cache, math.NaN(), 0, 0)

	s := solution.FromRoutes([][]int{{0}})
	assert.Panics(t, func() { dc.Calculate(p, s) })
}
