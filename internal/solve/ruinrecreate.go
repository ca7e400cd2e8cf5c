package solve

import (
	"log"
	"math/rand"
	"sort"

	"fleet-vrp/internal/cost"
	"fleet-vrp/internal/frontier"
	"fleet-vrp/internal/geo"
	"fleet-vrp/internal/model"
	"fleet-vrp/internal/solution"
)

// RuinAndRecreateSolver is a large-neighborhood-search metaheuristic: it
// seeds an initial solution, then alternates a 2-opt diversification step
// with a small-window DP-region reoptimization ("ruin" the window,
// "recreate" it by localized frontier expansion), accepting every
// iteration's result and tracking convergence via a moving average of cost
// improvement.
type RuinAndRecreateSolver struct {
	Seed   Solver
	Cost   cost.Calculator
	Router geo.Router
	Config Config

	rng *rand.Rand
}

// NewRuinAndRecreateSolver builds a driver seeded by seed, scored by
// calc, using router for the closest-stop precomputation, tuned by cfg.
// The PRNG is seeded from cfg.Seed so that solving the same Problem with
// the same Config twice reproduces byte-identical output.
func NewRuinAndRecreateSolver(seed Solver, calc cost.Calculator, router geo.Router, cfg Config) *RuinAndRecreateSolver {
	return &RuinAndRecreateSolver{
		Seed:   seed,
		Cost:   calc,
		Router: router,
		Config: cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Solve implements Solver.
func (r *RuinAndRecreateSolver) Solve(view model.View) solution.Solution {
	vehicleCount := view.VehicleCount()
	stopCount := view.StopCount()

	if vehicleCount == 0 {
		return solution.Solution{}
	}
	if stopCount == 0 {
		return solution.Empty(vehicleCount)
	}
	if stopCount == 1 {
		return r.Seed.Solve(view)
	}

	r.rng = rand.New(rand.NewSource(r.Config.Seed))

	cache := cost.NewDistanceCache(view, r.Router)
	closest := closestStops(view, cache, stopCount)

	s := r.Seed.Solve(view)
	curCost := r.Cost.Calculate(view, s)

	twoOpt := NewTwoOpt(r.Cost)

	var delta, updateDelta float64
	iteration := 0

	for delta > updateDelta*r.Config.Epsilon || iteration < r.Config.MinIterations {
		anchor := r.rng.Intn(stopCount)
		s = twoOpt.Run(view, s, anchor, closest[anchor])
		s = r.recreateRegions(view, s, closest)

		newCost := r.Cost.Calculate(view, s)
		newDelta := curCost - newCost
		delta = movingAverage(delta, newDelta, r.Config.Window)

		if newCost < curCost {
			curCost = newCost
			updateDelta = movingAverage(updateDelta, newDelta, r.Config.Window)
			if r.Config.Trace {
				log.Printf("[RR] iteration=%d cost=%.3f delta=%.3f update_delta=%.3f", iteration, newCost, delta, updateDelta)
			}
		}

		iteration++
	}

	return s
}

// movingAverage implements avg' = (avg*(W-1)+x)/W, with the first-sample
// special case avg' = x when avg == 0.
func movingAverage(old, x float64, window int) float64 {
	if old == 0 {
		return x
	}
	w := float64(window)
	return (old*(w-1) + x) / w
}

// closestStops precomputes, for each stop, the other stops sorted
// ascending by geodesic distance — done once per solve since it never
// changes for a fixed Problem. Distances come from the DistanceCache that
// Solve builds for this purpose; it is separate from the cost calculator's
// cache, so the recreate step does not reuse the legs computed here.
func closestStops(view model.View, cache *cost.DistanceCache, stopCount int) [][]int {
	lists := make([][]int, stopCount)
	for i := 0; i < stopCount; i++ {
		others := make([]int, 0, stopCount-1)
		for j := 0; j < stopCount; j++ {
			if j != i {
				others = append(others, j)
			}
		}
		sort.SliceStable(others, func(a, b int) bool {
			da := cache.SegmentDistance(i, others[a])
			db := cache.SegmentDistance(i, others[b])
			return da < db
		})
		lists[i] = others
	}
	return lists
}

// region is a contiguous window [from,to) of one vehicle's route chosen
// for ruin-and-recreate.
type region struct {
	vehicle  int
	from, to int
}

// recreateRegions picks 1-2 vehicle regions around a random anchor and
// its closest neighbors, drains them, and rebuilds them by a localized
// frontier expansion confined to the drained stops — the same shape as
// branch-and-bound, but over a window instead of the whole problem.
func (r *RuinAndRecreateSolver) recreateRegions(view model.View, s solution.Solution, closest [][]int) solution.Solution {
	regions := r.chooseRegions(s, closest)
	if len(regions) == 0 {
		return s
	}

	drained := s
	var pool []int
	for _, reg := range regions {
		var removed []int
		drained, removed = drained.DrainRouteRange(reg.vehicle, reg.from, reg.to)
		pool = append(pool, removed...)
	}
	if len(pool) == 0 {
		return s
	}

	f := frontier.New()
	f.Insert(drained, r.Cost.Calculate(view, drained))

	for round := 0; round < len(pool); round++ {
		var parents []solution.Solution
		f.Each(func(sol solution.Solution, _ float64) {
			parents = append(parents, sol)
		})

		for _, parent := range parents {
			for _, stop := range pool {
				if hasStop(parent, stop) {
					continue
				}
				for _, reg := range regions {
					candidate := parent.InsertStop(reg.vehicle, reg.from, stop)
					f.Insert(candidate, r.Cost.Calculate(view, candidate))
				}
			}
		}
	}

	best, _ := f.Best()
	return best
}

func (r *RuinAndRecreateSolver) chooseRegions(s solution.Solution, closest [][]int) []region {
	vehicleCount := s.VehicleCount()
	maxVehicles := 2
	if vehicleCount < maxVehicles {
		maxVehicles = vehicleCount
	}
	if maxVehicles < 1 {
		return nil
	}
	regionVehicleCount := 1 + r.rng.Intn(maxVehicles)

	anchor := r.rng.Intn(len(closest))
	candidates := append([]int{anchor}, closest[anchor]...)
	r.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	type pair struct{ vehicle, stop int }
	seenVehicle := make(map[int]bool)
	var pairs []pair
	for _, stop := range candidates {
		if len(pairs) >= regionVehicleCount {
			break
		}
		vehicle, _, ok := locate(s, stop)
		if !ok || seenVehicle[vehicle] {
			continue
		}
		seenVehicle[vehicle] = true
		pairs = append(pairs, pair{vehicle: vehicle, stop: stop})
	}
	if len(pairs) == 0 {
		return nil
	}

	subSize := (r.Config.MaxSubProblemSize - len(pairs)) / len(pairs)
	if subSize < 1 {
		subSize = 1
	}

	regions := make([]region, 0, len(pairs))
	for _, p := range pairs {
		route := s.Route(p.vehicle)
		middle := indexOf(route, p.stop)
		start := middle - subSize/2
		if start < 0 {
			start = 0
		}
		end := start + subSize
		if end > len(route) {
			end = len(route)
		}
		regions = append(regions, region{vehicle: p.vehicle, from: start, to: end})
	}
	return regions
}

func indexOf(route []int, stop int) int {
	for i, x := range route {
		if x == stop {
			return i
		}
	}
	return 0
}
