// Command rr builds a larger random problem and solves it with the
// ruin-and-recreate metaheuristic.
package main

import (
	"log"
	"math/rand"
	"time"

	"fleet-vrp/internal/cliutil"
	"fleet-vrp/internal/cost"
	"fleet-vrp/internal/geo"
	"fleet-vrp/internal/solve"
	"fleet-vrp/internal/vrpgen"
)

const (
	rrVehicleCount = 10
	rrStopCount    = 100
)

func main() {
	router := geo.NewCachedRouter(geo.NewGeodesicRouter())
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	problem, err := vrpgen.RandomProblem(rng, rrVehicleCount, rrStopCount)
	if err != nil {
		log.Fatalf("[RR] random problem: %v", err)
	}

	cfg := solve.DefaultConfig()
	cfg.Window = 200

	cache := cost.NewDistanceCache(problem, router)
	calc := cost.NewDeliveryCost(cache, cfg.DistanceCoefficient, cfg.QuadraticCoefficient, cfg.MissedCoefficient)
	solver := solve.NewRuinAndRecreateSolver(solve.NewNearestNeighborSolver(router), calc, router, cfg)

	start := time.Now()
	solution := solver.Solve(problem)
	log.Printf("[RR] duration=%s", time.Since(start))

	cliutil.PrintSolution(problem, solution)
}
