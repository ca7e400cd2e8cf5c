// Command dp builds a small random problem and solves it exactly with the
// bitmask dynamic-programming solver.
package main

import (
	"log"
	"math/rand"
	"time"

	"fleet-vrp/internal/cliutil"
	"fleet-vrp/internal/geo"
	"fleet-vrp/internal/solve"
	"fleet-vrp/internal/vrpgen"
)

const (
	dpVehicleCount = 3
	dpStopCount    = 8
)

func main() {
	router := geo.NewCachedRouter(geo.NewGeodesicRouter())
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	problem, err := vrpgen.RandomProblem(rng, dpVehicleCount, dpStopCount)
	if err != nil {
		log.Fatalf("[DP] random problem: %v", err)
	}

	solver := solve.NewDynamicProgrammingSolver(router)

	start := time.Now()
	solution := solver.Solve(problem)
	log.Printf("[DP] duration=%s", time.Since(start))

	cliutil.PrintSolution(problem, solution)
}
