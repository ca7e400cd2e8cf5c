// Command replay loads a Problem from a JSON file and re-solves it with the
// ruin-and-recreate metaheuristic.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"fleet-vrp/internal/cliutil"
	"fleet-vrp/internal/cost"
	"fleet-vrp/internal/geo"
	"fleet-vrp/internal/model"
	"fleet-vrp/internal/solve"
)

const replayWindow = 1000

func main() {
	if err := run(); err != nil {
		log.Fatalf("[REPLAY] %v", err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: replay <problem.json>")
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		return fmt.Errorf("read problem file: %w", err)
	}

	var problem model.Problem
	if err := json.Unmarshal(data, &problem); err != nil {
		return fmt.Errorf("parse problem: %w", err)
	}

	router := geo.NewCachedRouter(geo.NewGeodesicRouter())
	cfg := solve.DefaultConfig()
	cfg.Window = replayWindow

	cache := cost.NewDistanceCache(&problem, router)
	calc := cost.NewDeliveryCost(cache, cfg.DistanceCoefficient, cfg.QuadraticCoefficient, cfg.MissedCoefficient)
	solver := solve.NewRuinAndRecreateSolver(solve.NewNearestNeighborSolver(router), calc, router, cfg)

	start := time.Now()
	solution := solver.Solve(&problem)
	log.Printf("[REPLAY] duration=%s", time.Since(start))

	cliutil.PrintSolution(&problem, solution)
	return nil
}
