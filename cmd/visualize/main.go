// Command visualize renders a Problem/Solution pair as GeoJSON on stdout.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"fleet-vrp/internal/model"
	"fleet-vrp/internal/solution"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("[VISUALIZE] %v", err)
	}
}

func run() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: visualize <problem.json> <solution.json>")
	}

	problemData, err := os.ReadFile(os.Args[1])
	if err != nil {
		return fmt.Errorf("read problem file: %w", err)
	}
	var problem model.Problem
	if err := json.Unmarshal(problemData, &problem); err != nil {
		return fmt.Errorf("parse problem: %w", err)
	}

	solutionData, err := os.ReadFile(os.Args[2])
	if err != nil {
		return fmt.Errorf("read solution file: %w", err)
	}
	var s solution.Solution
	if err := json.Unmarshal(solutionData, &s); err != nil {
		return fmt.Errorf("parse solution: %w", err)
	}

	geoJSON, err := json.Marshal(solution.ToGeoJSON(&problem, s))
	if err != nil {
		return fmt.Errorf("render geojson: %w", err)
	}

	fmt.Println(string(geoJSON))
	return nil
}
