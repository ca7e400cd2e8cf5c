// Package cliutil holds the small pieces shared by the cmd/ programs, such
// as printing a solved Problem/Solution pair.
package cliutil

import (
	"encoding/json"
	"fmt"

	"fleet-vrp/internal/model"
	"fleet-vrp/internal/solution"
)

// PrintSolution writes the Problem, the Solution and its GeoJSON rendering
// to stdout as three labeled lines, in that order.
func PrintSolution(problem *model.Problem, s solution.Solution) {
	problemJSON, err := json.Marshal(problem)
	if err != nil {
		panic(fmt.Sprintf("cliutil: problem did not marshal: %v", err))
	}
	solutionJSON, err := json.Marshal(s)
	if err != nil {
		panic(fmt.Sprintf("cliutil: solution did not marshal: %v", err))
	}
	geoJSON, err := json.Marshal(solution.ToGeoJSON(problem, s))
	if err != nil {
		panic(fmt.Sprintf("cliutil: geojson did not marshal: %v", err))
	}

	fmt.Printf("problem: %s\n", problemJSON)
	fmt.Printf("solution: %s\n", solutionJSON)
	fmt.Printf("geojson: %s\n", geoJSON)
}
