// Package solve implements the search engine's three solvers — an exact
// branch-and-bound solver, an exact bitmask dynamic-programming solver,
// and a ruin-and-recreate large-neighborhood-search metaheuristic — plus
// the nearest-neighbor seed constructor and 2-opt operator they build on.
package solve

import (
	"fleet-vrp/internal/model"
	"fleet-vrp/internal/solution"
)

// Solver produces a Solution for a Problem view. It is the capability the
// ruin-and-recreate driver depends on for its seed step, and every
// top-level entry point (seed, branch-and-bound, DP, ruin-and-recreate)
// implements it uniformly.
type Solver interface {
	Solve(view model.View) solution.Solution
}
