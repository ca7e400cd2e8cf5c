package solve

import (
	"fleet-vrp/internal/cost"
	"fleet-vrp/internal/frontier"
	"fleet-vrp/internal/model"
	"fleet-vrp/internal/solution"
)

// BranchAndBoundSolver is an exact solver via frontier expansion with
// lower-bound pruning. Starting from the all-empty solution, it runs
// stop-count rounds; each round tries appending every not-yet-assigned
// stop to every vehicle's route, keeping a child only when its lower
// bound strictly beats its parent's already-realized cost. Both the old
// and new frontier entries survive into the next round, since a partial
// solution that cheaply drops a stop can still be the eventual winner.
//
// Memory is the frontier size, which grows multiplicatively with the
// branching factor; it is intended for stop counts up to roughly 10.
type BranchAndBoundSolver struct {
	Cost cost.Calculator
}

// NewBranchAndBoundSolver builds a BranchAndBoundSolver using calc to
// score and bound candidates.
func NewBranchAndBoundSolver(calc cost.Calculator) *BranchAndBoundSolver {
	return &BranchAndBoundSolver{Cost: calc}
}

// Solve implements Solver.
func (b *BranchAndBoundSolver) Solve(view model.View) solution.Solution {
	vehicleCount := view.VehicleCount()
	stopCount := view.StopCount()

	start := solution.Empty(vehicleCount)
	f := frontier.New()
	f.Insert(start, b.Cost.Calculate(view, start))

	for round := 0; round < stopCount; round++ {
		var parents []struct {
			s   solution.Solution
			cap float64
		}
		f.Each(func(s solution.Solution, upperBound float64) {
			parents = append(parents, struct {
				s   solution.Solution
				cap float64
			}{s, upperBound})
		})

		for _, parent := range parents {
			for stop := 0; stop < stopCount; stop++ {
				if hasStop(parent.s, stop) {
					continue
				}
				for v := 0; v < vehicleCount; v++ {
					child := parent.s.AddStop(v, stop)
					lowerBound := b.Cost.LowerBound(view, child)
					if lowerBound < parent.cap {
						f.Insert(child, b.Cost.Calculate(view, child))
					}
				}
			}
		}
	}

	best, _ := f.Best()
	return best
}

func hasStop(s solution.Solution, stop int) bool {
	for v := 0; v < s.VehicleCount(); v++ {
		for _, x := range s.Route(v) {
			if x == stop {
				return true
			}
		}
	}
	return false
}
