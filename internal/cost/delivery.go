package cost

import (
	"fmt"
	"math"

	"fleet-vrp/internal/model"
	"fleet-vrp/internal/solution"
)

// Calculator produces a solution's cost and an admissible lower bound on
// it, given the solution and (for computing the missed-stop count) the
// problem's stop count. The two-method shape is what both the
// branch-and-bound solver (which prunes on the bound) and the
// ruin-and-recreate driver (which only ever needs the full cost) are
// written against.
type Calculator interface {
	Calculate(view model.View, s solution.Solution) float64
	LowerBound(view model.View, s solution.Solution) float64
}

// DeliveryCost combines route distance, a convex penalty on long routes,
// and a large per-stop penalty for deliveries the solution drops.
//
//	full cost  = Σ_v ( Distance·D(v,r_v) + Quadratic·D(v,r_v)^2 ) + Missed·missed_count
//	lower bound = Σ_v Distance·D(v,r_v)
//
// The lower bound drops the quadratic and missed-stop terms, both of which
// are non-negative, so it never exceeds the true cost — the property
// branch-and-bound pruning depends on.
type DeliveryCost struct {
	cache *DistanceCache

	// Distance is the per-meter coefficient α.
	Distance float64
	// Quadratic is the per-meter-squared coefficient β, penalizing long
	// individual routes to encourage work-sharing across vehicles.
	Quadratic float64
	// Missed is the per-dropped-stop coefficient γ. It must be large
	// enough that completing every delivery always dominates leaving one
	// out; the reference tuning is ≈1e9.
	Missed float64
}

// NewDeliveryCost builds a DeliveryCost backed by cache, with the given
// coefficients.
func NewDeliveryCost(cache *DistanceCache, distanceCoef, quadraticCoef, missedCoef float64) *DeliveryCost {
	return &DeliveryCost{cache: cache, Distance: distanceCoef, Quadratic: quadraticCoef, Missed: missedCoef}
}

// Calculate returns the full cost of s. It panics if the result is NaN:
// the cost function's contract forbids NaN for any finite Problem, so a
// NaN here is a programming-error invariant violation, not a recoverable
// condition.
func (d *DeliveryCost) Calculate(view model.View, s solution.Solution) float64 {
	total := 0.0
	for v := 0; v < s.VehicleCount(); v++ {
		dist := d.cache.RouteDistance(v, s.Route(v))
		total += d.Distance*dist + d.Quadratic*dist*dist
	}
	total += d.Missed * float64(s.MissedCount(view.StopCount()))

	if math.IsNaN(total) {
		panic(fmt.Sprintf("cost: NaN produced for solution with %d vehicles", s.VehicleCount()))
	}
	return total
}

// LowerBound returns the admissible lower bound described on DeliveryCost.
func (d *DeliveryCost) LowerBound(view model.View, s solution.Solution) float64 {
	total := 0.0
	for v := 0; v < s.VehicleCount(); v++ {
		total += d.Distance * d.cache.RouteDistance(v, s.Route(v))
	}

	if math.IsNaN(total) {
		panic(fmt.Sprintf("cost: NaN lower bound for solution with %d vehicles", s.VehicleCount()))
	}
	return total
}
