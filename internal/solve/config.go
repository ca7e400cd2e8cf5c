package solve

// Config holds the tuning constants shared by the cost function and the
// ruin-and-recreate driver, exposed instead of being baked into each
// call site.
type Config struct {
	// DistanceCoefficient is α, the per-meter distance cost.
	DistanceCoefficient float64
	// QuadraticCoefficient is β, the per-meter-squared penalty on long
	// routes. Zero unless work-balancing between vehicles is desired.
	QuadraticCoefficient float64
	// MissedCoefficient is γ, the per-dropped-stop penalty. Must dominate
	// any achievable distance cost so completing every delivery always
	// wins over leaving one out.
	MissedCoefficient float64

	// Window is W, the moving-average window used by both delta and
	// update_delta in the ruin-and-recreate convergence check.
	Window int
	// Epsilon is ε, the convergence ratio: the driver stops once
	// delta <= updateDelta * Epsilon and MinIterations have run.
	Epsilon float64
	// MinIterations is the floor below which the driver keeps iterating
	// regardless of convergence.
	MinIterations int

	// MaxSubProblemSize bounds the combined window size (stops plus
	// vehicles touched) the DP-region recreate step will attempt; above
	// it the recreate step's frontier expansion, which grows
	// multiplicatively with the window size, becomes too expensive per
	// iteration.
	MaxSubProblemSize int

	// Seed is the fixed PRNG seed for the ruin-and-recreate driver. A
	// fixed, non-random seed is required so that re-solving the same
	// Problem with the same Config reproduces byte-identical output.
	Seed int64

	// Trace, when true, makes the driver log each iteration that lowers the
	// cost.
	Trace bool
}

// DefaultConfig returns the tuning most call sites converge on: ε=0.01,
// W=100, MinIterations=10, no quadratic penalty, and a missed-stop penalty
// large enough to dominate any realistic distance cost.
func DefaultConfig() Config {
	return Config{
		DistanceCoefficient:  1.0,
		QuadraticCoefficient: 0,
		MissedCoefficient:    1e9,

		Window:        100,
		Epsilon:       0.01,
		MinIterations: 10,

		MaxSubProblemSize: 8,

		Seed: 0x5EED1E55,

		Trace: false,
	}
}
