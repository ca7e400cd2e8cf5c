package solve

import (
	"fleet-vrp/internal/cost"
	"fleet-vrp/internal/model"
	"fleet-vrp/internal/solution"
)

// TwoOpt is the intra-/inter-route edge-swap neighborhood operator. It only
// ever accepts a candidate that strictly reduces cost; ties leave the
// incumbent solution untouched.
type TwoOpt struct {
	Cost cost.Calculator
}

// NewTwoOpt builds a TwoOpt scored by calc.
func NewTwoOpt(calc cost.Calculator) *TwoOpt {
	return &TwoOpt{Cost: calc}
}

// MaxPoolSize bounds how many candidate stops (anchor plus its closest
// neighbors) a single Run call draws pairs from, capping the combinatorial
// blowup per iteration.
const MaxPoolSize = 10

// Run tries every pair drawn from {anchor} ∪ neighbors (truncated to
// MaxPoolSize total), applying whichever of intra- or inter-route 2-opt
// fits each pair and folding any strict improvement into the running
// solution before moving to the next pair.
func (t *TwoOpt) Run(view model.View, s solution.Solution, anchor int, neighbors []int) solution.Solution {
	pool := append([]int{anchor}, neighbors...)
	if len(pool) > MaxPoolSize {
		pool = pool[:MaxPoolSize]
	}

	for i := 0; i < len(pool); i++ {
		for j := i + 1; j < len(pool); j++ {
			s = t.tryPair(view, s, pool[i], pool[j])
		}
	}
	return s
}

func (t *TwoOpt) tryPair(view model.View, s solution.Solution, a, b int) solution.Solution {
	vehicleA, posA, okA := locate(s, a)
	vehicleB, posB, okB := locate(s, b)
	if !okA || !okB {
		return s
	}

	if vehicleA == vehicleB {
		return t.intraRoute(view, s, vehicleA, posA, posB)
	}
	return t.interRoute(view, s, vehicleA, posA, vehicleB, posB)
}

func locate(s solution.Solution, stop int) (vehicle, pos int, found bool) {
	for v := 0; v < s.VehicleCount(); v++ {
		for p, x := range s.Route(v) {
			if x == stop {
				return v, p, true
			}
		}
	}
	return 0, 0, false
}

// intraRoute reverses the segment spanning the two anchor positions,
// returning whichever of {original, whole-route reversed,
// segment-reversed} scores best.
func (t *TwoOpt) intraRoute(view model.View, s solution.Solution, vehicle, posA, posB int) solution.Solution {
	i, j := posA, posB
	if i > j {
		i, j = j, i
	}

	best := s
	bestCost := t.Cost.Calculate(view, s)

	for _, candidate := range []solution.Solution{
		s.ReverseRoute(vehicle),
		s.ReverseRouteRange(vehicle, i, j+1),
	} {
		c := t.Cost.Calculate(view, candidate)
		if c < bestCost {
			best, bestCost = candidate, c
		}
	}
	return best
}

// interRoute splices routes A and B at the anchors' positions, trying all
// 2^4 reversal flags on the four resulting head/tail pieces against the 2
// ways to pair a head with a tail across the two vehicles — 32
// re-splicings — and keeps whichever strictly improves on the incumbent.
func (t *TwoOpt) interRoute(view model.View, s solution.Solution, vehicleA, posA, vehicleB, posB int) solution.Solution {
	routeA := s.Route(vehicleA)
	routeB := s.Route(vehicleB)

	aHead, aTail := routeA[:posA], routeA[posA:]
	bHead, bTail := routeB[:posB], routeB[posB:]

	best := s
	bestCost := t.Cost.Calculate(view, s)

	for flags := 0; flags < 16; flags++ {
		aHeadV := maybeReverse(aHead, flags&1 != 0)
		bHeadV := maybeReverse(bHead, flags&2 != 0)
		aTailV := maybeReverse(aTail, flags&4 != 0)
		bTailV := maybeReverse(bTail, flags&8 != 0)

		for pairing := 0; pairing < 2; pairing++ {
			var newA, newB []int
			if pairing == 0 {
				newA = concat(aHeadV, bTailV)
				newB = concat(bHeadV, aTailV)
			} else {
				newA = concat(bHeadV, aTailV)
				newB = concat(aHeadV, bTailV)
			}

			candidate := s.SetRoute(vehicleA, newA).SetRoute(vehicleB, newB)
			c := t.Cost.Calculate(view, candidate)
			if c < bestCost {
				best, bestCost = candidate, c
			}
		}
	}
	return best
}

func maybeReverse(stops []int, reverse bool) []int {
	if !reverse {
		return stops
	}
	out := make([]int, len(stops))
	for i, x := range stops {
		out[len(stops)-1-i] = x
	}
	return out
}

func concat(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
