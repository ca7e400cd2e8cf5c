// Package frontier implements the Solution→cost mapping that the
// branch-and-bound solver and the ruin-and-recreate driver's DP-region
// recreate step both expand. It places no limit on its size. Entries are keyed by a Solution's exact route
// sequence (never re-keyed in place), and iteration order is insertion
// order so that cost ties resolve deterministically.
package frontier

import "fleet-vrp/internal/solution"

type entry struct {
	solution solution.Solution
	cost     float64
}

// Frontier is an insertion-ordered, deduplicating collection of
// (Solution, cost) pairs. Insertion never removes an existing entry; the
// caller decides what to prune before inserting.
type Frontier struct {
	order   []string
	entries map[string]entry
}

// New builds an empty Frontier.
func New() *Frontier {
	return &Frontier{entries: make(map[string]entry)}
}

// Insert adds s with the given cost. Re-inserting a key already present
// overwrites its cost but keeps its original position in iteration order,
// since Frontier is append-only with respect to membership.
func (f *Frontier) Insert(s solution.Solution, cost float64) {
	key := s.Key()
	if _, ok := f.entries[key]; !ok {
		f.order = append(f.order, key)
	}
	f.entries[key] = entry{solution: s, cost: cost}
}

// Len reports the number of distinct solutions retained.
func (f *Frontier) Len() int { return len(f.order) }

// Each calls fn for every (solution, cost) pair in insertion order.
func (f *Frontier) Each(fn func(s solution.Solution, cost float64)) {
	for _, key := range f.order {
		e := f.entries[key]
		fn(e.solution, e.cost)
	}
}

// Best returns the minimum-cost solution, breaking ties by insertion
// order (the first-inserted entry wins). Panics if the frontier is empty.
func (f *Frontier) Best() (solution.Solution, float64) {
	if len(f.order) == 0 {
		panic("frontier: Best called on empty frontier")
	}
	bestKey := f.order[0]
	best := f.entries[bestKey]
	for _, key := range f.order[1:] {
		e := f.entries[key]
		if e.cost < best.cost {
			best = e
		}
	}
	return best.solution, best.cost
}
