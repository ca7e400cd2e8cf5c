// Package solution holds the persistent Solution data structure: an
// immutable, per-vehicle sequence of stop indices with cheap copy-on-write
// edits that share unchanged routes with their parent.
package solution

import (
	"encoding/json"
	"fmt"
)

// route is a shared, immutable stop-index sequence. It is never mutated
// after construction; plain Go slices, kept alive by the garbage collector
// for as long as any Solution references them, give cheap structural
// sharing without any manual refcounting.
type route []int

// Solution is an ordered sequence of routes, one per vehicle in problem
// order. Solutions are immutable: every edit method returns a new Solution
// and leaves the receiver untouched.
type Solution struct {
	routes []route
}

// Empty builds a Solution with vehicleCount empty routes.
func Empty(vehicleCount int) Solution {
	routes := make([]route, vehicleCount)
	for i := range routes {
		routes[i] = route{}
	}
	return Solution{routes: routes}
}

// FromRoutes builds a Solution directly from a slice of stop-index slices,
// one per vehicle. Each input slice is copied so the caller may reuse or
// mutate it afterward.
func FromRoutes(routes [][]int) Solution {
	out := make([]route, len(routes))
	for i, r := range routes {
		out[i] = append(route{}, r...)
	}
	return Solution{routes: out}
}

// VehicleCount returns the number of routes.
func (s Solution) VehicleCount() int { return len(s.routes) }

// Route returns the stop-index sequence assigned to vehicle v. The returned
// slice must not be mutated by the caller; it is shared storage.
func (s Solution) Route(v int) []int { return s.routes[v] }

// RouteLen returns len(Route(v)) without allocating a slice header copy
// for callers that only need the count.
func (s Solution) RouteLen(v int) int { return len(s.routes[v]) }

// Missed returns, given the total stop count, the indices present in no
// route, in ascending order.
func (s Solution) Missed(stopCount int) []int {
	seen := make([]bool, stopCount)
	for _, r := range s.routes {
		for _, stop := range r {
			seen[stop] = true
		}
	}
	var missed []int
	for i, ok := range seen {
		if !ok {
			missed = append(missed, i)
		}
	}
	return missed
}

// MissedCount is the cheaper form of Missed when only the count is needed.
func (s Solution) MissedCount(stopCount int) int {
	assigned := 0
	for _, r := range s.routes {
		assigned += len(r)
	}
	return stopCount - assigned
}

// AddStop appends stop to vehicle v's route, returning a new Solution. The
// edited route is freshly allocated; every other route is shared by
// reference with the receiver.
func (s Solution) AddStop(v, stop int) Solution {
	return s.withRoute(v, append(append(route{}, s.routes[v]...), stop))
}

// InsertStop inserts stop at position pos in vehicle v's route, shifting
// the tail right. pos == RouteLen(v) behaves like AddStop.
func (s Solution) InsertStop(v, pos, stop int) Solution {
	old := s.routes[v]
	next := make(route, 0, len(old)+1)
	next = append(next, old[:pos]...)
	next = append(next, stop)
	next = append(next, old[pos:]...)
	return s.withRoute(v, next)
}

// ExtendRoute appends every stop in stops, in order, to vehicle v's route.
func (s Solution) ExtendRoute(v int, stops []int) Solution {
	next := append(append(route{}, s.routes[v]...), stops...)
	return s.withRoute(v, next)
}

// DrainRouteRange removes the half-open range [from,to) from vehicle v's
// route, returning the new Solution and the removed stops in their
// original order. Draining the whole route and re-extending with the
// returned slice is the identity (the drain-extend round-trip law).
func (s Solution) DrainRouteRange(v, from, to int) (Solution, []int) {
	old := s.routes[v]
	removed := append([]int{}, old[from:to]...)
	next := make(route, 0, len(old)-(to-from))
	next = append(next, old[:from]...)
	next = append(next, old[to:]...)
	return s.withRoute(v, next), removed
}

// DrainRoute removes vehicle v's entire route, returning the emptied
// Solution and the removed stops.
func (s Solution) DrainRoute(v int) (Solution, []int) {
	return s.DrainRouteRange(v, 0, len(s.routes[v]))
}

// ReverseRoute reverses vehicle v's route in place (of the new copy);
// applying it twice to the same vehicle is the identity.
func (s Solution) ReverseRoute(v int) Solution {
	old := s.routes[v]
	next := make(route, len(old))
	for i, stop := range old {
		next[len(old)-1-i] = stop
	}
	return s.withRoute(v, next)
}

// ReverseRouteRange reverses the half-open range [from,to) of vehicle v's
// route, leaving the rest untouched. It is the building block 2-opt uses
// for intra-route segment reversal.
func (s Solution) ReverseRouteRange(v, from, to int) Solution {
	old := s.routes[v]
	next := append(route{}, old...)
	for i, j := from, to-1; i < j; i, j = i+1, j-1 {
		next[i], next[j] = next[j], next[i]
	}
	return s.withRoute(v, next)
}

// SetRoute replaces vehicle v's route wholesale. Used by the 2-opt and
// DP-region operators, which compute a full replacement route rather than
// an incremental edit.
func (s Solution) SetRoute(v int, stops []int) Solution {
	return s.withRoute(v, append(route{}, stops...))
}

func (s Solution) withRoute(v int, r route) Solution {
	next := make([]route, len(s.routes))
	copy(next, s.routes)
	next[v] = r
	return Solution{routes: next}
}

// Equal reports whether two solutions have identical route sequences.
func (s Solution) Equal(other Solution) bool {
	if len(s.routes) != len(other.routes) {
		return false
	}
	for i, r := range s.routes {
		o := other.routes[i]
		if len(r) != len(o) {
			return false
		}
		for j, stop := range r {
			if o[j] != stop {
				return false
			}
		}
	}
	return true
}

// Hash returns a deterministic FNV-1a style hash of the route sequences.
// Two equal solutions always hash identically, and the hash does not
// depend on process-randomized seeding, so traces are reproducible across
// runs.
func (s Solution) Hash() uint64 {
	h := fnvOffset
	for _, r := range s.routes {
		h = fnvMixInt(h, len(r))
		for _, stop := range r {
			h = fnvMixInt(h, stop)
		}
	}
	return h
}

// Key returns a string uniquely determined by the route sequences, fit for
// use as a map key in the solver frontier. Unlike Hash it never collides,
// at the cost of being longer.
func (s Solution) Key() string {
	b, err := json.Marshal(s)
	if err != nil {
		panic(fmt.Sprintf("solution: key encoding failed: %v", err))
	}
	return string(b)
}

const fnvOffset uint64 = 14695981039346656037
const fnvPrime uint64 = 1099511628211

func fnvMixInt(h uint64, x int) uint64 {
	u := uint64(x)
	for i := 0; i < 8; i++ {
		h ^= u & 0xff
		h *= fnvPrime
		u >>= 8
	}
	return h
}

// MarshalJSON renders the Solution as {"routes":[[int,...],...]}.
func (s Solution) MarshalJSON() ([]byte, error) {
	routes := make([][]int, len(s.routes))
	for i, r := range s.routes {
		if r == nil {
			routes[i] = []int{}
		} else {
			routes[i] = []int(r)
		}
	}
	return json.Marshal(struct {
		Routes [][]int `json:"routes"`
	}{Routes: routes})
}

// UnmarshalJSON parses the {"routes":[[int,...],...]} wire schema.
func (s *Solution) UnmarshalJSON(data []byte) error {
	var in struct {
		Routes [][]int `json:"routes"`
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("parse solution: %w", err)
	}
	routes := make([]route, len(in.Routes))
	for i, r := range in.Routes {
		routes[i] = append(route{}, r...)
	}
	s.routes = routes
	return nil
}
