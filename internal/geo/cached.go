package geo

import (
	"math"

	"fleet-vrp/internal/model"
)

// locationKey is a bit-exact, orderable representation of a Location
// suitable for use as a map key.
type locationKey struct {
	lon uint64
	lat uint64
}

func keyOf(l model.Location) locationKey {
	return locationKey{lon: math.Float64bits(l.Longitude), lat: math.Float64bits(l.Latitude)}
}

type pairKey struct {
	first, second locationKey
}

// canonicalPair orders the two keys so that Route(a,b) and Route(b,a) share
// one cache slot, since geodesic distance is symmetric up to
// floating-point rounding.
func canonicalPair(a, b locationKey) pairKey {
	if less(a, b) {
		return pairKey{first: a, second: b}
	}
	return pairKey{first: b, second: a}
}

func less(a, b locationKey) bool {
	if a.lon != b.lon {
		return a.lon < b.lon
	}
	return a.lat < b.lat
}

// CachedRouter memoizes an underlying Router by canonical (lon,lat) pair
// equality. It is process-local, single-threaded and unbounded: working
// sets are O(N^2) for N locations, which is fine for the few-hundred-location
// instances this engine targets.
type CachedRouter struct {
	router Router
	cache  map[pairKey]float64
}

// NewCachedRouter wraps router with a memoizing cache.
func NewCachedRouter(router Router) *CachedRouter {
	return &CachedRouter{router: router, cache: make(map[pairKey]float64)}
}

// Route returns the cached distance if present, otherwise delegates to the
// wrapped router and inserts the result.
func (c *CachedRouter) Route(start, end model.Location) float64 {
	key := canonicalPair(keyOf(start), keyOf(end))
	if d, ok := c.cache[key]; ok {
		return d
	}

	d := c.router.Route(start, end)
	c.cache[key] = d
	return d
}

// Len reports the number of memoized pairs, mostly useful for tests and
// diagnostics.
func (c *CachedRouter) Len() int {
	return len(c.cache)
}
