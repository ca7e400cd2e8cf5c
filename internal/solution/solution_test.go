package solution

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	s := Empty(3)
	assert.Equal(t, 3, s.VehicleCount())
	for v := 0; v < 3; v++ {
		assert.Empty(t, s.Route(v))
	}
}

func TestAddStopSharesUnchangedRoutes(t *testing.T) {
	s := FromRoutes([][]int{{}, {9}})
	s = s.AddStop(0, 5)

	before := s
	after := s.AddStop(0, 7)

	assert.Equal(t, []int{5}, before.Route(0))
	assert.Equal(t, []int{5, 7}, after.Route(0))

	// route 1 is untouched by either edit and must remain identity-equal.
	assert.Equal(t, []int{9}, after.Route(1))
	assert.Same(t, &before.Route(1)[0], &after.Route(1)[0])
}

func TestInsertStop(t *testing.T) {
	s := FromRoutes([][]int{{1, 3}})
	s = s.InsertStop(0, 1, 2)
	assert.Equal(t, []int{1, 2, 3}, s.Route(0))
}

func TestReverseRouteIdempotence(t *testing.T) {
	s := FromRoutes([][]int{{1, 2, 3, 4}})
	roundTrip := s.ReverseRoute(0).ReverseRoute(0)
	assert.True(t, s.Equal(roundTrip))
}

func TestDrainExtendRoundTrip(t *testing.T) {
	// ExtendRoute appends at the tail, so the law's round trip holds when
	// the drained range is itself the route's tail.
	s := FromRoutes([][]int{{1, 2, 3, 4, 5}})
	drained, removed := s.DrainRouteRange(0, 3, 5)
	assert.Equal(t, []int{4, 5}, removed)

	restored := drained.ExtendRoute(0, removed)
	assert.True(t, s.Equal(restored))
}

func TestDrainRouteRemovesEverything(t *testing.T) {
	s := FromRoutes([][]int{{1, 2, 3}})
	drained, removed := s.DrainRoute(0)
	assert.Equal(t, []int{1, 2, 3}, removed)
	assert.Empty(t, drained.Route(0))
}

func TestMissed(t *testing.T) {
	s := FromRoutes([][]int{{0, 2}})
	assert.Equal(t, []int{1, 3}, s.Missed(4))
	assert.Equal(t, 2, s.MissedCount(4))
}

func TestEqualAndHash(t *testing.T) {
	a := FromRoutes([][]int{{1, 2}, {3}})
	b := FromRoutes([][]int{{1, 2}, {3}})
	c := FromRoutes([][]int{{1, 2}, {4}})

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c))
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestMarshalRoundTrip(t *testing.T) {
	s := FromRoutes([][]int{{1, 2}, {}})
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"routes":[[1,2],[]]}`, string(data))

	var out Solution
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, s.Equal(out))
}
