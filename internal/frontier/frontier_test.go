package frontier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fleet-vrp/internal/solution"
)

func TestInsertDeduplicates(t *testing.T) {
	f := New()
	s := solution.FromRoutes([][]int{{1, 2}})
	f.Insert(s, 10)
	f.Insert(s, 5)
	assert.Equal(t, 1, f.Len())

	_, cost := f.Best()
	assert.Equal(t, 5.0, cost)
}

func TestBestBreaksTiesByInsertionOrder(t *testing.T) {
	f := New()
	first := solution.FromRoutes([][]int{{1}})
	second := solution.FromRoutes([][]int{{2}})
	f.Insert(first, 10)
	f.Insert(second, 10)

	best, cost := f.Best()
	assert.Equal(t, 10.0, cost)
	assert.True(t, best.Equal(first))
}

func TestEachVisitsInInsertionOrder(t *testing.T) {
	f := New()
	a := solution.FromRoutes([][]int{{1}})
	b := solution.FromRoutes([][]int{{2}})
	f.Insert(a, 1)
	f.Insert(b, 2)

	var seen []float64
	f.Each(func(s solution.Solution, cost float64) {
		seen = append(seen, cost)
	})
	assert.Equal(t, []float64{1, 2}, seen)
}
