package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupPartition(t *testing.T) {
	ps := []DataPoint{
		{At: day(1), Name: "B", Value: 1},
		{At: day(1), Name: "A", Value: 2},
		{At: day(3), Name: "B", Value: 3},
		{At: day(2), Name: "B", Value: 4},
		{At: day(2), Name: "A", Value: 5},
		{At: day(2), Name: "A", Value: 6},
	}

	g := Group(ps)
	assert.Equal(t, []string{"B", "A"}, g.Keys())
	assert.Equal(t, 2, g.Len())

	var union []DataPoint

	for _, s := range g.Series() {
		for _, p := range s.Points {
			assert.Equal(t, s.Name, p.Name)
		}

		union = append(union, s.Points...)
	}

	assert.ElementsMatch(t, ps, union)

	b, ok := g.Get("B")
	assert.True(t, ok)
	assert.Equal(t, []float64{1, 3, 4}, values(b))

	a, ok := g.Get("A")
	assert.True(t, ok)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []float64{2, 5, 6}, values(a))

	_, ok = g.Get("C")
	assert.False(t, ok)
}

func TestGroupEmpty(t *testing.T) {
	g := Group(nil)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Keys())
	assert.Empty(t, g.Series())
}

func TestExtentOf(t *testing.T) {
	_, ok := ExtentOf(nil)
	assert.False(t, ok)

	e, ok := ExtentOf([]DataPoint{
		{At: day(2), Name: "A", Value: 10},
		{At: day(1), Name: "B", Value: -3},
		{At: day(4), Name: "A", Value: 7},
	})
	assert.True(t, ok)
	assert.Equal(t, day(1), e.MinAt)
	assert.Equal(t, day(4), e.MaxAt)
	assert.EqualValues(t, -3, e.MinValue)
	assert.EqualValues(t, 10, e.MaxValue)
}

func values(s *Series) []float64 {
	vs := make([]float64, 0, len(s.Points))
	for _, p := range s.Points {
		vs = append(vs, p.Value)
	}

	return vs
}
