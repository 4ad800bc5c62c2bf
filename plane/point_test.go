package plane

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointCompare(t *testing.T) {
	tests := []struct {
		name     string
		p, q     Point
		expected int
	}{
		{"equal", Pt(1, 2), Pt(1, 2), 0},
		{"smaller x", Pt(0, 5), Pt(1, 2), -1},
		{"larger x", Pt(2, -5), Pt(1, 2), 1},
		{"same x smaller y", Pt(1, 1), Pt(1, 2), -1},
		{"same x larger y", Pt(1, 3), Pt(1, 2), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.p.Compare(tt.q))
			assert.Equal(t, -tt.expected, tt.q.Compare(tt.p))
			assert.Equal(t, tt.expected < 0, tt.p.Less(tt.q))
		})
	}
}

func TestPointSortsLexicographically(t *testing.T) {
	points := []Point{{3, 1}, {1, 2}, {1, -1}, {2, 0}, {-1, 7}}
	sort.Slice(points, func(i, j int) bool { return points[i].Less(points[j]) })
	assert.Equal(t, []Point{{-1, 7}, {1, -1}, {1, 2}, {2, 0}, {3, 1}}, points)
}

func TestPointMin(t *testing.T) {
	assert.Equal(t, Pt(0, 0), Min(Pt(4, 0), Pt(0, 4), Pt(0, 0), Pt(4, 4)))
	assert.Equal(t, Pt(-2, 3), Min(Pt(-2, 3)))
	assert.Panics(t, func() { Min() })
}

func TestPointEqualityAndHash(t *testing.T) {
	a := Pt(1.5, -2)
	b := Pt(1.5, -2)
	assert.True(t, a == b)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), Pt(-2, 1.5).Hash())

	// Negative zero is == to zero, so it must hash the same
	negZero := math.Copysign(0, -1)
	assert.True(t, Pt(negZero, 0) == Pt(0, 0))
	assert.Equal(t, Pt(0, 0).Hash(), Pt(negZero, negZero).Hash())

	// Usable as map keys
	m := map[Point]string{a: "a"}
	assert.Equal(t, "a", m[b])
}

func TestPointTranslate(t *testing.T) {
	p := Pt(1, 2)
	assert.Equal(t, Pt(1, 3), p.Translate(0, 1))
	assert.Equal(t, Pt(-1, 2), p.Add(Vector{-2, 0}))
	// The original is untouched
	assert.Equal(t, Pt(1, 2), p)
}

func TestPointIsValid(t *testing.T) {
	assert.True(t, Pt(0, -3.5).IsValid())
	assert.False(t, Pt(math.NaN(), 0).IsValid())
	assert.False(t, Pt(0, math.NaN()).IsValid())
	assert.False(t, Pt(math.Inf(1), 0).IsValid())
	assert.False(t, Pt(0, math.Inf(-1)).IsValid())
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "Point(1, -2.5)", Pt(1, -2.5).String())
}
