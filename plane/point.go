package plane

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Point is an immutable 2D coordinate. Equality is structural, so points can
// be compared with == and used directly as map keys. Nothing in this package
// ever modifies a point in place; operations that "move" a point return a new
// one.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Equal(q Point) bool {
	return p == q
}

// Compare gives the lexicographic order of points: X first, then Y to break
// ties. The result is -1, 0 or 1.
//
// This order picks the pivot for angular ordering and the reference vertex for
// membership tests, so it must be total over valid points.
func (p Point) Compare(q Point) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	}
	return 0
}

func (p Point) Less(q Point) bool {
	return p.Compare(q) < 0
}

// Hash returns a structural hash of the point. Points that are == hash
// equally, including the +0/-0 case.
func (p Point) Hash() uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(positiveZero(p.X)))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(positiveZero(p.Y)))
	return xxhash.Sum64(buf[:])
}

func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Add displaces the point by a vector.
func (p Point) Add(v Vector) Point {
	return p.Translate(v.X, v.Y)
}

// IsValid reports whether both coordinates are finite. NaN in particular
// breaks the total order, so invalid points are rejected at every public
// entry point.
func (p Point) IsValid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%g, %g)", p.X, p.Y)
}

// Min returns the smallest point under Compare. It panics on an empty list.
func Min(points ...Point) Point {
	if len(points) == 0 {
		panic("plane: Min of no points")
	}
	min := points[0]
	for _, p := range points[1:] {
		if p.Less(min) {
			min = p
		}
	}
	return min
}
