package plane

import (
	"fmt"
	"math"
)

// Vector is the displacement from one point to another. It is deliberately a
// separate type from Point: vectors have a length and a dot product, but no
// order.
type Vector struct {
	X float64
	Y float64
}

// VectorBetween gives the vector from begin to end.
func VectorBetween(begin, end Point) Vector {
	return Vector{X: end.X - begin.X, Y: end.Y - begin.Y}
}

func (v Vector) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(%g, %g)", v.X, v.Y)
}

func Dot(a, b Vector) float64 {
	return a.X*b.X + a.Y*b.Y
}
