package plane

import "fmt"

// Orientation says which side of a directed edge a point falls on.
//
// The names follow a y-down (screen) frame: Clockwise is a right turn when the
// Y axis points down the page. In a y-up frame the two senses swap. Nothing in
// this package depends on the names, only on whether two orientations agree.
type Orientation int

const (
	CounterClockwise Orientation = iota - 1
	Collinear
	Clockwise
)

var orientationLabels = [3]string{"CounterClockwise", "Collinear", "Clockwise"}

func (o Orientation) String() string {
	if o < CounterClockwise || o > Clockwise {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationLabels[o+1]
}

// Orient gives the orientation of r relative to the directed edge p→q. This
// is the sign of the cross product (q-p)×(r-p), expanded so that exact inputs
// (integers, or floats that are small integers) give an exact answer.
//
// There is no tolerance. With general floating point input, points that are
// extremely close to the line through p and q may be misclassified.
func Orient(p, q, r Point) Orientation {
	d := (q.X*r.Y + p.X*q.Y + p.Y*r.X) - (q.X*p.Y + r.X*q.Y + r.Y*p.X)
	switch {
	case d > 0:
		return Clockwise
	case d < 0:
		return CounterClockwise
	}
	return Collinear
}
