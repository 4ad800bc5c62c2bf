// A small planar geometry package for Go.
//
// It orders an arbitrary set of points into a simple polygon by sweeping
// around the leftmost point, and tests whether points are inside the result
// with a crossing count that copes with rays passing exactly through
// vertices. The orientation and segment predicates it is built on are exposed
// as well.
//
// This package converts invalid input into errors. The plane package holds
// the implementation, and panics instead.
package comgeo

import "github.com/osuushi/comgeo/plane"

type Point = plane.Point
type Vector = plane.Vector
type Segment = plane.Segment
type Orientation = plane.Orientation
type Option = plane.Option
type Ordering = plane.Ordering

const (
	CounterClockwise = plane.CounterClockwise
	Collinear        = plane.Collinear
	Clockwise        = plane.Clockwise

	OrderUnsignedAngle = plane.OrderUnsignedAngle
	OrderSignedAngle   = plane.OrderSignedAngle
)

var (
	ErrInvalidPoint = plane.ErrInvalidPoint

	Pt            = plane.Pt
	Orient        = plane.Orient
	VectorBetween = plane.VectorBetween
	WithOrdering  = plane.WithOrdering
	WithLogger    = plane.WithLogger
	SetLogger     = plane.SetLogger
)

// SimplePolygon wraps plane.SimplePolygon so that membership queries report
// invalid points as errors.
type SimplePolygon struct {
	*plane.SimplePolygon
}

// Build a simple polygon from a set of points in any order. The points are
// sorted by angle around the leftmost point; see plane.AngularOrder.
func NewSimplePolygon(points []Point, opts ...Option) (result *SimplePolygon, err error) {
	defer func() {
		recoveredErr := plane.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return &SimplePolygon{plane.NewSimplePolygon(points, opts...)}, nil
}

// IsInside reports whether p is inside the polygon. See
// plane.SimplePolygon.IsInside for how boundary points are treated.
func (poly *SimplePolygon) IsInside(p Point) (inside bool, err error) {
	defer func() {
		recoveredErr := plane.HandlePanicRecover(recover())
		if recoveredErr != nil {
			inside = false
			err = recoveredErr
		}
	}()
	return poly.SimplePolygon.IsInside(p), nil
}

// Sort points into angular order around the leftmost point.
func AngularOrder(points []Point, opts ...Option) (result []Point, err error) {
	defer func() {
		recoveredErr := plane.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return plane.AngularOrder(points, opts...), nil
}
