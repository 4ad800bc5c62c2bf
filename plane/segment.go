package plane

import (
	"fmt"
	"math"
)

// Segment is a directed line segment. Two segments are equal (==) when they
// have the same endpoints in the same order; a segment and its reverse are
// different values. Zero length segments are not rejected, but none of the
// predicates below give meaningful answers for them.
type Segment struct {
	Begin Point
	End   Point
}

// Orientation of a point relative to the line through the segment, taken in
// the segment's direction.
func (s Segment) Orientation(p Point) Orientation {
	return Orient(s.Begin, s.End, p)
}

// ContainsPoint checks that p is on the closed segment: collinear with it, and
// within the box spanned by its endpoints. Collinearity alone would accept any
// point on the infinite line.
func (s Segment) ContainsPoint(p Point) bool {
	if s.Orientation(p) != Collinear {
		return false
	}
	return math.Min(s.Begin.X, s.End.X) <= p.X && p.X <= math.Max(s.Begin.X, s.End.X) &&
		math.Min(s.Begin.Y, s.End.Y) <= p.Y && p.Y <= math.Max(s.Begin.Y, s.End.Y)
}

// IsCollinearWith reports whether both endpoints of other lie on the line
// through s.
func (s Segment) IsCollinearWith(other Segment) bool {
	return s.Orientation(other.Begin) == Collinear && s.Orientation(other.End) == Collinear
}

// Intersects reports whether the two closed segments share at least one point.
//
// If any endpoint is collinear with the other segment, the segments can only
// meet at an endpoint of one of them, which covers touching and overlapping
// collinear segments. Otherwise they must properly cross: each segment's
// endpoints straddle the other.
func (s Segment) Intersects(other Segment) bool {
	o1 := s.Orientation(other.Begin)
	o2 := s.Orientation(other.End)
	o3 := other.Orientation(s.Begin)
	o4 := other.Orientation(s.End)

	if o1 == Collinear || o2 == Collinear || o3 == Collinear || o4 == Collinear {
		return s.ContainsPoint(other.Begin) || s.ContainsPoint(other.End) ||
			other.ContainsPoint(s.Begin) || other.ContainsPoint(s.End)
	}

	return o1 != o2 && o3 != o4
}

func (s Segment) Reverse() Segment {
	return Segment{Begin: s.End, End: s.Begin}
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment(%v -> %v)", s.Begin, s.End)
}
