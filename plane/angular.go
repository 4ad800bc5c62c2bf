package plane

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"
)

// Angular ordering arranges an unordered point set into the boundary of a
// polygon by sweeping around a pivot. The pivot is the smallest point under
// Compare (leftmost, then lowest), which is always on the hull, so every other
// point lies in the closed half plane to its right. Points are keyed by their
// angle from the upward direction at the pivot, then by distance from it.
//
// Both orderings produce the same angles for every point, because no point
// can sit below the pivot on its vertical. They differ only at the end of the
// sweep: with OrderUnsignedAngle, points collinear with the pivot at the
// largest angle stay nearest-first, so the closing edge runs back over them.
// OrderSignedAngle reverses that last run, which yields a simple polygon for
// any point set that is not entirely collinear.

// up is the reference direction, from the pivot to pivot.Translate(0, 1).
// Using the vector directly keeps it non-zero even when adding 1 to a huge Y
// coordinate would round back to the pivot. The signed key ignores the
// reference point itself and always measures the true angle.
var up = Vector{X: 0, Y: 1}

type angularKey struct {
	angle    float64
	distance float64
}

func (k angularKey) less(other angularKey) bool {
	if k.angle != other.angle {
		return k.angle < other.angle
	}
	return k.distance < other.distance
}

// unsignedKey measures the angle with arccos of the normalized dot product,
// which lands in [0, π] and carries no side information. A point sitting on
// the pivot or on the reference point pivot.Translate(0, 1) gets the zero key.
func unsignedKey(pivot, p Point) angularKey {
	if p == pivot || p == pivot.Translate(0, 1) {
		return angularKey{}
	}
	v := VectorBetween(pivot, p)
	norm := v.Norm()
	cos := Dot(v, up) / (norm * up.Norm())
	// Rounding can push the ratio just past ±1
	cos = math.Max(-1, math.Min(1, cos))
	return angularKey{angle: math.Acos(cos), distance: norm}
}

// signedKey measures the clockwise angle from up in [0, 2π).
func signedKey(pivot, p Point) angularKey {
	if p == pivot {
		return angularKey{}
	}
	v := VectorBetween(pivot, p)
	angle := math.Atan2(v.X, v.Y)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angularKey{angle: angle, distance: v.Norm()}
}

// AngularOrder sorts a copy of points into angular order around their minimum
// point. The pivot (and any duplicates of it) always comes first, even ahead
// of other points with a zero key, and the sort is stable, so equal keys keep
// their input order.
//
// Invalid coordinates cause a panic with a GeometryError wrapping
// ErrInvalidPoint; use HandlePanicRecover, or the root package, to get an
// error instead.
func AngularOrder(points []Point, opts ...Option) []Point {
	o := buildOptions(opts)
	return angularOrder(points, &o)
}

func angularOrder(points []Point, o *options) []Point {
	if len(points) == 0 {
		return []Point{}
	}
	for i, p := range points {
		if !p.IsValid() {
			throw(ErrInvalidPoint, "point %d is %v", i, p)
		}
	}

	pivot := Min(points...)

	keyFunc := unsignedKey
	if o.ordering == OrderSignedAngle {
		keyFunc = signedKey
	}

	type keyed struct {
		point   Point
		isPivot bool
		key     angularKey
	}
	entries := make([]keyed, len(points))
	for i, p := range points {
		entries[i] = keyed{p, p == pivot, keyFunc(pivot, p)}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].isPivot != entries[j].isPivot {
			return entries[i].isPivot
		}
		return entries[i].key.less(entries[j].key)
	})

	result := make([]Point, len(entries))
	for i, entry := range entries {
		result[i] = entry.point
	}

	if o.ordering == OrderSignedAngle {
		reverseFinalRun(result, pivot)
	}

	log := o.log()
	if log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		log.WithFields(logrus.Fields{
			"pivot":    pivot,
			"count":    len(result),
			"ordering": o.ordering,
		}).Debug("angular order")
	}
	return result
}

// Reverse the trailing run of points that are collinear with the pivot and
// the last point. If every point is collinear there is no polygon to fix, and
// the order is left alone.
func reverseFinalRun(points []Point, pivot Point) {
	n := len(points)
	if n < 3 {
		return
	}
	last := points[n-1]
	start := n - 1
	for start > 1 && Orient(pivot, last, points[start-1]) == Collinear && points[start-1] != pivot {
		start--
	}
	if start <= 1 {
		return
	}
	for i, j := start, n-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}
