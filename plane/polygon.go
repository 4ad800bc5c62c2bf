package plane

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/comgeo/dbg"
	"github.com/sirupsen/logrus"
)

// SimplePolygon is a closed boundary through its vertices in order, with an
// implicit edge from the last vertex back to the first. The vertices come out
// of AngularOrder, and are assumed (not checked) to trace a boundary that does
// not cross itself.
//
// A SimplePolygon is never modified after construction, so any number of
// goroutines may query it at once.
type SimplePolygon struct {
	vertices []Point
	opts     options
}

// NewSimplePolygon orders points around their minimum point and returns the
// resulting polygon. The input slice is not modified. Points need not be
// distinct, and there need not be three of them, but a polygon with fewer than
// three vertices has no inside.
//
// Invalid coordinates panic with a GeometryError wrapping ErrInvalidPoint.
func NewSimplePolygon(points []Point, opts ...Option) *SimplePolygon {
	o := buildOptions(opts)
	poly := &SimplePolygon{
		vertices: angularOrder(points, &o),
		opts:     o,
	}
	if len(poly.vertices) < 3 {
		o.log().WithField("vertices", len(poly.vertices)).Warn("degenerate polygon; every point is outside")
	}
	return poly
}

func (poly *SimplePolygon) Len() int {
	return len(poly.vertices)
}

// Vertices returns a copy of the ordered vertex list.
func (poly *SimplePolygon) Vertices() []Point {
	return append([]Point(nil), poly.vertices...)
}

// Vertex returns vertex i, wrapping around in either direction. It panics on an
// empty polygon.
func (poly *SimplePolygon) Vertex(i int) Point {
	if len(poly.vertices) == 0 {
		panic("plane: Vertex of empty polygon")
	}
	return poly.vertices[CircularIndex(i, len(poly.vertices))]
}

// Edge i runs from vertex i to vertex i+1, wrapping at the end. Like Vertex, it
// panics on an empty polygon.
func (poly *SimplePolygon) Edge(i int) Segment {
	return Segment{Begin: poly.Vertex(i), End: poly.Vertex(i + 1)}
}

func (poly *SimplePolygon) Edges() []Segment {
	edges := make([]Segment, len(poly.vertices))
	for i := range poly.vertices {
		edges[i] = poly.Edge(i)
	}
	return edges
}

// Leftmost returns the smallest vertex under Compare. It panics on an empty
// polygon.
func (poly *SimplePolygon) Leftmost() Point {
	return Min(poly.vertices...)
}

func (poly *SimplePolygon) String() string {
	parts := make([]string, len(poly.vertices))
	for i, p := range poly.vertices {
		parts[i] = fmt.Sprintf("(%g, %g)", p.X, p.Y)
	}
	return fmt.Sprintf("SimplePolygon[%s]", strings.Join(parts, " "))
}

// IsInside reports whether p is inside the polygon by the even-odd rule.
//
// The test counts how many times the boundary crosses the segment from p to a
// point just left of the leftmost vertex, which is always outside. When that
// segment passes through vertices, each maximal run of consecutive vertices on
// it is treated as a single place where the boundary meets it. That run is a
// crossing only if the vertices on either side of it lie on opposite sides of
// the segment. Counting the vertices separately would break parity whenever
// the segment grazes a corner or runs along an edge.
//
// Points on the boundary are classified by the same parity count, with no
// special case, so which edges count as inside depends on the shape. For
// example, on an axis-aligned square the left and bottom edges are inside,
// while the right and top edges are outside.
//
// Polygons with fewer than three vertices contain nothing.
//
// A query point with an invalid coordinate panics with a GeometryError
// wrapping ErrInvalidPoint.
func (poly *SimplePolygon) IsInside(p Point) bool {
	mustBeValid(p, "query point")
	if len(poly.vertices) < 3 {
		return false
	}
	return poly.crossingCount(p)%2 == 1
}

// crossingCount walks the edges with two cursors: i is the current vertex, and
// k scans ahead over runs of vertices that lie on the ray.
func (poly *SimplePolygon) crossingCount(p Point) int {
	n := len(poly.vertices)
	leftmost := poly.Leftmost()
	ray := Segment{Begin: p, End: leftmost.Translate(-1, 0)}

	trace := newWalkTrace(poly.opts.log(), ray, poly.vertices)

	// Start on a vertex off the ray, so that a run is never split by the wrap
	// from the last vertex to the first.
	start := -1
	for i, v := range poly.vertices {
		if !ray.ContainsPoint(v) {
			start = i
			break
		}
	}
	if start < 0 {
		trace.step("all vertices on ray", -1, -1, false)
		return 0
	}

	count := 0
	for visited := 0; visited < n; {
		i := CircularIndex(start+visited, n)
		j := CircularIndex(i+1, n)
		vi := poly.vertices[i]
		vj := poly.vertices[j]

		switch {
		case ray.ContainsPoint(vi):
			// Absorb the run of vertices on the ray. The vertex before i is off the
			// ray, because we never start inside a run.
			k := j
			for ray.ContainsPoint(poly.vertices[k]) {
				k = CircularIndex(k+1, n)
			}
			before := poly.Vertex(i - 1)
			after := poly.vertices[k]
			crossed := ray.Orientation(before) != ray.Orientation(after)
			if crossed {
				count++
			}
			trace.step("run", i, k, crossed)
			visited += CircularIndex(k-i, n)
		case ray.ContainsPoint(vj):
			// The run starting at j is handled on the next step.
			trace.step("defer", i, j, false)
			visited++
		default:
			crossed := ray.Intersects(Segment{Begin: vi, End: vj})
			if crossed {
				count++
			}
			trace.step("edge", i, j, crossed)
			visited++
		}
	}
	return count
}

// walkTrace logs the steps of crossingCount at trace level. Formatting is
// skipped entirely unless trace logging is enabled.
type walkTrace struct {
	log      *logrus.Entry
	enabled  bool
	vertices []Point
}

func newWalkTrace(log *logrus.Entry, ray Segment, vertices []Point) walkTrace {
	enabled := log.Logger.IsLevelEnabled(logrus.TraceLevel)
	if enabled {
		log = log.WithField("ray", ray.String())
	}
	return walkTrace{log: log, enabled: enabled, vertices: vertices}
}

func (t walkTrace) vertexName(i int) string {
	if i < 0 {
		return dbg.Name(nil)
	}
	return dbg.Name(t.vertices[i])
}

func (t walkTrace) step(kind string, from, to int, crossed bool) {
	if !t.enabled {
		return
	}
	label := aurora.Yellow(kind).String()
	if crossed {
		label = aurora.Green(kind).String()
	} else if kind == "run" {
		label = aurora.Cyan(kind).String()
	}
	t.log.WithFields(logrus.Fields{
		"from":     from,
		"to":       to,
		"crossed":  crossed,
		"fromName": t.vertexName(from),
		"toName":   t.vertexName(to),
	}).Tracef("walk %s", label)
}
