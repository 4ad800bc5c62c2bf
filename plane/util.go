package plane

// Often we want to treat a slice as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

type PointSet map[Point]struct{}

func NewPointSet(points ...Point) PointSet {
	set := make(PointSet, len(points))
	for _, p := range points {
		set.Add(p)
	}
	return set
}

func (set PointSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p Point) bool {
	_, ok := set[p]
	return ok
}

func (set PointSet) Equals(other PointSet) bool {
	if len(set) != len(other) {
		return false
	}
	for p := range set {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}
