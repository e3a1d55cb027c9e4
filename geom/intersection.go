package geom

import (
	"fmt"
	"iter"
)

// IntersectionResult classifies the relationship between two lines.
type IntersectionResult uint8

const (
	// NoIntersection means that the lines cross algebraically but the
	// crossing lies outside of the range of at least one of them.
	NoIntersection IntersectionResult = iota

	// Intersecting means that the lines cross at a single point that
	// lies within the range of both of them.
	Intersecting

	// Parallel means that the lines have parallel directions but do
	// not lie on the same infinite line.
	Parallel

	// Collinear means that the lines lie on the same infinite line.
	Collinear
)

var intersectionResultNames = [...]string{"NoIntersection", "Intersecting", "Parallel", "Collinear"}

func (r IntersectionResult) String() string {
	if int(r) < len(intersectionResultNames) {
		return intersectionResultNames[r]
	}
	return fmt.Sprintf("IntersectionResult(%d)", r)
}

// Intersection classifies the relationship between a and b. If the
// result is Intersecting, ta and tb are the parametric distances of
// the crossing point along a and b respectively, each in units of its
// own line's direction. Otherwise they are zero. For integer types the
// distances are truncated, although the classification is exact.
//
// No tolerance is applied. Floating point lines that are nearly
// parallel are reported as crossing far away, not as Parallel.
//
// Intersection panics if either line is null.
func Intersection[T Signed](a, b Line2[T]) (result IntersectionResult, ta, tb T) {
	if a.IsNull() || b.IsNull() {
		panic("geom: Intersection: null line")
	}

	d1, d2 := a.Direction, b.Direction
	diff := a.Location.Sub(b.Location)

	den := d2.e[1]*d1.e[0] - d2.e[0]*d1.e[1]
	numA := d2.e[0]*diff.e[1] - d2.e[1]*diff.e[0]
	numB := d1.e[0]*diff.e[1] - d1.e[1]*diff.e[0]

	switch {
	case (den == 0) && ((numA == 0) || (numB == 0)):
		return Collinear, 0, 0
	case den == 0:
		return Parallel, 0, 0
	}

	if !inRange(a.kind, numA, den) || !inRange(b.kind, numB, den) {
		return NoIntersection, 0, 0
	}
	return Intersecting, numA / den, numB / den
}

// Intersections returns an iterator over the edges of shape that
// intersect line, along with the parametric distance of each crossing
// along line. Each edge is tested with Intersection(edge, line). Edges
// of zero length are skipped. For integer types the distances are
// truncated as described for Intersection.
//
// There is no shape-first variant. The distances are always measured
// along line, so line comes first. Intersects and Overlaps accept
// their arguments in either order.
//
// It panics if line or shape is null.
func Intersections[T Signed, S Shape[T]](line Line2[T], shape S) iter.Seq2[Line2[T], T] {
	if line.IsNull() || shape.IsNull() {
		panic("geom: Intersections: null shape")
	}

	return func(yield func(Line2[T], T) bool) {
		for edge := range properEdges[T](shape) {
			result, _, dist := Intersection(edge, line)
			if result != Intersecting {
				continue
			}
			if !yield(edge, dist) {
				return
			}
		}
	}
}

// ForEachIntersection calls f for each edge of shape that intersects
// line. Like Intersections, it only exists in line-first order.
func ForEachIntersection[T Signed, S Shape[T]](line Line2[T], shape S, f func(edge Line2[T], dist T)) {
	for edge, dist := range Intersections(line, shape) {
		f(edge, dist)
	}
}

// FirstIntersection returns the parametric distance along line of the
// crossing with shape that is closest to line's location. ok is false
// if they do not intersect.
//
// For integer types the distance is truncated towards zero, so a
// crossing a third of the way along a segment is reported at 0. Use a
// floating point type when the exact position matters.
func FirstIntersection[T Signed, S Shape[T]](line Line2[T], shape S) (dist T, ok bool) {
	for _, d := range Intersections(line, shape) {
		if !ok || (abs(d) < abs(dist)) {
			dist, ok = d, true
		}
	}
	return dist, ok
}

// IntersectionPoint is like FirstIntersection but returns the
// crossing point instead of its distance. For integer types the point
// is computed from the truncated distance and is therefore only
// approximate.
func IntersectionPoint[T Signed, S Shape[T]](line Line2[T], shape S) (Vec2[T], bool) {
	dist, ok := FirstIntersection(line, shape)
	if !ok {
		return Vec2[T]{}, false
	}
	return line.At(dist), true
}

func abs[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
