package geom

import "fmt"

// LineKind determines how far a Line extends along its direction.
type LineKind uint8

const (
	// KindLine extends infinitely in both directions.
	KindLine LineKind = iota

	// KindRay starts at its location and extends infinitely along its
	// direction.
	KindRay

	// KindSegment spans from its location to its location plus its
	// direction, both ends included.
	KindSegment
)

var lineKindNames = [...]string{"Line", "Ray", "Segment"}

func (k LineKind) String() string {
	if int(k) < len(lineKindNames) {
		return lineKindNames[k]
	}
	return fmt.Sprintf("LineKind(%d)", k)
}

// Line is a line, ray or segment defined by a location and a
// direction. Direction is a displacement from Location, not a second
// point.
//
// The zero value and Line literals are infinite lines. Rays and
// segments are created with NewRay, NewSegment and SegmentBetween.
type Line[T Scalar, D Dim] struct {
	Location  Vector[T, D]
	Direction Vector[T, D]

	kind LineKind
}

// Line2 is a two-dimensional Line.
type Line2[T Scalar] = Line[T, Dim2]

// NewLine returns an infinite line through location along direction.
func NewLine[T Scalar, D Dim](location, direction Vector[T, D]) Line[T, D] {
	return Line[T, D]{Location: location, Direction: direction, kind: KindLine}
}

// NewRay returns a ray starting at location and pointing along
// direction.
func NewRay[T Scalar, D Dim](location, direction Vector[T, D]) Line[T, D] {
	return Line[T, D]{Location: location, Direction: direction, kind: KindRay}
}

// NewSegment returns the segment from location to location+direction.
func NewSegment[T Scalar, D Dim](location, direction Vector[T, D]) Line[T, D] {
	return Line[T, D]{Location: location, Direction: direction, kind: KindSegment}
}

// SegmentBetween returns the segment from a to b.
func SegmentBetween[T Scalar, D Dim](a, b Vector[T, D]) Line[T, D] {
	return NewSegment(a, b.Sub(a))
}

// Kind returns the kind of l.
func (l Line[T, D]) Kind() LineKind {
	return l.kind
}

// FirstVertex returns the point at which l is anchored.
func (l Line[T, D]) FirstVertex() Vector[T, D] {
	return l.Location
}

// SecondVertex returns the point reached by following l's direction
// once from its location.
func (l Line[T, D]) SecondVertex() Vector[T, D] {
	return l.Location.Add(l.Direction)
}

// IsNull reports whether l is degenerate, meaning that it has no
// direction.
func (l Line[T, D]) IsNull() bool {
	return l.Direction.IsZero()
}

// At returns the point at parametric distance t along l, ignoring
// its kind.
func (l Line[T, D]) At(t T) Vector[T, D] {
	return l.Location.Add(l.Direction.MulScalar(t))
}

// EdgeCount returns 1. A line is its own single edge.
func (l Line[T, D]) EdgeCount() int {
	return 1
}

// Edge returns l itself. It panics if i is not 0.
func (l Line[T, D]) Edge(i int) Line[T, D] {
	if i != 0 {
		panic(fmt.Sprintf("geom: Line.Edge: index %v out of range [0, 1)", i))
	}
	return l
}

func (l Line[T, D]) String() string {
	return fmt.Sprintf("%v{%v %v}", l.kind, l.Location, l.Direction)
}

// inRange reports whether the parametric distance num/den lies within
// the range allowed by kind. It compares the exact fraction instead of
// the quotient so that integer lines are classified correctly.
func inRange[T Signed](kind LineKind, num, den T) bool {
	if den < 0 {
		num, den = -num, -den
	}

	switch kind {
	case KindRay:
		return num >= 0
	case KindSegment:
		return (num >= 0) && (num <= den)
	default:
		return true
	}
}
