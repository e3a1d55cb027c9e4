package geom

// Intersects reports whether any edge of a intersects any edge of b.
// For two lines this is the same as their Intersection being
// Intersecting. The order of the arguments does not matter. Edges of
// zero length, such as two of the edges of a rect that is flat along
// one axis, are skipped.
//
// It panics if either shape is null.
func Intersects[T Signed, A Shape[T], B Shape[T]](a A, b B) bool {
	if a.IsNull() || b.IsNull() {
		panic("geom: Intersects: null shape")
	}

	for edge := range properEdges[T](a) {
		for other := range properEdges[T](b) {
			if result, _, _ := Intersection(edge, other); result == Intersecting {
				return true
			}
		}
	}
	return false
}

// Contains reports whether every vertex of inner lies within outer.
//
// Only vertices are checked, so the result is only meaningful if inner
// is convex or otherwise cannot bulge out of outer between two of its
// vertices. Every shape in this package satisfies that.
func Contains[T Scalar, R Region[T], P Polygon[T]](outer R, inner P) bool {
	if o, ok := any(outer).(AABB[T]); ok {
		if i, ok := any(inner).(AABB[T]); ok {
			return o.ContainsRect(i)
		}
	}

	for v := range Vertices[T](inner) {
		if !outer.ContainsPoint(v) {
			return false
		}
	}
	return true
}

// ContainsSegment reports whether both end points of seg lie within
// outer. Rays and infinite lines are never contained.
func ContainsSegment[T Scalar, R Region[T]](outer R, seg Line2[T]) bool {
	if seg.Kind() != KindSegment {
		return false
	}
	return outer.ContainsPoint(seg.FirstVertex()) && outer.ContainsPoint(seg.SecondVertex())
}

// Overlaps reports whether a and b share any area. This is the case if
// they intersect or if either one contains the other. The order of the
// arguments does not matter.
//
// It panics if either shape is null.
func Overlaps[T Signed, A Shape[T], B Shape[T]](a A, b B) bool {
	if a.IsNull() || b.IsNull() {
		panic("geom: Overlaps: null shape")
	}

	return Intersects[T](a, b) ||
		containsShape[T](a, b) ||
		containsShape[T](b, a)
}

func containsShape[T Scalar](outer, inner any) bool {
	region, ok := outer.(Region[T])
	if !ok {
		return false
	}

	switch inner := inner.(type) {
	case Polygon[T]:
		return Contains[T](region, inner)
	case Line2[T]:
		return ContainsSegment[T](region, inner)
	default:
		return false
	}
}
