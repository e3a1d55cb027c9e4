package geom

// Bounds returns the top left and bottom right corners of the
// smallest axis-aligned rectangle containing every vertex of p. It
// panics if p is null or has fewer than two vertices.
func Bounds[T Scalar, P Polygon[T]](p P) (topLeft, bottomRight Vec2[T]) {
	if r, ok := any(p).(AABB[T]); ok {
		if r.IsNull() {
			panic("geom: Bounds: null polygon")
		}
		return r.TopLeft(), r.BottomRight()
	}

	n := p.VertexCount()
	if p.IsNull() || (n < 2) {
		panic("geom: Bounds: null or degenerate polygon")
	}

	topLeft = p.Vertex(0)
	bottomRight = topLeft
	for i := 1; i < n; i++ {
		v := p.Vertex(i)
		topLeft = topLeft.Min(v)
		bottomRight = bottomRight.Max(v)
	}
	return topLeft, bottomRight
}

// BoundingRect returns the smallest axis-aligned rectangle containing
// every vertex of p. The result always has a non-negative span. It
// panics under the same conditions as Bounds.
func BoundingRect[T Scalar, P Polygon[T]](p P) AABB[T] {
	tl, br := Bounds[T](p)
	return AABB[T]{Position: tl, Span: br.Sub(tl)}
}

// Left returns the smallest x coordinate of any vertex of p.
func Left[T Scalar, P Polygon[T]](p P) T {
	tl, _ := Bounds[T](p)
	return tl.e[0]
}

// Right returns the largest x coordinate of any vertex of p.
func Right[T Scalar, P Polygon[T]](p P) T {
	_, br := Bounds[T](p)
	return br.e[0]
}

// Top returns the smallest y coordinate of any vertex of p.
func Top[T Scalar, P Polygon[T]](p P) T {
	tl, _ := Bounds[T](p)
	return tl.e[1]
}

// Bottom returns the largest y coordinate of any vertex of p.
func Bottom[T Scalar, P Polygon[T]](p P) T {
	_, br := Bounds[T](p)
	return br.e[1]
}
