package geom

import "fmt"

// AABB is an axis-aligned rectangle, the untransformed form of Rect.
// It spans from Position to Position+Span. Span may be negative along
// either axis, in which case the rectangle extends left or upwards
// from Position. The methods that report bounds always sort them.
//
// An AABB is null if its Span is the zero vector.
type AABB[T Scalar] struct {
	Position Vec2[T]
	Span     Vec2[T]
}

// NewAABB is shorthand for AABB[T]{Position: position, Span: span}.
func NewAABB[T Scalar](position, span Vec2[T]) AABB[T] {
	return AABB[T]{Position: position, Span: span}
}

// AABBBetween returns the smallest AABB containing both a and b, with
// a non-negative span.
func AABBBetween[T Scalar](a, b Vec2[T]) AABB[T] {
	lo := a.Min(b)
	return AABB[T]{Position: lo, Span: a.Max(b).Sub(lo)}
}

// IsNull reports whether r is degenerate.
func (r AABB[T]) IsNull() bool {
	return r.Span.IsZero()
}

func (r AABB[T]) Left() T {
	return min(r.Position.e[0], r.Position.e[0]+r.Span.e[0])
}

func (r AABB[T]) Right() T {
	return max(r.Position.e[0], r.Position.e[0]+r.Span.e[0])
}

func (r AABB[T]) Top() T {
	return min(r.Position.e[1], r.Position.e[1]+r.Span.e[1])
}

func (r AABB[T]) Bottom() T {
	return max(r.Position.e[1], r.Position.e[1]+r.Span.e[1])
}

func (r AABB[T]) TopLeft() Vec2[T]     { return V2(r.Left(), r.Top()) }
func (r AABB[T]) TopRight() Vec2[T]    { return V2(r.Right(), r.Top()) }
func (r AABB[T]) BottomLeft() Vec2[T]  { return V2(r.Left(), r.Bottom()) }
func (r AABB[T]) BottomRight() Vec2[T] { return V2(r.Right(), r.Bottom()) }

// Dx returns the width of r.
func (r AABB[T]) Dx() T {
	return r.Right() - r.Left()
}

// Dy returns the height of r.
func (r AABB[T]) Dy() T {
	return r.Bottom() - r.Top()
}

// Canon returns the canonical version of r, which covers the same
// area with Position at the top left and a non-negative Span.
func (r AABB[T]) Canon() AABB[T] {
	tl := r.TopLeft()
	return AABB[T]{Position: tl, Span: r.BottomRight().Sub(tl)}
}

// Add returns r translated by v.
func (r AABB[T]) Add(v Vec2[T]) AABB[T] {
	r.Position = r.Position.Add(v)
	return r
}

// Resize returns the canonical version of r with its span replaced,
// keeping the top left corner in place.
func (r AABB[T]) Resize(span Vec2[T]) AABB[T] {
	r = r.Canon()
	r.Span = span
	return r
}

// Center returns the center point of r.
func (r AABB[T]) Center() Vec2[T] {
	return r.TopLeft().Add(V2(r.Dx()/2, r.Dy()/2))
}

// CenterAt returns the canonical version of r moved so that its
// center is at p.
func (r AABB[T]) CenterAt(p Vec2[T]) AABB[T] {
	r = r.Canon()
	r.Position = p.Sub(V2(r.Span.e[0]/2, r.Span.e[1]/2))
	return r
}

// ContainsPoint reports whether p lies within r. Points on the
// boundary are contained.
func (r AABB[T]) ContainsPoint(p Vec2[T]) bool {
	return (r.Left() <= p.e[0]) && (p.e[0] <= r.Right()) &&
		(r.Top() <= p.e[1]) && (p.e[1] <= r.Bottom())
}

// ContainsRect reports whether inner lies completely within r,
// boundaries included.
func (r AABB[T]) ContainsRect(inner AABB[T]) bool {
	tl, itl := r.TopLeft(), inner.TopLeft()
	br, ibr := r.BottomRight(), inner.BottomRight()
	return (tl.e[0] <= itl.e[0]) && (tl.e[1] <= itl.e[1]) &&
		(ibr.e[0] <= br.e[0]) && (ibr.e[1] <= br.e[1])
}

// VertexCount returns 4.
func (r AABB[T]) VertexCount() int {
	return 4
}

// EdgeCount returns 4.
func (r AABB[T]) EdgeCount() int {
	return 4
}

// Vertex returns the vertex of r at index i. Indices run from the
// corner at Position through Position+(Span.X, 0), Position+Span and
// Position+(0, Span.Y). It panics if r is null or i is out of range.
func (r AABB[T]) Vertex(i int) Vec2[T] {
	checkPolygonIndex("AABB.Vertex", r.IsNull(), i)
	return corner(i, r.Span).Add(r.Position)
}

// Edge returns the segment from vertex i to vertex (i+1)%4. It panics
// if r is null or i is out of range.
func (r AABB[T]) Edge(i int) Line2[T] {
	checkPolygonIndex("AABB.Edge", r.IsNull(), i)
	return SegmentBetween(r.Vertex(i), r.Vertex((i+1)%4))
}

func (r AABB[T]) String() string {
	return fmt.Sprintf("AABB{%v %v}", r.Position, r.Span)
}

// corner returns the untransformed vertex i of a rectangle spanning
// span from the origin.
func corner[T Scalar](i int, span Vec2[T]) (v Vec2[T]) {
	if (i == 1) || (i == 2) {
		v.e[0] = span.e[0]
	}
	if (i == 2) || (i == 3) {
		v.e[1] = span.e[1]
	}
	return v
}

func checkPolygonIndex(op string, null bool, i int) {
	if null {
		panic(fmt.Sprintf("geom: %v: null rectangle", op))
	}
	if (i < 0) || (i >= 4) {
		panic(fmt.Sprintf("geom: %v: index %v out of range [0, 4)", op, i))
	}
}
