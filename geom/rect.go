package geom

import (
	"fmt"
	"slices"
)

// Rect is a four-sided polygon built from a span, an ordered chain of
// transforms and a position. Each vertex starts as a corner of the
// span-sized rectangle at the origin, passes through every transform
// in order and is finally offset by Position.
//
// Transforms that are affine, such as those in package transform,
// always produce a parallelogram, which is what ContainsPoint and the
// other predicates assume.
//
// A Rect is null if its Span is the zero vector.
//
// Copying a Rect copies the Transforms slice header but not its
// elements, so assigning to an element of Transforms affects every
// copy. Use Clone first to modify the chain of a copy in place.
type Rect[T Signed] struct {
	Position   Vec2[T]
	Span       Vec2[T]
	Transforms Transforms[T, Dim2]
}

// NewRect returns a Rect with the given position, span and
// transforms. The Rect keeps its own copy of transforms.
func NewRect[T Signed](position, span Vec2[T], transforms ...Transformer[T, Dim2]) Rect[T] {
	return Rect[T]{Position: position, Span: span, Transforms: slices.Clone(transforms)}
}

// RectFrom returns a Rect covering the same area as r with the given
// transforms added.
func RectFrom[T Signed](r AABB[T], transforms ...Transformer[T, Dim2]) Rect[T] {
	return NewRect(r.Position, r.Span, transforms...)
}

// Clone returns a copy of r that does not share its Transforms with r.
func (r Rect[T]) Clone() Rect[T] {
	r.Transforms = slices.Clone(r.Transforms)
	return r
}

// IsNull reports whether r is degenerate.
func (r Rect[T]) IsNull() bool {
	return r.Span.IsZero()
}

// AABB returns r without its transforms. ok is false if r has any
// transforms, in which case the returned rectangle does not cover the
// same area as r.
func (r Rect[T]) AABB() (aabb AABB[T], ok bool) {
	return AABB[T]{Position: r.Position, Span: r.Span}, len(r.Transforms) == 0
}

// VertexCount returns 4.
func (r Rect[T]) VertexCount() int {
	return 4
}

// EdgeCount returns 4.
func (r Rect[T]) EdgeCount() int {
	return 4
}

// Vertex returns the vertex of r at index i. It panics if r is null or
// i is out of range.
func (r Rect[T]) Vertex(i int) Vec2[T] {
	checkPolygonIndex("Rect.Vertex", r.IsNull(), i)
	v := corner(i, r.Span)
	return r.Transforms.Transform(v).Add(r.Position)
}

// Edge returns the segment from vertex i to vertex (i+1)%4. It panics
// if r is null or i is out of range.
func (r Rect[T]) Edge(i int) Line2[T] {
	checkPolygonIndex("Rect.Edge", r.IsNull(), i)
	return SegmentBetween(r.Vertex(i), r.Vertex((i+1)%4))
}

// ContainsPoint reports whether p lies within r, boundary included.
// Untransformed rects are checked against their sorted bounds. Any
// other rect is treated as the parallelogram A+s*AB+t*AD spanned by
// its vertices A, B and D at indices 0, 1 and 3, and p is contained if
// both s and t lie in [0, 1]. A rect that transforms into a line or a
// point contains nothing.
func (r Rect[T]) ContainsPoint(p Vec2[T]) bool {
	if aabb, ok := r.AABB(); ok {
		return aabb.ContainsPoint(p)
	}

	a, b, d := r.Vertex(0), r.Vertex(1), r.Vertex(3)
	am, ab, ad := p.Sub(a), b.Sub(a), d.Sub(a)
	den := Cross(ab, ad)
	if den == 0 {
		return false
	}
	return inRange(KindSegment, Cross(am, ad), den) &&
		inRange(KindSegment, Cross(ab, am), den)
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("Rect{%v %v %v}", r.Position, r.Span, len(r.Transforms))
}
