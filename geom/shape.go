package geom

import "iter"

// Shape is a two-dimensional object made of straight edges. Lines,
// rays and segments are shapes with a single edge.
type Shape[T Scalar] interface {
	EdgeCount() int
	Edge(int) Line2[T]
	IsNull() bool
}

// Polygon is a Shape with enumerable vertices.
type Polygon[T Scalar] interface {
	Shape[T]
	VertexCount() int
	Vertex(int) Vec2[T]
}

// Region is a Polygon that can decide whether or not a point lies
// inside of it.
type Region[T Scalar] interface {
	Polygon[T]
	ContainsPoint(Vec2[T]) bool
}

// Vertices returns an iterator over the vertices of p in index order.
func Vertices[T Scalar, P Polygon[T]](p P) iter.Seq[Vec2[T]] {
	return func(yield func(Vec2[T]) bool) {
		for i := range p.VertexCount() {
			if !yield(p.Vertex(i)) {
				return
			}
		}
	}
}

// AllEdges returns an iterator over the edges of s in index order.
func AllEdges[T Scalar, S Shape[T]](s S) iter.Seq[Line2[T]] {
	return func(yield func(Line2[T]) bool) {
		for i := range s.EdgeCount() {
			if !yield(s.Edge(i)) {
				return
			}
		}
	}
}

// properEdges is like AllEdges but skips edges of zero length.
func properEdges[T Scalar, S Shape[T]](s S) iter.Seq[Line2[T]] {
	return func(yield func(Line2[T]) bool) {
		for edge := range AllEdges[T](s) {
			if edge.IsNull() {
				continue
			}
			if !yield(edge) {
				return
			}
		}
	}
}
