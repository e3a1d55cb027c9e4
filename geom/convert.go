package geom

import (
	"image"

	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/spatial/r2"
)

// ImagePoint converts v to an image.Point, truncating fractional
// coordinates.
func ImagePoint[T Scalar](v Vec2[T]) image.Point {
	return image.Pt(int(v.e[0]), int(v.e[1]))
}

// FromImagePoint converts p to a Vec2.
func FromImagePoint[T Scalar](p image.Point) Vec2[T] {
	return V2(T(p.X), T(p.Y))
}

// ImageRect converts r to the image.Rectangle with the same corners.
// The image.Rectangle excludes its right and bottom edges, whereas r
// includes them.
func ImageRect[T Scalar](r AABB[T]) image.Rectangle {
	return image.Rectangle{
		Min: ImagePoint(r.TopLeft()),
		Max: ImagePoint(r.BottomRight()),
	}
}

// FromImageRect converts the canonical version of r to an AABB.
func FromImageRect[T Scalar](r image.Rectangle) AABB[T] {
	r = r.Canon()
	return AABB[T]{
		Position: FromImagePoint[T](r.Min),
		Span:     FromImagePoint[T](r.Size()),
	}
}

// R2Vec converts v to a gonum r2.Vec.
func R2Vec[T Scalar](v Vec2[T]) r2.Vec {
	return r2.Vec{X: float64(v.e[0]), Y: float64(v.e[1])}
}

// FromR2Vec converts v to a Vec2. Integer types are rounded half away
// from zero.
func FromR2Vec[T Scalar](v r2.Vec) Vec2[T] {
	return V2(fromFloat[T](v.X), fromFloat[T](v.Y))
}

// R2Box converts r to a gonum r2.Box.
func R2Box[T Scalar](r AABB[T]) r2.Box {
	return r2.Box{
		Min: R2Vec(r.TopLeft()),
		Max: R2Vec(r.BottomRight()),
	}
}

// FromR2Box converts the canonical version of b to an AABB.
func FromR2Box[T Scalar](b r2.Box) AABB[T] {
	b = b.Canon()
	return AABBBetween(FromR2Vec[T](b.Min), FromR2Vec[T](b.Max))
}

// FixedPoint converts v to a fixed.Point26_6.
func FixedPoint(v Vec2[fixed.Int26_6]) fixed.Point26_6 {
	return fixed.Point26_6{X: v.e[0], Y: v.e[1]}
}

// FromFixedPoint converts p to a Vec2.
func FromFixedPoint(p fixed.Point26_6) Vec2[fixed.Int26_6] {
	return V2(p.X, p.Y)
}

// FixedRect converts r to the fixed.Rectangle26_6 with the same
// corners.
func FixedRect(r AABB[fixed.Int26_6]) fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: FixedPoint(r.TopLeft()),
		Max: FixedPoint(r.BottomRight()),
	}
}

// FromFixedRect converts r to an AABB.
func FromFixedRect(r fixed.Rectangle26_6) AABB[fixed.Int26_6] {
	return AABBBetween(FromFixedPoint(r.Min), FromFixedPoint(r.Max))
}
