// Package transform provides composable vector transforms for use
// with geom.Rect and anything else that accepts a geom.Transformer.
package transform

import (
	"deedles.dev/georithm/geom"
)

// Translation offsets vectors by a fixed amount.
type Translation[T geom.Scalar, D geom.Dim] struct {
	Offset geom.Vector[T, D]
}

// NewTranslation returns a Translation by offset.
func NewTranslation[T geom.Scalar, D geom.Dim](offset geom.Vector[T, D]) Translation[T, D] {
	return Translation[T, D]{Offset: offset}
}

func (t Translation[T, D]) Transform(v geom.Vector[T, D]) geom.Vector[T, D] {
	return v.Add(t.Offset)
}

// Scale multiplies vectors element-wise by a fixed factor. Note that
// the zero value scales every vector to zero.
type Scale[T geom.Scalar, D geom.Dim] struct {
	Factor geom.Vector[T, D]
}

// NewScale returns a Scale by factor.
func NewScale[T geom.Scalar, D geom.Dim](factor geom.Vector[T, D]) Scale[T, D] {
	return Scale[T, D]{Factor: factor}
}

func (s Scale[T, D]) Transform(v geom.Vector[T, D]) geom.Vector[T, D] {
	return v.Mul(s.Factor)
}

// Rotation rotates vectors by a fixed angle, in radians, around
// Pivot. Integer vectors are rounded half away from zero after
// rotating.
type Rotation[T geom.Signed] struct {
	Angle float64
	Pivot geom.Vec2[T]
}

// NewRotation returns a Rotation by angle around the origin.
func NewRotation[T geom.Signed](angle float64) Rotation[T] {
	return Rotation[T]{Angle: angle}
}

// NewRotationAround returns a Rotation by angle around pivot.
func NewRotationAround[T geom.Signed](pivot geom.Vec2[T], angle float64) Rotation[T] {
	return Rotation[T]{Angle: angle, Pivot: pivot}
}

func (r Rotation[T]) Transform(v geom.Vec2[T]) geom.Vec2[T] {
	return geom.RotateAround(v, r.Pivot, r.Angle)
}

// Shear skews the x coordinate of vectors by Factor.X times their y
// coordinate and the y coordinate by Factor.Y times their x
// coordinate.
type Shear[T geom.Scalar] struct {
	Factor geom.Vec2[T]
}

// NewShear returns a Shear by factor.
func NewShear[T geom.Scalar](factor geom.Vec2[T]) Shear[T] {
	return Shear[T]{Factor: factor}
}

func (s Shear[T]) Transform(v geom.Vec2[T]) geom.Vec2[T] {
	x, y := v.X(), v.Y()
	return geom.V2(x+s.Factor.X()*y, y+s.Factor.Y()*x)
}
