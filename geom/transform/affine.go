package transform

import (
	"math"

	"deedles.dev/georithm/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// Affine is a general two-dimensional affine transform, stored as the
// top two rows of a 3x3 matrix:
//
//	| A B C |
//	| D E F |
//
// so that a vector (x, y) maps to (A*x + B*y + C, D*x + E*y + F).
//
// An Affine can stand in for a whole chain of the other transforms in
// this package. The arithmetic is done in float64 and integer results
// are rounded once at the end, whereas a chain rounds after every
// step, so the two can differ by a unit for integer types.
type Affine[T geom.Signed] struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the Affine that leaves vectors unchanged.
func Identity[T geom.Signed]() Affine[T] {
	return Affine[T]{A: 1, E: 1}
}

// Offset returns the Affine equivalent of a Translation by v.
func Offset[T geom.Signed](v geom.Vec2[T]) Affine[T] {
	return Affine[T]{
		A: 1, C: float64(v.X()),
		E: 1, F: float64(v.Y()),
	}
}

// Scaling returns the Affine equivalent of a Scale by v.
func Scaling[T geom.Signed](v geom.Vec2[T]) Affine[T] {
	return Affine[T]{A: float64(v.X()), E: float64(v.Y())}
}

// Rotating returns the Affine equivalent of a Rotation by angle around
// the origin.
func Rotating[T geom.Signed](angle float64) Affine[T] {
	sin, cos := math.Sincos(angle)
	return Affine[T]{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// Shearing returns the Affine equivalent of a Shear by v.
func Shearing[T geom.Signed](v geom.Vec2[T]) Affine[T] {
	return Affine[T]{
		A: 1, B: float64(v.X()),
		D: float64(v.Y()), E: 1,
	}
}

// Then returns the Affine that applies a and then next.
func (a Affine[T]) Then(next Affine[T]) Affine[T] {
	return Affine[T]{
		A: next.A*a.A + next.B*a.D,
		B: next.A*a.B + next.B*a.E,
		C: next.A*a.C + next.B*a.F + next.C,
		D: next.D*a.A + next.E*a.D,
		E: next.D*a.B + next.E*a.E,
		F: next.D*a.C + next.E*a.F + next.F,
	}
}

func (a Affine[T]) Transform(v geom.Vec2[T]) geom.Vec2[T] {
	x, y := float64(v.X()), float64(v.Y())
	return geom.FromR2Vec[T](r2.Vec{
		X: a.A*x + a.B*y + a.C,
		Y: a.D*x + a.E*y + a.F,
	})
}
