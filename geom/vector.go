package geom

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/spatial/r2"
)

// Vector is a fixed-size tuple of T with D.Len() elements. Vectors
// are comparable with ==, which compares element-wise without any
// tolerance.
type Vector[T Scalar, D Dim] struct {
	// Elements past D.Len() are always zero.
	e [maxDims]T
}

// Vec2 is a two-dimensional Vector.
type Vec2[T Scalar] = Vector[T, Dim2]

// Vec3 is a three-dimensional Vector.
type Vec3[T Scalar] = Vector[T, Dim3]

// Vec returns a vector made of elems. It panics if the number of
// elements does not match the dimension.
func Vec[T Scalar, D Dim](elems ...T) (v Vector[T, D]) {
	if len(elems) != dims[D]() {
		panic(fmt.Sprintf("geom: Vec: expected %v elements, got %v", dims[D](), len(elems)))
	}
	copy(v.e[:], elems)
	return v
}

// V1 is shorthand for a one-dimensional Vector.
func V1[T Scalar](x T) Vector[T, Dim1] {
	return Vector[T, Dim1]{e: [maxDims]T{x}}
}

// V2 is shorthand for Vec2[T] made of x and y.
func V2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{e: [maxDims]T{x, y}}
}

// V3 is shorthand for Vec3[T] made of x, y and z.
func V3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{e: [maxDims]T{x, y, z}}
}

// V4 is shorthand for a four-dimensional Vector.
func V4[T Scalar](x, y, z, w T) Vector[T, Dim4] {
	return Vector[T, Dim4]{e: [maxDims]T{x, y, z, w}}
}

// Zero returns the zero vector, the additive identity.
func Zero[T Scalar, D Dim]() Vector[T, D] {
	return Vector[T, D]{}
}

// Len returns the number of dimensions of v.
func (v Vector[T, D]) Len() int {
	return dims[D]()
}

func (v Vector[T, D]) check(op string, i int) {
	if (i < 0) || (i >= dims[D]()) {
		panic(fmt.Sprintf("geom: %v: axis %v out of range [0, %v)", op, i, dims[D]()))
	}
}

// At returns the element of v along axis i.
func (v Vector[T, D]) At(i int) T {
	v.check("At", i)
	return v.e[i]
}

// With returns a copy of v with the element along axis i set to val.
func (v Vector[T, D]) With(i int, val T) Vector[T, D] {
	v.check("With", i)
	v.e[i] = val
	return v
}

// Set sets the element of v along axis i to val.
func (v *Vector[T, D]) Set(i int, val T) {
	v.check("Set", i)
	v.e[i] = val
}

func (v Vector[T, D]) X() T { return v.At(0) }
func (v Vector[T, D]) Y() T { return v.At(1) }
func (v Vector[T, D]) Z() T { return v.At(2) }
func (v Vector[T, D]) W() T { return v.At(3) }

// All returns an iterator over the axis indices and elements of v.
func (v Vector[T, D]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range dims[D]() {
			if !yield(i, v.e[i]) {
				return
			}
		}
	}
}

// IsZero reports whether v is the zero vector.
func (v Vector[T, D]) IsZero() bool {
	return v == Vector[T, D]{}
}

// Add returns the vector v+w.
func (v Vector[T, D]) Add(w Vector[T, D]) Vector[T, D] {
	for i := range dims[D]() {
		v.e[i] += w.e[i]
	}
	return v
}

// Sub returns the vector v-w.
func (v Vector[T, D]) Sub(w Vector[T, D]) Vector[T, D] {
	for i := range dims[D]() {
		v.e[i] -= w.e[i]
	}
	return v
}

// Mul returns the element-wise product of v and w.
func (v Vector[T, D]) Mul(w Vector[T, D]) Vector[T, D] {
	for i := range dims[D]() {
		v.e[i] *= w.e[i]
	}
	return v
}

// Div returns the element-wise quotient of v and w. It panics if any
// element of w is zero.
func (v Vector[T, D]) Div(w Vector[T, D]) Vector[T, D] {
	for i := range dims[D]() {
		if w.e[i] == 0 {
			panic("geom: Div: division by zero")
		}
		v.e[i] /= w.e[i]
	}
	return v
}

// AddScalar returns v with s added to every element.
func (v Vector[T, D]) AddScalar(s T) Vector[T, D] {
	for i := range dims[D]() {
		v.e[i] += s
	}
	return v
}

// SubScalar returns v with s subtracted from every element.
func (v Vector[T, D]) SubScalar(s T) Vector[T, D] {
	for i := range dims[D]() {
		v.e[i] -= s
	}
	return v
}

// MulScalar returns v scaled by s.
func (v Vector[T, D]) MulScalar(s T) Vector[T, D] {
	for i := range dims[D]() {
		v.e[i] *= s
	}
	return v
}

// DivScalar returns v with every element divided by s. It panics if s
// is zero.
func (v Vector[T, D]) DivScalar(s T) Vector[T, D] {
	if s == 0 {
		panic("geom: DivScalar: division by zero")
	}
	for i := range dims[D]() {
		v.e[i] /= s
	}
	return v
}

// Mod returns the element-wise remainder of v and w. It panics if any
// element of w is zero.
func Mod[T constraints.Integer, D Dim](v, w Vector[T, D]) Vector[T, D] {
	for i := range dims[D]() {
		if w.e[i] == 0 {
			panic("geom: Mod: division by zero")
		}
		v.e[i] %= w.e[i]
	}
	return v
}

// ModScalar returns v with every element replaced by its remainder
// when divided by s. It panics if s is zero.
func ModScalar[T constraints.Integer, D Dim](v Vector[T, D], s T) Vector[T, D] {
	if s == 0 {
		panic("geom: ModScalar: division by zero")
	}
	for i := range dims[D]() {
		v.e[i] %= s
	}
	return v
}

// Min returns the element-wise minimum of v and w.
func (v Vector[T, D]) Min(w Vector[T, D]) Vector[T, D] {
	for i := range dims[D]() {
		v.e[i] = min(v.e[i], w.e[i])
	}
	return v
}

// Max returns the element-wise maximum of v and w.
func (v Vector[T, D]) Max(w Vector[T, D]) Vector[T, D] {
	for i := range dims[D]() {
		v.e[i] = max(v.e[i], w.e[i])
	}
	return v
}

// Map returns the vector produced by applying f to each element of v.
func (v Vector[T, D]) Map(f func(T) T) Vector[T, D] {
	for i := range dims[D]() {
		v.e[i] = f(v.e[i])
	}
	return v
}

// Dot returns the scalar product of v and w.
func (v Vector[T, D]) Dot(w Vector[T, D]) (dot T) {
	for i := range dims[D]() {
		dot += v.e[i] * w.e[i]
	}
	return dot
}

// LengthSq returns the squared Euclidean length of v.
func (v Vector[T, D]) LengthSq() T {
	return v.Dot(v)
}

// Length returns the Euclidean length of v. For integer types the
// result is truncated.
func (v Vector[T, D]) Length() T {
	return T(math.Sqrt(float64(v.LengthSq())))
}

// LengthAs returns the Euclidean length of v as a U.
func LengthAs[U Scalar, T Scalar, D Dim](v Vector[T, D]) U {
	return U(math.Sqrt(float64(v.LengthSq())))
}

// Cross returns the perpendicular dot product of v and w, which is
// the z component of their three-dimensional cross product.
func Cross[T Scalar](v, w Vec2[T]) T {
	return v.e[0]*w.e[1] - v.e[1]*w.e[0]
}

// Normalize returns the vector with the direction of v and a length
// of one. It panics if v is the zero vector.
func Normalize[T constraints.Float, D Dim](v Vector[T, D]) Vector[T, D] {
	if v.IsZero() {
		panic("geom: Normalize: zero vector")
	}
	return v.DivScalar(v.Length())
}

// Abs returns v with every element replaced by its absolute value.
func (v Vector[T, D]) Abs() Vector[T, D] {
	return v.Map(func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

func mapFloat[T constraints.Float, D Dim](v Vector[T, D], f func(float64) float64) Vector[T, D] {
	return v.Map(func(x T) T { return T(f(float64(x))) })
}

// Floor returns v with every element rounded down.
func Floor[T constraints.Float, D Dim](v Vector[T, D]) Vector[T, D] {
	return mapFloat(v, math.Floor)
}

// Ceil returns v with every element rounded up.
func Ceil[T constraints.Float, D Dim](v Vector[T, D]) Vector[T, D] {
	return mapFloat(v, math.Ceil)
}

// Round returns v with every element rounded to the nearest integer,
// rounding half away from zero.
func Round[T constraints.Float, D Dim](v Vector[T, D]) Vector[T, D] {
	return mapFloat(v, math.Round)
}

// Trunc returns v with every element rounded towards zero.
func Trunc[T constraints.Float, D Dim](v Vector[T, D]) Vector[T, D] {
	return mapFloat(v, math.Trunc)
}

// Rotate returns v rotated counterclockwise around the origin by
// angle radians, assuming that the y axis points up. Integer vectors
// are rotated in floating point and then rounded half away from zero.
func Rotate[T Signed](v Vec2[T], angle float64) Vec2[T] {
	return RotateAround(v, Vec2[T]{}, angle)
}

// RotateAround is like Rotate but rotates around pivot instead of the
// origin.
func RotateAround[T Signed](v, pivot Vec2[T], angle float64) Vec2[T] {
	return FromR2Vec[T](r2.Rotate(R2Vec(v), angle, R2Vec(pivot)))
}

// Convert converts every element of v to U, following the usual Go
// numeric conversion rules.
func Convert[U Scalar, T Scalar, D Dim](v Vector[T, D]) (r Vector[U, D]) {
	for i := range dims[D]() {
		r.e[i] = U(v.e[i])
	}
	return r
}

func (v Vector[T, D]) String() string {
	var buf strings.Builder
	buf.WriteByte('(')
	for i, x := range v.All() {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprint(&buf, x)
	}
	buf.WriteByte(')')
	return buf.String()
}
