// Package geom provides generic two-dimensional geometry primitives:
// vectors, lines, rays, segments and rectangles, along with the
// intersection, containment, overlap and bounding predicates built on
// them.
//
// Element types and dimensions are chosen with type parameters, so
// every value is a plain, freely copyable struct. Operations that
// make no sense for an element type, such as normalizing an integer
// vector or taking the remainder of a float vector, are rejected at
// compile time. Violated preconditions at runtime, such as
// intersecting a line that has no direction, panic.
package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Signed is a constraint for the scalar types that support negation.
// Anything that subtracts positions or rotates them requires it.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Dim is a constraint for the dimension tags of a Vector.
type Dim interface {
	Dim1 | Dim2 | Dim3 | Dim4

	// Len returns the number of dimensions represented.
	Len() int
}

type (
	Dim1 struct{}
	Dim2 struct{}
	Dim3 struct{}
	Dim4 struct{}
)

func (Dim1) Len() int { return 1 }
func (Dim2) Len() int { return 2 }
func (Dim3) Len() int { return 3 }
func (Dim4) Len() int { return 4 }

const maxDims = 4

func dims[D Dim]() int {
	var d D
	return d.Len()
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func isFloat[T Scalar]() bool {
	half := 0.5
	return T(half) != 0
}

// fromFloat converts f to T, rounding half away from zero if T is an
// integer type.
func fromFloat[T Scalar](f float64) T {
	if isFloat[T]() {
		return T(f)
	}
	return T(math.Round(f))
}
