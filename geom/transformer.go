package geom

// Transformer maps a vector to a transformed vector. Implementations
// should be pure: the same input always produces the same output.
//
// Ready-made transformers live in package
// deedles.dev/georithm/geom/transform.
type Transformer[T Scalar, D Dim] interface {
	Transform(Vector[T, D]) Vector[T, D]
}

// TransformFunc is an adapter to allow the use of ordinary functions
// as Transformers.
type TransformFunc[T Scalar, D Dim] func(Vector[T, D]) Vector[T, D]

func (f TransformFunc[T, D]) Transform(v Vector[T, D]) Vector[T, D] {
	return f(v)
}

// Transforms is an ordered chain of Transformers. It is itself a
// Transformer that applies each element in order, so the first
// element sees the untransformed vector.
type Transforms[T Scalar, D Dim] []Transformer[T, D]

func (ts Transforms[T, D]) Transform(v Vector[T, D]) Vector[T, D] {
	for _, t := range ts {
		v = t.Transform(v)
	}
	return v
}
