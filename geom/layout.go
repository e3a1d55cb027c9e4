package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// hsplit splits the canonical version of r into two rectangles side
// by side, the left one w wide.
func hsplit[T Scalar](r AABB[T], w T) (left, right AABB[T]) {
	left = r.Resize(V2(w, r.Dy()))
	right = r.Resize(V2(r.Dx()-w, r.Dy())).Add(V2(w, 0))
	return left, right
}

func hsplitHalf[T Scalar](r AABB[T]) (left, right AABB[T]) {
	return hsplit(r, r.Dx()/2)
}

// vsplit splits the canonical version of r into two rectangles
// stacked vertically, the top one h high.
func vsplit[T Scalar](r AABB[T], h T) (top, bottom AABB[T]) {
	top = r.Resize(V2(r.Dx(), h))
	bottom = r.Resize(V2(r.Dx(), r.Dy()-h)).Add(V2(0, h))
	return top, bottom
}

func vsplitHalf[T Scalar](r AABB[T]) (top, bottom AABB[T]) {
	return vsplit(r, r.Dy()/2)
}

// TileRightThenDown fills tiles with rectangles produced by
// repeatedly halving r, alternating between splitting off the left
// half and the top half of whatever remains. For four tiles the
// result is
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown[T Scalar](tiles []AABB[T], r AABB[T]) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is like TileRightThenDown but yields the tiles
// from an iterator.
func TiledRightThenDown[T Scalar](numtiles int, r AABB[T]) iter.Seq[AABB[T]] {
	return func(yield func(AABB[T]) bool) {
		if numtiles <= 0 {
			return
		}

		split, next := hsplitHalf[T], vsplitHalf[T]
		rem := r.Canon()
		for range numtiles - 1 {
			var c AABB[T]
			c, rem = split(rem)
			if !yield(c) {
				return
			}
			split, next = next, split
		}

		yield(rem)
	}
}

// TileEvenVertically fills tiles with equally tall rectangles stacked
// on top of each other that together cover r.
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically[T Scalar](tiles []AABB[T], r AABB[T]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is like TileEvenVertically but yields the tiles
// from an iterator.
func TiledEvenVertically[T Scalar](numtiles int, r AABB[T]) iter.Seq[AABB[T]] {
	return func(yield func(AABB[T]) bool) {
		if numtiles <= 0 {
			return
		}

		step := V2(0, r.Dy()/T(numtiles))
		c, _ := vsplit(r, step.e[1])
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(step)
		}
	}
}

// TileEvenHorizontally fills tiles with equally wide rectangles side
// by side that together cover r.
//
//	----------
//	|  |  |  |
//	----------
func TileEvenHorizontally[T Scalar](tiles []AABB[T], r AABB[T]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

func TiledEvenHorizontally[T Scalar](numtiles int, r AABB[T]) iter.Seq[AABB[T]] {
	return func(yield func(AABB[T]) bool) {
		if numtiles <= 0 {
			return
		}

		step := V2(r.Dx()/T(numtiles), 0)
		c, _ := hsplit(r, step.e[0])
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(step)
		}
	}
}

// TileRows fills tiles with a grid of rectangles covering r, with at
// most cols rectangles per row. The last row is split evenly between
// whatever tiles are left over. Nothing is produced if cols is not
// positive.
func TileRows[T Scalar](tiles []AABB[T], r AABB[T], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is like TileRows but yields the tiles from an iterator.
func TiledRows[T Scalar](numtiles int, r AABB[T], cols int) iter.Seq[AABB[T]] {
	return func(yield func(AABB[T]) bool) {
		if (numtiles <= 0) || (cols <= 0) {
			return
		}

		numrows := (numtiles + cols - 1) / cols
		for row := range TiledEvenVertically(numrows, r) {
			if numtiles <= 0 {
				return
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the canonical version
// of first followed by an endless series of copies, each shifted down
// by the height of first.
func VerticalStack[T Scalar](first AABB[T]) iter.Seq[AABB[T]] {
	return func(yield func(AABB[T]) bool) {
		r := first.Canon()
		shift := V2(0, r.Dy())
		for {
			if !yield(r) {
				return
			}
			r = r.Add(shift)
		}
	}
}

// Align centers inner in outer and then moves it so that the given
// edges line up with the corresponding edges of outer. If opposite
// edges are both given, inner is stretched to cover outer along that
// axis. The result is canonical.
func Align[T Scalar](outer, inner AABB[T], edges Edges) AABB[T] {
	outer = outer.Canon()
	inner = inner.CenterAt(outer.Center())
	pos, span := inner.Position, inner.Span

	switch {
	case edges&EdgeTop != 0:
		pos.e[1] = outer.Position.e[1]
		if edges&EdgeBottom != 0 {
			span.e[1] = outer.Span.e[1]
		}
	case edges&EdgeBottom != 0:
		pos.e[1] = outer.Bottom() - span.e[1]
	}
	switch {
	case edges&EdgeLeft != 0:
		pos.e[0] = outer.Position.e[0]
		if edges&EdgeRight != 0 {
			span.e[0] = outer.Span.e[0]
		}
	case edges&EdgeRight != 0:
		pos.e[0] = outer.Right() - span.e[0]
	}

	return AABB[T]{Position: pos, Span: span}
}

func insertTilesFromSeq[T Scalar](tiles []AABB[T], s iter.Seq[AABB[T]]) {
	for i, t := range xiter.Enumerate(s) {
		if i >= len(tiles) {
			return
		}
		tiles[i] = t
	}
}
