package geom_test

import (
	"slices"
	"testing"

	"deedles.dev/georithm/geom"
	"github.com/stretchr/testify/require"
)

func box(x, y, w, h int) geom.AABB[int] {
	return geom.NewAABB(geom.V2(x, y), geom.V2(w, h))
}

func TestTileRightThenDown(t *testing.T) {
	tiles := make([]geom.AABB[int], 4)
	geom.TileRightThenDown(tiles, box(0, 0, 8, 8))
	require.Equal(t, []geom.AABB[int]{
		box(0, 0, 4, 8),
		box(4, 0, 4, 4),
		box(4, 4, 2, 4),
		box(6, 4, 2, 4),
	}, tiles)

	require.Equal(t, []geom.AABB[int]{box(0, 0, 8, 8)}, slices.Collect(geom.TiledRightThenDown(1, box(8, 8, -8, -8))))
	require.Empty(t, slices.Collect(geom.TiledRightThenDown(0, box(0, 0, 8, 8))))
}

func TestTileEven(t *testing.T) {
	tiles := make([]geom.AABB[int], 3)
	geom.TileEvenHorizontally(tiles, box(0, 0, 9, 3))
	require.Equal(t, []geom.AABB[int]{
		box(0, 0, 3, 3),
		box(3, 0, 3, 3),
		box(6, 0, 3, 3),
	}, tiles)

	geom.TileEvenVertically(tiles, box(1, 1, 4, 6))
	require.Equal(t, []geom.AABB[int]{
		box(1, 1, 4, 2),
		box(1, 3, 4, 2),
		box(1, 5, 4, 2),
	}, tiles)
}

func TestTileRows(t *testing.T) {
	tiles := make([]geom.AABB[int], 5)
	geom.TileRows(tiles, box(0, 0, 4, 6), 2)
	require.Equal(t, []geom.AABB[int]{
		box(0, 0, 2, 2),
		box(2, 0, 2, 2),
		box(0, 2, 2, 2),
		box(2, 2, 2, 2),
		box(0, 4, 4, 2),
	}, tiles)
}

func TestVerticalStack(t *testing.T) {
	var got []geom.AABB[int]
	for r := range geom.VerticalStack(box(2, 3, 2, -3)) {
		got = append(got, r)
		if len(got) == 3 {
			break
		}
	}
	require.Equal(t, []geom.AABB[int]{
		box(2, 0, 2, 3),
		box(2, 3, 2, 3),
		box(2, 6, 2, 3),
	}, got)
}

func TestAlign(t *testing.T) {
	outer := box(0, 0, 10, 10)
	inner := box(0, 0, 2, 2)
	require.Equal(t, box(0, 0, 2, 2), geom.Align(outer, inner, geom.EdgeTop|geom.EdgeLeft))
	require.Equal(t, box(8, 8, 2, 2), geom.Align(outer, inner, geom.EdgeBottom|geom.EdgeRight))
	require.Equal(t, box(4, 0, 2, 10), geom.Align(outer, inner, geom.EdgeTop|geom.EdgeBottom))
	require.Equal(t, box(0, 4, 10, 2), geom.Align(outer, inner, geom.EdgeLeft|geom.EdgeRight))
	require.Equal(t, box(4, 4, 2, 2), geom.Align(outer, inner, geom.EdgeNone))
}

func BenchmarkTileRows(b *testing.B) {
	tiles := make([]geom.AABB[int], 100)
	r := box(0, 0, 1000, 1000)
	for b.Loop() {
		geom.TileRows(tiles, r, 7)
	}
}

func TestTileEmpty(t *testing.T) {
	r := box(0, 0, 4, 6)
	require.NotPanics(t, func() {
		geom.TileRows[int](nil, r, 3)
		geom.TileEvenVertically[int](nil, r)
		geom.TileEvenHorizontally[int](nil, r)
		geom.TileRightThenDown[int](nil, r)
	})

	require.Empty(t, slices.Collect(geom.TiledRows(5, r, 0)))
	require.Empty(t, slices.Collect(geom.TiledRows(0, r, 2)))
	require.Empty(t, slices.Collect(geom.TiledEvenVertically(0, r)))
	require.Empty(t, slices.Collect(geom.TiledEvenHorizontally(-1, r)))
}
