package geom_test

import (
	"math"
	"testing"

	"deedles.dev/georithm/geom"
	"deedles.dev/georithm/geom/transform"
	"github.com/stretchr/testify/require"
)

func TestIntersects(t *testing.T) {
	rect := geom.AABB[float32]{Span: geom.V2[float32](1, 1)}
	require.True(t, geom.Intersects[float32](rect.Edge(0), rect))
	require.True(t, geom.Intersects[float32](rect, rect.Edge(0)))
	require.True(t, geom.Intersects[float32](rect, rect))

	rects := []geom.Polygon[float64]{
		geom.NewAABB(geom.V2(3., 4.), geom.V2(2., 5.)),
		geom.NewAABB(geom.V2(3., 4.), geom.V2(-2., -5.)),
		geom.NewRect(geom.V2(1., 1.), geom.V2(3., 2.), transform.NewRotation[float64](1)),
		geom.NewRect(geom.V2(-1., 1.), geom.V2(3., 2.), transform.NewShear(geom.V2(0.5, 0.))),
	}
	for _, r := range rects {
		for i := range r.EdgeCount() {
			require.True(t, geom.Intersects[float64](r.Edge(i), r), "%v %v", r, i)
			require.True(t, geom.Intersects[float64](r, r.Edge(i)), "%v %v", r, i)
		}
	}

	far := geom.NewAABB(geom.V2[float32](5, 5), geom.V2[float32](1, 1))
	require.False(t, geom.Intersects[float32](rect, far))
	require.False(t, geom.Intersects[float32](far, rect))

	touching := geom.NewAABB(geom.V2[float32](1, 0), geom.V2[float32](1, 1))
	require.True(t, geom.Intersects[float32](rect, touching))

	require.Panics(t, func() { geom.Intersects[float32](rect, geom.AABB[float32]{}) })
}

func TestContains(t *testing.T) {
	outer := geom.NewAABB(geom.V2(0, 0), geom.V2(10, 10))
	require.True(t, geom.Contains[int](outer, geom.NewAABB(geom.V2(2, 2), geom.V2(3, 3))))
	require.True(t, geom.Contains[int](outer, geom.NewAABB(geom.V2(5, 5), geom.V2(-2, -2))))
	require.True(t, geom.Contains[int](outer, outer))
	require.False(t, geom.Contains[int](outer, geom.NewAABB(geom.V2(8, 8), geom.V2(5, 5))))
	require.True(t, geom.Contains[int](outer, geom.RectFrom(geom.NewAABB(geom.V2(2, 2), geom.V2(3, 3)))))

	region := geom.NewAABB(geom.V2(-2., -1.), geom.V2(4., 5.))
	diamond := geom.NewRect(geom.V2(0., 0.), geom.V2(2., 2.), transform.NewRotation[float64](math.Pi/4))
	require.True(t, geom.Contains[float64](region, diamond))
	require.False(t, geom.Contains[float64](diamond, region))

	require.True(t, geom.ContainsSegment(outer, geom.SegmentBetween(geom.V2(1, 1), geom.V2(9, 9))))
	require.False(t, geom.ContainsSegment(outer, geom.SegmentBetween(geom.V2(1, 1), geom.V2(11, 9))))
	require.False(t, geom.ContainsSegment(outer, geom.NewRay(geom.V2(1, 1), geom.V2(1, 0))))
	require.False(t, geom.ContainsSegment(outer, geom.NewLine(geom.V2(1, 1), geom.V2(1, 0))))
}

func requireOverlap[A, B geom.Shape[float64]](t *testing.T, expected bool, a A, b B) {
	t.Helper()
	require.Equal(t, expected, geom.Overlaps[float64](a, b), "%v %v", a, b)
	require.Equal(t, expected, geom.Overlaps[float64](b, a), "%v %v", b, a)
}

func TestOverlaps(t *testing.T) {
	outer := geom.NewAABB(geom.V2(0., 0.), geom.V2(10., 10.))
	inner := geom.NewAABB(geom.V2(2., 2.), geom.V2(3., 3.))
	require.False(t, geom.Intersects[float64](outer, inner))
	requireOverlap(t, true, outer, inner)
	requireOverlap(t, true, outer, outer)

	crossing := geom.NewAABB(geom.V2(8., 8.), geom.V2(5., 5.))
	requireOverlap(t, true, outer, crossing)

	disjoint := geom.NewAABB(geom.V2(20., 20.), geom.V2(5., 5.))
	requireOverlap(t, false, outer, disjoint)
	requireOverlap(t, false, inner, disjoint)

	diamond := geom.NewRect(geom.V2(5., 5.), geom.V2(2., 2.), transform.NewRotation[float64](math.Pi/4))
	requireOverlap(t, true, outer, diamond)
	requireOverlap(t, false, disjoint, diamond)

	seg := geom.SegmentBetween(geom.V2(3., 3.), geom.V2(4., 4.))
	require.False(t, geom.Intersects[float64](seg, inner))
	requireOverlap(t, true, seg, inner)
	requireOverlap(t, true, seg, outer)
	requireOverlap(t, false, seg, disjoint)

	line := geom.NewLine(geom.V2(3., 3.), geom.V2(1., 1.))
	requireOverlap(t, true, line, inner)
	requireOverlap(t, false, line, geom.NewAABB(geom.V2(0., 5.), geom.V2(1., 1.)))

	require.Panics(t, func() { geom.Overlaps[float64](outer, geom.Line2[float64]{}) })
}

func TestFlatRects(t *testing.T) {
	flat := geom.NewAABB(geom.V2(0., 0.), geom.V2(0., 2.))
	require.False(t, flat.IsNull())
	line := geom.NewLine(geom.V2(-1., 1.), geom.V2(1., 0.))
	require.True(t, geom.Intersects[float64](flat, line))
	require.True(t, geom.Intersects[float64](line, flat))
	requireOverlap(t, true, flat, line)
	requireOverlap(t, false, flat, geom.NewLine(geom.V2(-1., 5.), geom.V2(1., 0.)))

	var dists []float64
	for _, dist := range geom.Intersections(line, flat) {
		dists = append(dists, dist)
	}
	require.Equal(t, []float64{1, 1}, dists)

	squashed := geom.NewRect(geom.V2(0., 0.), geom.V2(1., 1.), transform.NewScale(geom.V2(1., 0.)))
	require.False(t, squashed.IsNull())
	vline := geom.NewLine(geom.V2(0.5, -1.), geom.V2(0., 1.))
	require.True(t, geom.Intersects[float64](squashed, vline))
	requireOverlap(t, true, squashed, vline)
	dist, ok := geom.FirstIntersection(vline, squashed)
	require.True(t, ok)
	require.Equal(t, 1., dist)
}

func BenchmarkOverlaps(b *testing.B) {
	outer := geom.NewAABB(geom.V2(0., 0.), geom.V2(10., 10.))
	diamond := geom.NewRect(geom.V2(5., 5.), geom.V2(2., 2.), transform.NewRotation[float64](math.Pi/4))
	for b.Loop() {
		geom.Overlaps[float64](outer, diamond)
	}
}
