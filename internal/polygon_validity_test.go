package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. The set of points in the triangles must equal the set of points in the polygon.
// 2. The set of line segments in the polygon is a subset of the set of line segments in the triangles.
// 3. Every triangle is counterclockwise
// 4. No triangle has zero area
// 5. The sum of the areas of all triangles is equal to the area of the polygon.
// 6. A polygon with n vertices yields n-2 triangles.
func AssertValidTriangulation(t *testing.T, polygon Polygon, triangles TriangleList) {
	t.Helper()
	require.True(t, polygon.IsCCW(), "polygon is not counterclockwise")
	require.Len(t, triangles, len(polygon.Points)-2)

	polyPoints := make(map[Coordinate]struct{})
	for _, p := range polygon.Points {
		polyPoints[p] = struct{}{}
	}
	trianglePoints := make(map[Coordinate]struct{})
	for _, tri := range triangles {
		for _, p := range tri.Points() {
			trianglePoints[p] = struct{}{}
		}
	}
	require.Equal(t, polyPoints, trianglePoints, "set of points in the triangles must equal the set of points in the polygon")

	var triangleArea float64
	triangleSegmentSet := make(normalizedSegmentSet)
	for _, tri := range triangles {
		require.True(t, tri.IsCCW(), "clockwise triangle: %s", tri)
		require.Greater(t, tri.Area(), 0.0, "zero area triangle: %s", tri)
		triangleArea += tri.Area()
		triangleSegmentSet.add(tri.A, tri.B)
		triangleSegmentSet.add(tri.B, tri.C)
		triangleSegmentSet.add(tri.C, tri.A)
	}

	// Check every segment in the polygon is in the set
	for i, p1 := range polygon.Points {
		p2 := polygon.Points[CircularIndex(i+1, len(polygon.Points))]
		require.True(t, triangleSegmentSet.contains(p1, p2), "segment %v-%v of the polygon is not in the set of segments in the triangles", p1, p2)
	}

	require.InDelta(t, polygon.Area(), triangleArea, Epsilon*math.Max(1, polygon.Area()), "sum of the areas of all triangles must equal the area of the polygon")
}

// Used in the helper above, this is a "normalized" line segment, where the
// "lower" point (accounting for lexicographic adjustment) is always first
type normalizedSegment struct {
	lower, upper Coordinate
}

func newNormalizedSegment(a, b Coordinate) normalizedSegment {
	if a.Below(b) {
		return normalizedSegment{a, b}
	}
	return normalizedSegment{b, a}
}

type normalizedSegmentSet map[normalizedSegment]struct{}

func (set normalizedSegmentSet) add(a, b Coordinate) {
	set[newNormalizedSegment(a, b)] = struct{}{}
}

func (set normalizedSegmentSet) contains(a, b Coordinate) bool {
	_, ok := set[newNormalizedSegment(a, b)]
	return ok
}

// Compare two shapes by sampling a grid of points over their bounding box and
// checking that the even-odd rule agrees everywhere.
func validatePolygonsBySampling(t *testing.T, actualPolygons PolygonList, expectedPolygons PolygonList) {
	t.Helper()
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, list := range []PolygonList{actualPolygons, expectedPolygons} {
		for _, poly := range list {
			for _, p := range poly.Points {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// An irrational offset keeps sample points off the polygon edges, where
	// the even-odd test is ambiguous.
	step := math.Max(maxX-minX, maxY-minY) / 50
	offset := step / math.Pi

	for y := minY + offset; y <= maxY; y += step {
		for x := minX + offset; x <= maxX; x += step {
			p := Coordinate{X: x, Y: y}

			actual := actualPolygons.ContainsPointByEvenOdd(p)
			if expectedPolygons.ContainsPointByEvenOdd(p) {
				assert.True(t, actual, "point %v should be in the triangles", p)
			} else {
				assert.False(t, actual, "point %v should not be in the triangles", p)
			}
		}
	}
}
