package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
//  1. The result is made of whole triangles.
//  2. Every index is a vertex of the input.
//  3. No triangle repeats a vertex index.
//  4. The sum of the areas of all triangles is equal to the area of the polygon
//     minus its holes.
func AssertValidTriangulation(t *testing.T, fixture polygonFixture, triangles []int) {
	t.Helper()
	n := len(fixture.data) / 2
	require.Zero(t, len(triangles)%3, "triangle list length must be a multiple of 3")

	for i := 0; i < len(triangles); i += 3 {
		a, b, c := triangles[i], triangles[i+1], triangles[i+2]
		for _, v := range []int{a, b, c} {
			require.True(t, v >= 0 && v < n, "index %d out of range [0, %d)", v, n)
		}
		require.True(t, a != b && b != c && a != c, "triangle %d repeats a vertex: %v", i/3, triangles[i:i+3])
	}

	assert.InDelta(t, 0, Deviation(fixture.data, fixture.holeIndices, 2, triangles), 1e-9,
		"triangle area must equal the polygon area")
}

// Every triangle must turn the same way, counterclockwise with y up. Only
// holds for simple polygons, where no zero area triangles are cut.
func AssertConsistentWinding(t *testing.T, fixture polygonFixture, triangles []int) {
	t.Helper()
	for i := 0; i < len(triangles); i += 3 {
		ax, ay := fixture.data[2*triangles[i]], fixture.data[2*triangles[i]+1]
		bx, by := fixture.data[2*triangles[i+1]], fixture.data[2*triangles[i+1]+1]
		cx, cy := fixture.data[2*triangles[i+2]], fixture.data[2*triangles[i+2]+1]
		signed := (bx-ax)*(cy-ay) - (cx-ax)*(by-ay)
		assert.True(t, signed > 0, "triangle %d is clockwise or flat: %v", i/3, triangles[i:i+3])
	}
}
