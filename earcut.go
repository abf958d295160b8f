// Ear clipping polygon triangulation for Go.
//
// This package converts a polygon, which may be non-convex and may contain
// holes, into a set of triangles using only the original vertices. Input is a
// flat coordinate buffer in the style of graphics APIs; output is a flat list
// of vertex indices, three per triangle.
//
// Degenerate and self-intersecting input is handled on a best effort basis:
// the triangulator never fails, it triangulates what it can. Use
// TriangulateWithStats to see how hard it had to work, and Deviation to
// measure how much of the polygon the result covers.
package earcut

import (
	"log/slog"

	"github.com/osuushi/earcut/internal"
	"github.com/pkg/errors"
)

type Stats = internal.Stats

// Triangulate a polygon.
//
// vertices holds the coordinates of all rings back to back, dim numbers per
// vertex (only the first two are read; dim <= 0 means 2). holeIndices gives
// the vertex index at which each hole ring starts, in ascending order; the
// outer ring runs from vertex 0 to the first hole. Rings may repeat their first
// vertex at the end. Either winding is accepted for any ring.
//
// The result holds vertex indices (not buffer offsets), three per triangle.
// Triangles are wound the same way in every call. A degenerate polygon gives
// an empty result.
//
// Input is not validated. See TriangulateChecked.
func Triangulate(vertices []float64, holeIndices []int, dim int) []int {
	triangles, _ := internal.Earcut(vertices, holeIndices, internal.Config{Dim: dim})
	return triangles
}

// TriangulateWithStats is Triangulate, also reporting which fallback passes
// were needed and which holes were dropped.
func TriangulateWithStats(vertices []float64, holeIndices []int, dim int) ([]int, Stats) {
	return internal.Earcut(vertices, holeIndices, internal.Config{Dim: dim})
}

// TriangulateChecked validates the input before triangulating, and verifies
// the internal ring structure along the way. Problems are reported as errors
// instead of undefined behavior.
func TriangulateChecked(vertices []float64, holeIndices []int, dim int) (result []int, err error) {
	if err := Validate(vertices, holeIndices, dim); err != nil {
		return nil, err
	}

	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	result, _ = internal.Earcut(vertices, holeIndices, internal.Config{Dim: dim, CheckInvariants: true})
	return result, nil
}

// Validate checks the preconditions of Triangulate: a stride of at least 2, a
// buffer made of whole vertices, and ascending hole indices within the buffer.
func Validate(vertices []float64, holeIndices []int, dim int) error {
	if dim <= 0 {
		dim = 2
	}
	if dim < 2 {
		return errors.Errorf("dimension must be at least 2, got %d", dim)
	}
	if len(vertices)%dim != 0 {
		return errors.Errorf("vertex buffer length %d is not a multiple of dimension %d", len(vertices), dim)
	}

	n := len(vertices) / dim
	prev := 0
	for k, hole := range holeIndices {
		if hole < prev {
			return errors.Errorf("hole index %d (%d) is before the previous ring start %d", k, hole, prev)
		}
		if hole > n {
			return errors.Errorf("hole index %d (%d) is past the last vertex %d", k, hole, n)
		}
		prev = hole
	}
	return nil
}

// Deviation returns the relative difference between the polygon's area and
// the total area of the triangles. A correct triangulation gives 0, within
// floating point error.
func Deviation(vertices []float64, holeIndices []int, dim int, triangles []int) float64 {
	return internal.Deviation(vertices, holeIndices, dim, triangles)
}

// SetLogger routes triangulation diagnostics (fallback passes, dropped holes)
// to l at debug level. By default nothing is logged. Pass nil to go back to
// silence.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
