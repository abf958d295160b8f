package earcut

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	square = []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	hole   = []Point{{3, 3}, {7, 3}, {7, 7}, {3, 7}}
)

func TestArea(t *testing.T) {
	assert.Equal(t, 100.0, Area(square))
	assert.Equal(t, 0.0, Area(nil))
	assert.False(t, IsClockwise(square))

	reversed := []Point{{0, 10}, {10, 10}, {10, 0}, {0, 0}}
	assert.Equal(t, -100.0, Area(reversed))
	assert.True(t, IsClockwise(reversed))
}

func TestFlatten(t *testing.T) {
	vertices, holeIndices := Flatten(square, [][]Point{hole, {{5, 5}}})
	assert.Equal(t, []float64{0, 0, 10, 0, 10, 10, 0, 10, 3, 3, 7, 3, 7, 7, 3, 7, 5, 5}, vertices)
	assert.Equal(t, []int{4, 8}, holeIndices)

	vertices, holeIndices = Flatten(square, nil)
	assert.Len(t, vertices, 8)
	assert.Nil(t, holeIndices)
}

func TestTriangulateShape(t *testing.T) {
	assert.Equal(t, [][3]int{{2, 3, 0}, {0, 1, 2}}, TriangulateShape(square, nil))

	closed := append(append([]Point{}, square...), square[0])
	assert.Equal(t, [][3]int{{2, 3, 0}, {0, 1, 2}}, TriangulateShape(closed, nil))
	assert.Len(t, closed, 5, "input is left alone")

	closedHole := append(append([]Point{}, hole...), hole[0])
	faces := TriangulateShape(square, [][]Point{closedHole})
	assert.Equal(t, [][3]int{
		{3, 0, 4}, {5, 4, 0}, {3, 4, 7}, {5, 0, 1}, {2, 3, 7}, {6, 5, 1}, {2, 7, 6}, {6, 1, 2},
	}, faces)

	assert.Empty(t, TriangulateShape(nil, nil))
}

func TestReadSVG(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg">
  <polygon points="0,0 10,0 10,10 0,10" />
  <polygon points="3,3 7,3 7,7 3,7" />
</svg>`

	contour, holes, err := ReadSVG(strings.NewReader(svg))
	require.NoError(t, err)
	assert.Equal(t, square, contour)
	assert.Equal(t, [][]Point{hole}, holes)

	_, _, err = ReadSVG(strings.NewReader(`<svg></svg>`))
	assert.Error(t, err)
}
