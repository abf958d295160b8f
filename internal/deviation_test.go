package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviation(t *testing.T) {
	square := []float64{0, 0, 10, 0, 10, 10, 0, 10}
	assert.Equal(t, 0.0, Deviation(square, nil, 2, []int{2, 3, 0, 0, 1, 2}))
	assert.InDelta(t, 0.5, Deviation(square, nil, 2, []int{2, 3, 0}), 1e-12)
	assert.Equal(t, 1.0, Deviation(square, nil, 2, nil))

	fixture := SquareWithHole()
	triangles, _ := Earcut(fixture.data, fixture.holeIndices, Config{})
	assert.Equal(t, 0.0, Deviation(fixture.data, fixture.holeIndices, 2, triangles))

	// Nothing to cover, nothing covered.
	assert.Equal(t, 0.0, Deviation([]float64{0, 0, 1, 0, 2, 0}, nil, 0, nil))
}
