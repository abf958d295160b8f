package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSVGRings(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg">
  <polygon points="0,0 10,0 10,10 0,10" />
  <g id="ignored" />
  <polygon points="3 3, 7 3,7,7
    3 7" />
</svg>`

	rings, err := ParseSVGRings(strings.NewReader(svg))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0, 0, 10, 0, 10, 10, 0, 10},
		{3, 3, 7, 3, 7, 7, 3, 7},
	}, rings)
}

func TestParseSVGRings_Errors(t *testing.T) {
	_, err := ParseSVGRings(strings.NewReader(`<svg><g id="empty"/></svg>`))
	assert.EqualError(t, err, "no polygons found in svg")

	_, err = ParseSVGRings(strings.NewReader(`<svg><polygon points="0,0 1"/></svg>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "polygon 0")
	assert.Contains(t, err.Error(), "odd number of coordinates")

	_, err = ParseSVGRings(strings.NewReader(`<svg><polygon points="0,0 1,x"/></svg>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid coordinate "x"`)
}

func TestLoadFixture(t *testing.T) {
	star := LoadFixture("star")
	assert.Len(t, star.data, 20)
	assert.Empty(t, star.holeIndices)

	disc := LoadFixture("disc_holes")
	assert.Len(t, disc.holeIndices, 3)
	assert.Equal(t, 132, len(disc.data)/2)
}
