package earcut

import (
	"io"

	"github.com/osuushi/earcut/internal"
)

// ReadSVG reads the <polygon> elements of an SVG document. The first polygon
// is the contour and any others are its holes.
func ReadSVG(r io.Reader) (contour []Point, holes [][]Point, err error) {
	rings, err := internal.ParseSVGRings(r)
	if err != nil {
		return nil, nil, err
	}

	contour = coordsToPoints(rings[0])
	for _, ring := range rings[1:] {
		holes = append(holes, coordsToPoints(ring))
	}
	return contour, holes, nil
}

func coordsToPoints(coords []float64) []Point {
	points := make([]Point, len(coords)/2)
	for i := range points {
		points[i] = Point{X: coords[2*i], Y: coords[2*i+1]}
	}
	return points
}
