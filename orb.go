package earcut

import "github.com/paulmach/orb"

// TriangulateOrb triangulates an orb polygon. The first ring is the outer
// boundary and the rest are holes. The returned triples index into the rings'
// points concatenated in order, without each ring's closing point.
func TriangulateOrb(polygon orb.Polygon) [][3]int {
	if len(polygon) == 0 {
		return [][3]int{}
	}

	contour := ringPoints(polygon[0])
	holes := make([][]Point, 0, len(polygon)-1)
	for _, ring := range polygon[1:] {
		holes = append(holes, ringPoints(ring))
	}
	return TriangulateShape(contour, holes)
}

func ringPoints(ring orb.Ring) []Point {
	points := make([]Point, len(ring))
	for i, p := range ring {
		points[i] = Point{X: p.X(), Y: p.Y()}
	}
	return points
}
