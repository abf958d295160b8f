package earcut

type Point struct {
	X float64
	Y float64
}

func (p Point) Equals(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Signed area of a contour by the shoelace formula. Counterclockwise contours
// (with y pointing up) are positive.
func Area(contour []Point) float64 {
	n := len(contour)
	var a float64
	for p, q := n-1, 0; q < n; p, q = q, q+1 {
		a += contour[p].X*contour[q].Y - contour[q].X*contour[p].Y
	}
	return a * 0.5
}

func IsClockwise(points []Point) bool {
	return Area(points) < 0
}

// Flatten lays out a contour and its holes as a flat x, y buffer, returning
// the vertex index at which each hole starts.
func Flatten(contour []Point, holes [][]Point) (vertices []float64, holeIndices []int) {
	n := len(contour)
	for _, hole := range holes {
		n += len(hole)
	}
	vertices = make([]float64, 0, n*2)
	vertices = appendContour(vertices, contour)

	holeIndex := len(contour)
	for _, hole := range holes {
		holeIndices = append(holeIndices, holeIndex)
		holeIndex += len(hole)
		vertices = appendContour(vertices, hole)
	}
	return vertices, holeIndices
}

// TriangulateShape triangulates a contour with holes given as point lists.
// A closing point that repeats the first one is ignored on every ring. The
// returned triples index into the contour followed by the holes, in order, as
// if all rings were concatenated (without their closing points).
func TriangulateShape(contour []Point, holes [][]Point) [][3]int {
	contour = trimClosingPoint(contour)
	trimmed := make([][]Point, len(holes))
	for k, hole := range holes {
		trimmed[k] = trimClosingPoint(hole)
	}

	vertices, holeIndices := Flatten(contour, trimmed)
	return groupTriangles(Triangulate(vertices, holeIndices, 2))
}

func groupTriangles(triangles []int) [][3]int {
	faces := make([][3]int, 0, len(triangles)/3)
	for i := 0; i+2 < len(triangles); i += 3 {
		faces = append(faces, [3]int{triangles[i], triangles[i+1], triangles[i+2]})
	}
	return faces
}

func trimClosingPoint(points []Point) []Point {
	l := len(points)
	if l > 2 && points[l-1].Equals(points[0]) {
		return points[:l-1]
	}
	return points
}

func appendContour(vertices []float64, contour []Point) []float64 {
	for _, p := range contour {
		vertices = append(vertices, p.X, p.Y)
	}
	return vertices
}
