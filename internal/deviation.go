package internal

import "math"

// Deviation compares the area covered by triangles against the area of the
// polygon (outer ring minus holes). It returns the relative difference, so 0
// means a perfect triangulation.
func Deviation(data []float64, holeIndices []int, dim int, triangles []int) float64 {
	if dim <= 0 {
		dim = 2
	}
	outerLen := len(data)
	if len(holeIndices) > 0 {
		outerLen = holeIndices[0] * dim
	}

	polygonArea := math.Abs(signedArea(data, 0, outerLen, dim))
	for k, hole := range holeIndices {
		start := hole * dim
		end := len(data)
		if k < len(holeIndices)-1 {
			end = holeIndices[k+1] * dim
		}
		polygonArea -= math.Abs(signedArea(data, start, end, dim))
	}

	var trianglesArea float64
	for t := 0; t+2 < len(triangles); t += 3 {
		a := triangles[t] * dim
		b := triangles[t+1] * dim
		c := triangles[t+2] * dim
		trianglesArea += math.Abs(
			(data[a]-data[c])*(data[b+1]-data[a+1]) -
				(data[a]-data[b])*(data[c+1]-data[a+1]))
	}

	if polygonArea == 0 && trianglesArea == 0 {
		return 0
	}
	return math.Abs((trianglesArea - polygonArea) / polygonArea)
}
