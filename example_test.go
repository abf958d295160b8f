package earcut_test

import (
	"fmt"

	"github.com/osuushi/earcut"
)

func Example() {
	triangles := earcut.Triangulate([]float64{10, 0, 0, 50, 60, 60, 70, 10}, nil, 2)
	fmt.Println(triangles)
	// Output: [1 0 3 3 2 1]
}

func ExampleTriangulate_holes() {
	vertices := []float64{
		0, 0, 10, 0, 10, 10, 0, 10, // outer ring
		3, 3, 7, 3, 7, 7, 3, 7, // hole
	}
	triangles := earcut.Triangulate(vertices, []int{4}, 2)
	fmt.Println(len(triangles)/3, earcut.Deviation(vertices, []int{4}, 2, triangles))
	// Output: 8 0
}
