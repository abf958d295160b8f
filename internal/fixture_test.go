package internal

import (
	"embed"
	"encoding/json"
	"log"
	"math"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each SVG holds one <polygon> per ring, outer ring first. A fixture may have a
// .golden.json next to it with the expected triangle indices.

//go:embed fixtures
var fixtures embed.FS

type polygonFixture struct {
	data        []float64
	holeIndices []int
}

func LoadFixture(name string) polygonFixture {
	f, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer f.Close()

	rings, err := ParseSVGRings(f)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return fromRings(rings...)
}

func LoadGolden(name string) []int {
	raw, err := fixtures.ReadFile("fixtures/" + name + ".golden.json")
	if err != nil {
		log.Fatalf("Could not load golden %q: %v", name, err)
	}
	var triangles []int
	if err := json.Unmarshal(raw, &triangles); err != nil {
		log.Fatalf("Failed to parse golden %q: %v", name, err)
	}
	return triangles
}

func fromRings(rings ...[]float64) polygonFixture {
	var fixture polygonFixture
	for k, ring := range rings {
		if k > 0 {
			fixture.holeIndices = append(fixture.holeIndices, len(fixture.data)/2)
		}
		fixture.data = append(fixture.data, ring...)
	}
	return fixture
}

// Some ad hoc fixtures

func starRing(x, y, outerRadius, innerRadius float64, points int, reverse bool) []float64 {
	var ring []float64
	for i := 0; i < points*2; i++ {
		k := i
		if reverse {
			k = points*2 - 1 - i
		}
		radius := outerRadius
		if k%2 == 1 {
			radius = innerRadius
		}
		angle := math.Pi * float64(k) / float64(points)
		ring = append(ring, x+radius*math.Cos(angle), y+radius*math.Sin(angle))
	}
	return ring
}

func SimpleStar() polygonFixture {
	return fromRings(starRing(0, 0, 5, 2, 5, false))
}

func SquareWithHole() polygonFixture {
	return fromRings(
		[]float64{-5, -5, 5, -5, 5, 5, -5, 5},
		[]float64{-2, -2, -2, 2, 2, 2, 2, -2},
	)
}

func StarOutline() polygonFixture {
	return fromRings(
		starRing(0, 0, 10, 5, 5, false),
		starRing(0, 0, 8, 3, 5, true),
	)
}

// A large star with small stars punched out of it. Enough vertices to use the
// z-order hash.
func StarWithStarHoles() polygonFixture {
	return fromRings(
		starRing(0, 0, 100, 70, 30, false),
		starRing(15, 50, 12, 6, 5, true),
		starRing(18, -50, 12, 6, 5, false),
		starRing(-30, 0, 20, 10, 7, true),
		starRing(35, 5, 8, 4, 4, true),
	)
}

// A regular polygon approximating a circle.
func Circle(n int, radius float64) polygonFixture {
	ring := make([]float64, 0, n*2)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		ring = append(ring, radius*math.Cos(angle), radius*math.Sin(angle))
	}
	return fromRings(ring)
}

// A comb with many narrow teeth: lots of reflex vertices.
func Comb(teeth int) polygonFixture {
	var ring []float64
	ring = append(ring, 0, 0, float64(teeth*2), 0)
	for i := teeth - 1; i >= 0; i-- {
		x := float64(i * 2)
		ring = append(ring, x+2, 10, x+1, 10, x+1, 1)
	}
	ring = append(ring, 0, 1)
	return fromRings(ring)
}
