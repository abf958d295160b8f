package internal

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the shape, in pixels.
const drawPadding = 20

type RenderOptions struct {
	// Pixels per unit. Zero means 1.
	Scale float64
	// Put the origin at the bottom left instead of the top left.
	FlipY bool
}

// Render draws the polygon rings and the triangles cut from them. Triangles
// are filled with alternating shades so neighbors can be told apart; ring
// edges are drawn on top.
func Render(data []float64, holeIndices []int, dim int, triangles []int, opts RenderOptions) *gg.Context {
	if dim <= 0 {
		dim = 2
	}
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i+1 < len(data); i += dim {
		minX = math.Min(minX, data[i])
		minY = math.Min(minY, data[i+1])
		maxX = math.Max(maxX, data[i])
		maxY = math.Max(maxY, data[i+1])
	}
	if len(data) < 2 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	if opts.FlipY {
		c.Translate(0, float64(height))
		c.Scale(1, -1)
	}
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	vertex := func(k int) (float64, float64) {
		return data[k*dim], data[k*dim+1]
	}

	for t := 0; t+2 < len(triangles); t += 3 {
		for j := 0; j < 3; j++ {
			x, y := vertex(triangles[t+j])
			if j == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.ClosePath()
		if (t/3)%2 == 0 {
			c.SetRGBA(0.3, 0.2, 1, 0.6)
		} else {
			c.SetRGBA(0.2, 0.6, 1, 0.6)
		}
		c.FillPreserve()
		c.SetRGB(1, 1, 0)
		c.SetLineWidth(1 / scale)
		c.Stroke()
	}

	c.SetLineWidth(2 / scale)
	c.SetRGB(0, 1, 1)
	for _, ring := range ringRanges(len(data)/dim, holeIndices) {
		if ring[1]-ring[0] < 2 {
			continue
		}
		for k := ring[0]; k < ring[1]; k++ {
			x, y := vertex(k)
			if k == ring[0] {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.ClosePath()
		c.Stroke()
	}
	return c
}

// Split the vertex ordinals [0, n) into [start, end) ranges, one per ring.
func ringRanges(n int, holeIndices []int) [][2]int {
	ranges := make([][2]int, 0, len(holeIndices)+1)
	start := 0
	for _, h := range holeIndices {
		ranges = append(ranges, [2]int{start, h})
		start = h
	}
	return append(ranges, [2]int{start, n})
}

// CatPNG saves the rendering to path and prints it inline to an iTerm
// compatible terminal.
func CatPNG(c *gg.Context, path string, w io.Writer) error {
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "failed to save %s", path)
	}
	return errors.Wrapf(imgcat.CatFile(path, w), "failed to print %s", path)
}
