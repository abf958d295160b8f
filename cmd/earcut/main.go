package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/earcut"
	"github.com/osuushi/earcut/internal"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Triangulate a polygon read from a file or stdin and print the triangles,
// one "a b c" index triple per line.
//
// Text input is newline separated points in the form "x y", with each ring
// separated by an extra newline. The first ring is the outer boundary and the
// rest are holes. With --svg, the input is an SVG document and every <polygon>
// element is a ring, in document order.
var (
	app     = kingpin.New("earcut", "Triangulate a polygon with holes by ear clipping.")
	input   = app.Arg("input", "Input file. Reads stdin when omitted.").String()
	svg     = app.Flag("svg", "Read the input as an SVG document.").Bool()
	png     = app.Flag("png", "Render the triangulation to this PNG file.").String()
	scale   = app.Flag("scale", "Pixels per unit when rendering.").Default("1").Float64()
	flipY   = app.Flag("flip-y", "Render with the origin at the bottom left.").Bool()
	cat     = app.Flag("imgcat", "Print the rendering inline (iTerm).").Bool()
	quiet   = app.Flag("quiet", "Only print the summary.").Short('q').Bool()
	verbose = app.Flag("verbose", "Log fallback passes and dropped holes.").Short('v').Bool()
	noColor = app.Flag("no-color", "Disable colored output.").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "earcut:", err)
		os.Exit(1)
	}
}

func run() error {
	au := aurora.NewAurora(!*noColor)
	if *verbose {
		earcut.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	in := io.Reader(os.Stdin)
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			return errors.Wrap(err, "failed to open input")
		}
		defer f.Close()
		in = f
	}

	var (
		contour []earcut.Point
		holes   [][]earcut.Point
		err     error
	)
	if *svg {
		contour, holes, err = earcut.ReadSVG(in)
	} else {
		contour, holes, err = readRings(in)
	}
	if err != nil {
		return err
	}

	vertices, holeIndices := earcut.Flatten(contour, holes)
	if err := earcut.Validate(vertices, holeIndices, 2); err != nil {
		return err
	}
	triangles, stats := earcut.TriangulateWithStats(vertices, holeIndices, 2)

	if !*quiet {
		w := bufio.NewWriter(os.Stdout)
		for i := 0; i+2 < len(triangles); i += 3 {
			fmt.Fprintf(w, "%d %d %d\n", triangles[i], triangles[i+1], triangles[i+2])
		}
		if err := w.Flush(); err != nil {
			return errors.Wrap(err, "failed to write triangles")
		}
	}

	deviation := earcut.Deviation(vertices, holeIndices, 2, triangles)
	devColor := au.Green(fmt.Sprintf("%.3g", deviation))
	if deviation > 1e-9 {
		devColor = au.Yellow(fmt.Sprintf("%.3g", deviation))
	}
	fmt.Fprintf(os.Stderr, "%s triangles from %d vertices in %d rings, deviation %s\n",
		au.Bold(stats.Triangles), len(vertices)/2, stats.Rings, devColor)
	if stats.DroppedHoles > 0 {
		fmt.Fprintf(os.Stderr, "%s %d hole(s) could not be bridged\n", au.Red("warning:"), stats.DroppedHoles)
	}
	if stats.FilterPasses+stats.CurePasses+stats.SplitPasses > 0 {
		fmt.Fprintf(os.Stderr, "%s filter %d, cure %d (%d cut), split %d (%d failed)\n",
			au.Cyan("fallbacks:"), stats.FilterPasses, stats.CurePasses, stats.CuredIntersections,
			stats.SplitPasses, stats.FailedSplits)
	}

	if *png != "" || *cat {
		c := internal.Render(vertices, holeIndices, 2, triangles, internal.RenderOptions{
			Scale: *scale,
			FlipY: *flipY,
		})
		path := renderPath(*png)
		if *cat {
			return internal.CatPNG(c, path, os.Stdout)
		}
		if err := c.SavePNG(path); err != nil {
			return errors.Wrapf(err, "failed to save %s", path)
		}
	}
	return nil
}

// Where to write the rendering. Without --png it goes to the temp dir.
func renderPath(png string) string {
	if png != "" {
		return png
	}
	return filepath.Join(os.TempDir(), "earcut.png")
}

func readRings(in io.Reader) (contour []earcut.Point, holes [][]earcut.Point, err error) {
	var rings [][]earcut.Point
	scanner := bufio.NewScanner(in)
	var points []earcut.Point
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// A blank line ends the ring, if we collected any points
		if line == "" {
			if len(points) > 0 {
				rings = append(rings, points)
				points = nil
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "failed to read input")
	}

	// Handle trailing ring if any
	if len(points) > 0 {
		rings = append(rings, points)
	}
	if len(rings) == 0 {
		return nil, nil, errors.New("no points in input")
	}
	return rings[0], rings[1:], nil
}

func parsePoint(line string) (earcut.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return earcut.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return earcut.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return earcut.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return earcut.Point{X: x, Y: y}, nil
}
