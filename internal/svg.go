package internal

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) SVG reader. It parses the document and
// collects the points of every <polygon> element in document order, each as a
// flat x, y buffer. Transforms, paths and every other shape are ignored.
func ParseSVGRings(r io.Reader) ([][]float64, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse svg")
	}

	polygons := root.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygons found in svg")
	}

	rings := make([][]float64, 0, len(polygons))
	for k, el := range polygons {
		ring, err := parsePointList(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", k)
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

// Parse an SVG points attribute. Numbers may be separated by whitespace,
// commas, or both.
func parsePointList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}

	coords := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid coordinate %q", field)
		}
		coords = append(coords, v)
	}
	return coords, nil
}
