package internal

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	Earcut([]float64{0, 0, 2, 2, 2, 0, 0, 2}, nil, Config{})
	out := buf.String()
	assert.Contains(t, out, "filtering points")
	assert.Contains(t, out, "curing local intersections")
	assert.Contains(t, out, "splitting polygon")
	assert.Contains(t, out, "no valid diagonal")

	buf.Reset()
	Earcut([]float64{0, 0, 10, 0, 10, 10, 0, 10, 20, 20, 30, 20, 30, 30}, []int{4}, Config{})
	assert.Contains(t, buf.String(), "no bridge for hole")

	buf.Reset()
	SetLogger(nil)
	Earcut([]float64{0, 0, 2, 2, 2, 0, 0, 2}, nil, Config{})
	assert.Empty(t, buf.String())
}
