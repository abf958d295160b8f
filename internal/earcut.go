package internal

import (
	"log/slog"
)

// Ear clipping triangulation of a polygon given as a flat coordinate buffer,
// with holes. The outer ring and the holes are loaded into an arena of linked
// nodes, holes are bridged into the outer ring, and ears are cut until no
// more can be found. When the loop gets stuck it degrades in three passes:
// filter collinear points and retry, cure small local self-intersections and
// retry, then split the ring along a valid diagonal and start over on both
// halves.

type Config struct {
	// Coordinate stride. Only the first two coordinates of each vertex are
	// read. Zero means 2.
	Dim int

	// Verify ring links after holes are bridged, and panic with a
	// TriangulateError on corruption.
	CheckInvariants bool
}

// Counters describing how a triangulation went. None of these indicate
// failure on their own; they exist for diagnostics and tests.
type Stats struct {
	// Rings built, outer included. Empty hole ranges are not counted.
	Rings int
	// Holes that could not be bridged and were left out.
	DroppedHoles int
	// Whether the z-order index was used.
	Indexed bool
	// Number of times each fallback pass was entered.
	FilterPasses int
	CurePasses   int
	SplitPasses  int
	// Triangles emitted while curing local self-intersections.
	CuredIntersections int
	// Rings split in two by a diagonal, and split attempts that found no
	// valid diagonal.
	Splits       int
	FailedSplits int
	Triangles    int
}

type task struct {
	ear  int
	pass int
}

type triangulator struct {
	arena *Arena
	dim   int

	// Z-order transform. invSize 0 disables hashing.
	minX, minY, invSize float64

	triangles []int
	stats     Stats

	// Pending rings. Processed last in first out so the output order matches
	// a depth first recursion over the passes.
	work []task
}

// Earcut triangulates the polygon and returns vertex indices (ordinals into
// data, already divided by the stride) in groups of three.
func Earcut(data []float64, holeIndices []int, config Config) ([]int, Stats) {
	dim := config.Dim
	if dim <= 0 {
		dim = 2
	}
	config.Dim = dim

	// Complex shapes use the z-order hash.
	t := newTriangulator(data, holeIndices, dim)
	t.run(data, holeIndices, config, len(data) > HashThreshold*dim)
	return t.triangles, t.stats
}

func newTriangulator(data []float64, holeIndices []int, dim int) *triangulator {
	return &triangulator{
		arena:     NewArena(len(data)/dim + 2*len(holeIndices) + 8),
		dim:       dim,
		triangles: make([]int, 0, max(len(data)/dim-2, 0)*3),
	}
}

func (t *triangulator) run(data []float64, holeIndices []int, config Config, hashed bool) {
	dim := t.dim
	hasHoles := len(holeIndices) > 0
	outerLen := len(data)
	if hasHoles {
		outerLen = holeIndices[0] * dim
	}

	outer := t.arena.linkedList(data, 0, outerLen, dim, true)
	if outer == nilNode || t.arena.at(outer).next == t.arena.at(outer).prev {
		return
	}
	t.stats.Rings++

	if hasHoles {
		outer = t.eliminateHoles(data, holeIndices, outer)
	}

	if config.CheckInvariants {
		t.arena.checkRing(outer)
	}

	// The transform into z-order space is keyed off the outer ring's bbox.
	if hashed {
		minX, maxX := data[0], data[0]
		minY, maxY := data[1], data[1]
		for i := dim; i < outerLen; i += dim {
			x, y := data[i], data[i+1]
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}

		t.minX, t.minY = minX, minY
		size := max(maxX-minX, maxY-minY)
		if size != 0 {
			t.invSize = 1 / size
		}
	}
	t.stats.Indexed = t.invSize != 0

	t.earcutLinked(outer, 0)
	t.stats.Triangles = len(t.triangles) / 3
}

func (t *triangulator) earcutLinked(ear, pass int) {
	t.work = append(t.work, task{ear, pass})
	for len(t.work) > 0 {
		next := t.work[len(t.work)-1]
		t.work = t.work[:len(t.work)-1]
		t.slice(next.ear, next.pass)
	}
}

func (t *triangulator) push(ear, pass int) {
	t.work = append(t.work, task{ear, pass})
}

func (t *triangulator) emit(a, b, c int) {
	nodes := t.arena.nodes
	t.triangles = append(t.triangles, nodes[a].i/t.dim, nodes[b].i/t.dim, nodes[c].i/t.dim)
}

// Cut ears off one ring until it is exhausted or stuck. A stuck ring queues
// the next pass.
func (t *triangulator) slice(ear, pass int) {
	if ear == nilNode {
		return
	}
	a := t.arena

	if pass == 0 && t.invSize != 0 {
		a.indexCurve(ear, t.minX, t.minY, t.invSize)
	}

	stop := ear
	for a.at(ear).prev != a.at(ear).next {
		prev, next := a.at(ear).prev, a.at(ear).next

		var cut bool
		if t.invSize != 0 {
			cut = t.isEarHashed(ear)
		} else {
			cut = a.isEar(ear)
		}

		if cut {
			t.emit(prev, ear, next)
			a.removeNode(ear)

			// Skipping the next vertex leads to fewer sliver triangles.
			ear = a.at(next).next
			stop = ear
			continue
		}

		ear = next

		// A whole lap without finding an ear.
		if ear == stop {
			t.escalate(ear, pass)
			return
		}
	}
}

func (t *triangulator) escalate(ear, pass int) {
	a := t.arena
	switch pass {
	case 0:
		t.stats.FilterPasses++
		logger().Debug("earcut: no ear found, filtering points",
			slog.Int("vertex", a.at(ear).i/t.dim))
		t.push(a.filterPoints(ear, nilNode), 1)
	case 1:
		t.stats.CurePasses++
		logger().Debug("earcut: no ear found, curing local intersections",
			slog.Int("vertex", a.at(ear).i/t.dim))
		ear = t.cureLocalIntersections(a.filterPoints(ear, nilNode))
		t.push(ear, 2)
	case 2:
		t.stats.SplitPasses++
		logger().Debug("earcut: no ear found, splitting polygon",
			slog.Int("vertex", a.at(ear).i/t.dim))
		t.splitEarcut(ear)
	}
}

// Check whether ear forms a valid ear with its neighbors, visiting every other
// node of the ring.
func (a *Arena) isEar(ear int) bool {
	en := a.at(ear)
	pa, pb, pc := a.at(en.prev), en, a.at(en.next)

	// Reflex, can't be an ear.
	if area(pa, pb, pc) >= 0 {
		return false
	}

	p := pc.next
	for p != en.prev {
		pn := a.at(p)
		if pointInTriangle(pa.x, pa.y, pb.x, pb.y, pc.x, pc.y, pn.x, pn.y) &&
			area(a.at(pn.prev), pn, a.at(pn.next)) >= 0 {
			return false
		}
		p = pn.next
	}
	return true
}

// Same verdict as isEar, but only visits nodes whose z key falls within the
// key range of the triangle's bbox, walking out from the ear in both
// directions along the z list.
func (t *triangulator) isEarHashed(ear int) bool {
	a := t.arena
	en := a.at(ear)
	pa, pb, pc := a.at(en.prev), en, a.at(en.next)

	if area(pa, pb, pc) >= 0 {
		return false
	}

	minTX := min(pa.x, pb.x, pc.x)
	minTY := min(pa.y, pb.y, pc.y)
	maxTX := max(pa.x, pb.x, pc.x)
	maxTY := max(pa.y, pb.y, pc.y)

	minZ := zOrder(minTX, minTY, t.minX, t.minY, t.invSize)
	maxZ := zOrder(maxTX, maxTY, t.minX, t.minY, t.invSize)

	blocks := func(q int) bool {
		if q == en.prev || q == en.next {
			return false
		}
		qn := a.at(q)
		return pointInTriangle(pa.x, pa.y, pb.x, pb.y, pc.x, pc.y, qn.x, qn.y) &&
			area(a.at(qn.prev), qn, a.at(qn.next)) >= 0
	}

	p, n := en.prevZ, en.nextZ

	// Both directions at once
	for p != nilNode && a.at(p).z >= minZ && n != nilNode && a.at(n).z <= maxZ {
		if blocks(p) {
			return false
		}
		p = a.at(p).prevZ

		if blocks(n) {
			return false
		}
		n = a.at(n).nextZ
	}

	// Remaining points in decreasing z order
	for p != nilNode && a.at(p).z >= minZ {
		if blocks(p) {
			return false
		}
		p = a.at(p).prevZ
	}

	// Remaining points in increasing z order
	for n != nilNode && a.at(n).z <= maxZ {
		if blocks(n) {
			return false
		}
		n = a.at(n).nextZ
	}
	return true
}

// Walk the ring and cut off pairs of vertices that form a small local
// self-intersection with their outer neighbors.
func (t *triangulator) cureLocalIntersections(start int) int {
	a := t.arena
	p := start
	for {
		pn := a.at(p)
		prev := pn.prev
		next := pn.next
		b := a.at(next).next

		if !equals(a.at(prev), a.at(b)) &&
			intersects(a.at(prev), pn, a.at(next), a.at(b)) &&
			a.locallyInside(prev, b) && a.locallyInside(b, prev) {
			t.emit(prev, p, b)
			t.stats.CuredIntersections++

			// Remove the two nodes involved.
			a.removeNode(p)
			a.removeNode(next)

			p = b
			start = b
		}
		p = a.at(p).next
		if p == start {
			break
		}
	}
	return a.filterPoints(p, nilNode)
}

// Look for a valid diagonal that divides the ring in two, and queue both
// halves from the first pass.
func (t *triangulator) splitEarcut(start int) {
	a := t.arena
	p := start
	for {
		q := a.at(a.at(p).next).next
		for q != a.at(p).prev {
			if a.at(p).i != a.at(q).i && a.isValidDiagonal(p, q) {
				c := a.splitPolygon(p, q)

				// Filter collinear points around the cuts
				p = a.filterPoints(p, a.at(p).next)
				c = a.filterPoints(c, a.at(c).next)

				t.stats.Splits++
				t.push(c, 0)
				t.push(p, 0)
				return
			}
			q = a.at(q).next
		}

		p = a.at(p).next
		if p == start {
			break
		}
	}

	t.stats.FailedSplits++
	logger().Debug("earcut: no valid diagonal, giving up on ring",
		slog.Int("vertex", a.at(start).i/t.dim),
		slog.Int("remaining", a.ringLen(start)))
}
