package internal

import (
	"log/slog"
	"math"
	"sort"
)

// Link every hole into the outer ring, producing a single ring without holes.
// Holes are bridged left to right by their leftmost vertex.
func (t *triangulator) eliminateHoles(data []float64, holeIndices []int, outer int) int {
	a := t.arena
	queue := make([]int, 0, len(holeIndices))
	for k, hole := range holeIndices {
		start := hole * t.dim
		end := len(data)
		if k < len(holeIndices)-1 {
			end = holeIndices[k+1] * t.dim
		}

		list := a.linkedList(data, start, end, t.dim, false)
		if list == nilNode {
			continue
		}
		t.stats.Rings++
		if list == a.at(list).next {
			a.at(list).steiner = true
		}
		queue = append(queue, a.getLeftmost(list))
	}

	sort.SliceStable(queue, func(i, j int) bool {
		return a.at(queue[i]).x < a.at(queue[j]).x
	})

	for _, hole := range queue {
		if !t.eliminateHole(hole, outer) {
			t.stats.DroppedHoles++
			logger().Debug("earcut: no bridge for hole",
				slog.Int("vertex", a.at(hole).i/t.dim))
		}
		outer = a.filterPoints(outer, a.at(outer).next)
	}
	return outer
}

// Bridge a hole into the outer ring. Reports false when no bridge exists.
func (t *triangulator) eliminateHole(hole, outer int) bool {
	a := t.arena
	bridge := a.findHoleBridge(hole, outer)
	if bridge == nilNode {
		return false
	}

	b := a.splitPolygon(bridge, hole)

	// Filter collinear points around the cuts
	a.filterPoints(bridge, a.at(bridge).next)
	a.filterPoints(b, a.at(b).next)
	return true
}

// David Eberly's algorithm for finding a bridge between a hole and the outer
// ring. A ray is cast left from the hole's leftmost vertex; the nearest edge it
// hits gives a candidate, which is then replaced by any reflex vertex inside
// the triangle between the hole vertex, the hit and the candidate that makes
// the smallest angle with the ray.
func (a *Arena) findHoleBridge(hole, outer int) int {
	hx, hy := a.at(hole).x, a.at(hole).y
	qx := math.Inf(-1)
	m := nilNode

	// The endpoint with lesser x of the segment hit by the ray is the candidate.
	p := outer
	for {
		pn := a.at(p)
		next := a.at(pn.next)
		if hy <= pn.y && hy >= next.y && next.y != pn.y {
			x := pn.x + (hy-pn.y)*(next.x-pn.x)/(next.y-pn.y)
			if x <= hx && x > qx {
				qx = x
				if x == hx {
					if hy == pn.y {
						return p
					}
					if hy == next.y {
						return pn.next
					}
				}
				if pn.x < next.x {
					m = p
				} else {
					m = pn.next
				}
			}
		}
		p = pn.next
		if p == outer {
			break
		}
	}

	if m == nilNode {
		return nilNode
	}

	// The hole touches the outer segment; take its leftmost endpoint.
	if hx == qx {
		return m
	}

	stop := m
	mx, my := a.at(m).x, a.at(m).y
	tanMin := math.Inf(1)

	// Triangle corners depend on which side of the ray the candidate is.
	ax, cx := qx, hx
	if hy < my {
		ax, cx = hx, qx
	}

	p = m
	for {
		pn := a.at(p)
		if hx >= pn.x && pn.x >= mx && hx != pn.x &&
			pointInTriangle(ax, hy, mx, my, cx, hy, pn.x, pn.y) {
			tan := math.Abs(hy-pn.y) / (hx - pn.x)
			if a.locallyInside(p, hole) &&
				(tan < tanMin || (tan == tanMin && (pn.x > a.at(m).x ||
					(pn.x == a.at(m).x && a.sectorContainsSector(m, p))))) {
				m = p
				tanMin = tan
			}
		}
		p = pn.next
		if p == stop {
			return m
		}
	}
}
