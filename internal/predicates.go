package internal

// Geometric predicates over ring nodes. Every predicate assumes the winding
// produced by linkedList: outer rings run clockwise in screen coordinates (y
// down) and holes the other way, so a convex vertex has negative area.

// Twice the signed area of the ring stored in data[start:end], positive for
// rings that are clockwise in screen coordinates.
func signedArea(data []float64, start, end, dim int) float64 {
	var sum float64
	j := end - dim
	for i := start; i < end; i += dim {
		sum += (data[j] - data[i]) * (data[i+1] + data[j+1])
		j = i
	}
	return sum
}

// Signed area of the triangle pqr. Negative means a left turn at q.
func area(p, q, r *node) float64 {
	return (q.y-p.y)*(r.x-q.x) - (q.x-p.x)*(r.y-q.y)
}

func equals(p, q *node) bool {
	return p.x == q.x && p.y == q.y
}

// Check whether point p lies within the triangle abc, boundary included. The
// triangle must be wound the same way as ears are.
func pointInTriangle(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return (cx-px)*(ay-py)-(ax-px)*(cy-py) >= 0 &&
		(ax-px)*(by-py)-(bx-px)*(ay-py) >= 0 &&
		(bx-px)*(cy-py)-(cx-px)*(by-py) >= 0
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// For collinear p, q, r, check whether q lies on the segment pr.
func onSegment(p, q, r *node) bool {
	return q.x <= max(p.x, r.x) && q.x >= min(p.x, r.x) &&
		q.y <= max(p.y, r.y) && q.y >= min(p.y, r.y)
}

// Check whether segments p1q1 and p2q2 intersect, touching included.
func intersects(p1, q1, p2, q2 *node) bool {
	o1 := sign(area(p1, q1, p2))
	o2 := sign(area(p1, q1, q2))
	o3 := sign(area(p2, q2, p1))
	o4 := sign(area(p2, q2, q1))

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear cases
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}
	return false
}

// Check whether the diagonal pq crosses any edge of the ring, ignoring edges
// that share an endpoint vertex with it.
func (a *Arena) intersectsPolygon(p, q int) bool {
	pn, qn := a.at(p), a.at(q)
	r := p
	for {
		rn := a.at(r)
		next := a.at(rn.next)
		if rn.i != pn.i && next.i != pn.i && rn.i != qn.i && next.i != qn.i &&
			intersects(rn, next, pn, qn) {
			return true
		}
		r = rn.next
		if r == p {
			return false
		}
	}
}

// Check whether the diagonal pq leaves p into the polygon interior.
func (a *Arena) locallyInside(p, q int) bool {
	pn, qn := a.at(p), a.at(q)
	prev, next := a.at(pn.prev), a.at(pn.next)
	if area(prev, pn, next) < 0 {
		return area(pn, qn, next) >= 0 && area(pn, prev, qn) >= 0
	}
	return area(pn, qn, prev) < 0 || area(pn, next, qn) < 0
}

// Check whether the midpoint of the diagonal pq is inside the ring, by even
// odd crossing count.
func (a *Arena) middleInside(p, q int) bool {
	pn, qn := a.at(p), a.at(q)
	px := (pn.x + qn.x) / 2
	py := (pn.y + qn.y) / 2
	inside := false
	r := p
	for {
		rn := a.at(r)
		next := a.at(rn.next)
		if (rn.y > py) != (next.y > py) && next.y != rn.y &&
			px < (next.x-rn.x)*(py-rn.y)/(next.y-rn.y)+rn.x {
			inside = !inside
		}
		r = rn.next
		if r == p {
			return inside
		}
	}
}

// Check whether the diagonal pq lies in the polygon interior and can be used to
// split the ring.
func (a *Arena) isValidDiagonal(p, q int) bool {
	pn, qn := a.at(p), a.at(q)
	if a.at(pn.next).i == qn.i || a.at(pn.prev).i == qn.i || a.intersectsPolygon(p, q) {
		return false
	}

	pPrev, pNext := a.at(pn.prev), a.at(pn.next)
	qPrev, qNext := a.at(qn.prev), a.at(qn.next)

	// Locally visible, and the cut does not create opposite facing sectors.
	if a.locallyInside(p, q) && a.locallyInside(q, p) && a.middleInside(p, q) &&
		(area(pPrev, pn, qPrev) != 0 || area(pn, qPrev, qn) != 0) {
		return true
	}

	// Zero length diagonal between two coincident convex vertices.
	return equals(pn, qn) && area(pPrev, pn, pNext) > 0 && area(qPrev, qn, qNext) > 0
}

// Check whether the sector at vertex m contains the sector at vertex p, where
// both vertices have the same coordinates.
func (a *Arena) sectorContainsSector(m, p int) bool {
	mn, pn := a.at(m), a.at(p)
	return area(a.at(mn.prev), mn, a.at(pn.prev)) < 0 && area(a.at(pn.next), mn, a.at(mn.next)) < 0
}
