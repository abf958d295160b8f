package internal

// Build a ring from the vertices in data[start:end] with the requested
// winding, reversing the traversal when the input winds the other way. A
// closing vertex equal to the first one is dropped. Returns nilNode for an
// empty range.
func (a *Arena) linkedList(data []float64, start, end, dim int, clockwise bool) int {
	last := nilNode
	if clockwise == (signedArea(data, start, end, dim) > 0) {
		for i := start; i < end; i += dim {
			last = a.insertNode(i, data[i], data[i+1], last)
		}
	} else {
		for i := end - dim; i >= start; i -= dim {
			last = a.insertNode(i, data[i], data[i+1], last)
		}
	}

	if last != nilNode && equals(a.at(last), a.at(a.at(last).next)) {
		a.removeNode(last)
		last = a.at(last).next
	}
	return last
}

// Remove duplicate and collinear vertices from the ring, scanning from start
// until end is reached without a removal. A nilNode end means start. Returns
// a node that is still on the ring.
func (a *Arena) filterPoints(start, end int) int {
	if start == nilNode {
		return start
	}
	if end == nilNode {
		end = start
	}

	p := start
	for {
		again := false
		n := a.at(p)
		if !n.steiner && (equals(n, a.at(n.next)) || area(a.at(n.prev), n, a.at(n.next)) == 0) {
			a.removeNode(p)
			p = n.prev
			end = p
			if p == a.at(p).next {
				break
			}
			again = true
		} else {
			p = n.next
		}

		if !again && p == end {
			break
		}
	}
	return end
}

// Find the leftmost node of a ring, lowest y breaking ties.
func (a *Arena) getLeftmost(start int) int {
	leftmost := start
	p := start
	for {
		n, l := a.at(p), a.at(leftmost)
		if n.x < l.x || (n.x == l.x && n.y < l.y) {
			leftmost = p
		}
		p = n.next
		if p == start {
			return leftmost
		}
	}
}
