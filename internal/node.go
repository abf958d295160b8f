package internal

// Ring nodes live in an arena and refer to each other by index. A polygon ring
// is a circular doubly linked list threaded through prev/next. After z-order
// indexing, prevZ/nextZ thread a second, open list through the same nodes
// sorted by z.

// nilNode is the absent link.
const nilNode = -1

type node struct {
	// Offset of the vertex in the flat coordinate buffer. Output indices are
	// i / dim.
	i    int
	x, y float64

	prev, next int

	// Morton key, valid once hasZ is set.
	z    int32
	hasZ bool

	prevZ, nextZ int

	// A single point hole. The filter never removes it.
	steiner bool
}

// Arena owns every node created during one triangulation call. Nodes are
// never freed individually; removing a node from its ring only relinks its
// neighbors.
type Arena struct {
	nodes []node
}

func NewArena(capacity int) *Arena {
	return &Arena{nodes: make([]node, 0, capacity)}
}

// Len reports how many nodes were ever allocated, live or removed.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// The returned pointer is only valid until the next allocation.
func (a *Arena) at(p int) *node {
	return &a.nodes[p]
}

func (a *Arena) newNode(i int, x, y float64) int {
	a.nodes = append(a.nodes, node{
		i:     i,
		x:     x,
		y:     y,
		prev:  nilNode,
		next:  nilNode,
		prevZ: nilNode,
		nextZ: nilNode,
	})
	return len(a.nodes) - 1
}

// Create a node and link it after last. With no last node, the new node forms
// a ring of one.
func (a *Arena) insertNode(i int, x, y float64, last int) int {
	p := a.newNode(i, x, y)
	n := a.at(p)
	if last == nilNode {
		n.prev = p
		n.next = p
		return p
	}

	l := a.at(last)
	n.next = l.next
	n.prev = last
	a.at(l.next).prev = p
	l.next = p
	return p
}

// Unlink p from its ring and from the z-order list. The links of p itself are
// left alone so callers can keep walking from it.
func (a *Arena) removeNode(p int) {
	n := a.at(p)
	a.at(n.next).prev = n.prev
	a.at(n.prev).next = n.next

	if n.prevZ != nilNode {
		a.at(n.prevZ).nextZ = n.nextZ
	}
	if n.nextZ != nilNode {
		a.at(n.nextZ).prevZ = n.prevZ
	}
}

// Link two vertices with a bridge. If they are in the same ring, this splits
// it in two. If one is in a hole ring, the hole is merged into the other ring.
// Both vertices are duplicated so that each side of the cut stays a closed
// ring. Returns the copy of q, which lies on the ring that does not contain p.
func (a *Arena) splitPolygon(p, q int) int {
	p2 := a.newNode(a.nodes[p].i, a.nodes[p].x, a.nodes[p].y)
	q2 := a.newNode(a.nodes[q].i, a.nodes[q].x, a.nodes[q].y)
	pn := a.nodes[p].next
	qp := a.nodes[q].prev

	a.nodes[p].next = q
	a.nodes[q].prev = p

	a.nodes[p2].next = pn
	a.nodes[pn].prev = p2

	a.nodes[q2].next = p2
	a.nodes[p2].prev = q2

	a.nodes[qp].next = q2
	a.nodes[q2].prev = qp

	return q2
}

// Count the live nodes of the ring containing start.
func (a *Arena) ringLen(start int) int {
	if start == nilNode {
		return 0
	}
	count := 0
	p := start
	for {
		count++
		p = a.nodes[p].next
		if p == start {
			return count
		}
	}
}
