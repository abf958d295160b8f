package internal

// Polygons above this many vertices (times the stride) are indexed along a
// z-order curve so ear tests only visit nearby vertices.
const HashThreshold = 80

// Number of grid steps per axis. Coordinates are scaled into [0, zGridMax].
const zGridMax = 32767

// Morton key of a point, given the bbox origin and the inverse of the longer
// bbox side. Each axis is scaled to a 15 bit integer, truncating toward zero,
// and the bits of the two axes are interleaved with x in the even bits.
func zOrder(x, y, minX, minY, invSize float64) int32 {
	ix := uint32(int64(zGridMax * (x - minX) * invSize))
	iy := uint32(int64(zGridMax * (y - minY) * invSize))

	ix = (ix | (ix << 8)) & 0x00FF00FF
	ix = (ix | (ix << 4)) & 0x0F0F0F0F
	ix = (ix | (ix << 2)) & 0x33333333
	ix = (ix | (ix << 1)) & 0x55555555

	iy = (iy | (iy << 8)) & 0x00FF00FF
	iy = (iy | (iy << 4)) & 0x0F0F0F0F
	iy = (iy | (iy << 2)) & 0x33333333
	iy = (iy | (iy << 1)) & 0x55555555

	return int32(ix | (iy << 1))
}

// Key every node of the ring and thread the ring's nodes through prevZ/nextZ
// in ascending key order. Returns the head of the z list.
func (a *Arena) indexCurve(start int, minX, minY, invSize float64) int {
	p := start
	for {
		n := a.at(p)
		if !n.hasZ {
			n.z = zOrder(n.x, n.y, minX, minY, invSize)
			n.hasZ = true
		}
		n.prevZ = n.prev
		n.nextZ = n.next
		p = n.next
		if p == start {
			break
		}
	}

	// Open the circular list before sorting.
	a.at(a.at(p).prevZ).nextZ = nilNode
	a.at(p).prevZ = nilNode

	return a.sortLinked(p)
}

// Simon Tatham's bottom-up merge sort over the z list starting at list.
// Stable, no auxiliary storage. Returns the new head.
func (a *Arena) sortLinked(list int) int {
	inSize := 1
	for {
		p := list
		list = nilNode
		tail := nilNode
		numMerges := 0

		for p != nilNode {
			numMerges++
			q := p
			pSize := 0
			for i := 0; i < inSize; i++ {
				pSize++
				q = a.at(q).nextZ
				if q == nilNode {
					break
				}
			}
			qSize := inSize

			for pSize > 0 || (qSize > 0 && q != nilNode) {
				var e int
				if pSize != 0 && (qSize == 0 || q == nilNode || a.at(p).z <= a.at(q).z) {
					e = p
					p = a.at(p).nextZ
					pSize--
				} else {
					e = q
					q = a.at(q).nextZ
					qSize--
				}

				if tail != nilNode {
					a.at(tail).nextZ = e
				} else {
					list = e
				}
				a.at(e).prevZ = tail
				tail = e
			}

			p = q
		}

		a.at(tail).nextZ = nilNode
		if numMerges <= 1 {
			return list
		}
		inSize *= 2
	}
}
