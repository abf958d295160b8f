package internal

import (
	"fmt"
	"strings"

	"github.com/osuushi/earcut/dbg"
)

// Verify the ring links around start: every live node must be its next's prev
// and its prev's next, and the walk must come back to start within the arena
// size. Panics with a TriangulateError otherwise.
func (a *Arena) checkRing(start int) {
	if start == nilNode {
		return
	}
	p := start
	for steps := 0; ; steps++ {
		if steps > a.Len() {
			fatalf("ring at %s does not close after %d steps", a.name(start), steps)
		}
		n := a.at(p)
		if n.next < 0 || n.next >= a.Len() || n.prev < 0 || n.prev >= a.Len() {
			fatalf("node %s has a dangling link", a.name(p))
		}
		if a.at(n.next).prev != p {
			fatalf("node %s: next.prev is %s", a.name(p), a.name(a.at(n.next).prev))
		}
		if a.at(n.prev).next != p {
			fatalf("node %s: prev.next is %s", a.name(p), a.name(a.at(n.prev).next))
		}
		p = n.next
		if p == start {
			return
		}
	}
}

func (a *Arena) name(p int) string {
	if p == nilNode {
		return dbg.Name(nil)
	}
	return fmt.Sprintf("%s#%d", dbg.Name(p), a.nodes[p].i)
}

// Describe the ring around start, one node per line. Meant for test failure
// messages and debugging sessions.
func (a *Arena) dumpRing(start int) string {
	var sb strings.Builder
	if start == nilNode {
		return "<empty ring>"
	}
	p := start
	for {
		n := a.at(p)
		fmt.Fprintf(&sb, "%s (%g, %g)", a.name(p), n.x, n.y)
		if n.hasZ {
			fmt.Fprintf(&sb, " z=%d", n.z)
		}
		if n.steiner {
			sb.WriteString(" steiner")
		}
		sb.WriteByte('\n')
		p = n.next
		if p == start {
			return sb.String()
		}
	}
}
