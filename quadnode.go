package chartgeom

// entry is one projected point stored in the tree: the screen position
// plus the index of the originating DataPoint in the source slice.
type entry struct {
	pos Point
	idx int
}

// Quadrant order within a node's children array.
const (
	quadNW = iota // min X, min Y (top-left in screen coordinates)
	quadNE
	quadSW
	quadSE
)

// quadNode is one node of a point quadtree over screen space.
//
// A node is a leaf iff children is nil. Entries live only in leaves: a
// subdividing leaf redistributes everything it held into its new
// children. A leaf holds at most maxPointsPerNode entries unless it
// sits at maxDepth, where it accumulates without bound so coincident
// points can never recurse forever.
type quadNode struct {
	bounds   Rect
	entries  []entry
	children *[4]quadNode
	depth    int
}

func (n *quadNode) isLeaf() bool { return n.children == nil }

// insert places e into the subtree rooted at n. The caller guarantees
// e.pos lies within n.bounds (the root is grown to cover every
// projected point before insertion starts).
func (n *quadNode) insert(e entry, maxPerNode, maxDepth int) {
	if n.isLeaf() {
		if len(n.entries) < maxPerNode || n.depth >= maxDepth {
			n.entries = append(n.entries, e)
			return
		}
		n.subdivide()
		old := n.entries
		n.entries = nil
		for _, oe := range old {
			n.children[n.quadrantOf(oe.pos)].insert(oe, maxPerNode, maxDepth)
		}
	}
	n.children[n.quadrantOf(e.pos)].insert(e, maxPerNode, maxDepth)
}

// subdivide splits n into four children that exactly quadrisect its
// bounds: no overlap beyond the shared center lines, no gap.
func (n *quadNode) subdivide() {
	c := n.bounds.Center()
	d := n.depth + 1
	n.children = &[4]quadNode{
		quadNW: {bounds: Rect{MinX: n.bounds.MinX, MinY: n.bounds.MinY, MaxX: c.X, MaxY: c.Y}, depth: d},
		quadNE: {bounds: Rect{MinX: c.X, MinY: n.bounds.MinY, MaxX: n.bounds.MaxX, MaxY: c.Y}, depth: d},
		quadSW: {bounds: Rect{MinX: n.bounds.MinX, MinY: c.Y, MaxX: c.X, MaxY: n.bounds.MaxY}, depth: d},
		quadSE: {bounds: Rect{MinX: c.X, MinY: c.Y, MaxX: n.bounds.MaxX, MaxY: n.bounds.MaxY}, depth: d},
	}
}

// quadrantOf assigns a position to a child quadrant. A point exactly on
// a split line goes to the quadrant whose bounds include that line on
// its min edge: x >= center goes east, y >= center goes south. The rule
// is deterministic and needs no epsilon since both sides of the
// comparison derive from the same arithmetic.
func (n *quadNode) quadrantOf(p Point) int {
	c := n.bounds.Center()
	east := p.X >= c.X
	south := p.Y >= c.Y
	switch {
	case !east && !south:
		return quadNW
	case east && !south:
		return quadNE
	case !east:
		return quadSW
	default:
		return quadSE
	}
}

// walk visits n and every descendant in depth-first child order.
func (n *quadNode) walk(fn func(*quadNode)) {
	fn(n)
	if n.children == nil {
		return
	}
	for i := range n.children {
		n.children[i].walk(fn)
	}
}
