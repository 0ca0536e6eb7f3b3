package chartgeom

import (
	"math/rand"
	"testing"
)

// identityCoords maps data space 1:1 onto screen space so tree tests
// can reason directly in screen coordinates.
func identityCoords(size float64) CoordinateSystem {
	// Y inversion still applies; tests that care about exact positions
	// use the projected values, not the raw data values.
	return NewCoordinateSystem(NewRect(0, 0, size, size), 0, size, 0, size)
}

func screenPoints(n int, size float64, seed int64) []DataPoint {
	rng := rand.New(rand.NewSource(seed))
	points := make([]DataPoint, n)
	for i := range points {
		points[i] = DataPoint{X: rng.Float64() * size, Y: rng.Float64() * size}
	}
	return points
}

func TestQuadNode_LeafBelowCapacityDoesNotSplit(t *testing.T) {
	cs := identityCoords(100)
	idx := NewSpatialIndex(screenPoints(8, 100, 1), &cs, IndexConfig{MaxPointsPerNode: 8})

	if !idx.root.isLeaf() {
		t.Error("root split although the leaf capacity was not exceeded")
	}
	if len(idx.root.entries) != 8 {
		t.Errorf("root holds %d entries, want 8", len(idx.root.entries))
	}
}

func TestQuadNode_SubdividesAboveCapacity(t *testing.T) {
	cs := identityCoords(100)
	idx := NewSpatialIndex(screenPoints(9, 100, 1), &cs, IndexConfig{MaxPointsPerNode: 8})

	if idx.root.isLeaf() {
		t.Fatal("root did not split above capacity")
	}
	// Entries moved down: internal nodes hold nothing.
	if len(idx.root.entries) != 0 {
		t.Errorf("internal root still holds %d entries", len(idx.root.entries))
	}
}

func TestQuadNode_ChildBoundsQuadrisectExactly(t *testing.T) {
	cs := identityCoords(128)
	idx := NewSpatialIndex(screenPoints(200, 128, 2), &cs, DefaultIndexConfig())

	idx.root.walk(func(n *quadNode) {
		if n.isLeaf() {
			return
		}
		c := n.bounds.Center()
		b := n.bounds
		want := [4]Rect{
			quadNW: {MinX: b.MinX, MinY: b.MinY, MaxX: c.X, MaxY: c.Y},
			quadNE: {MinX: c.X, MinY: b.MinY, MaxX: b.MaxX, MaxY: c.Y},
			quadSW: {MinX: b.MinX, MinY: c.Y, MaxX: c.X, MaxY: b.MaxY},
			quadSE: {MinX: c.X, MinY: c.Y, MaxX: b.MaxX, MaxY: b.MaxY},
		}
		for q, w := range want {
			if n.children[q].bounds != w {
				t.Fatalf("quadrant %d bounds = %v, want %v", q, n.children[q].bounds, w)
			}
		}
	})
}

func TestQuadNode_EveryEntryWithinNodeBounds(t *testing.T) {
	cs := identityCoords(100)
	idx := NewSpatialIndex(screenPoints(500, 100, 3), &cs, IndexConfig{MaxPointsPerNode: 4})

	idx.root.walk(func(n *quadNode) {
		for _, e := range n.entries {
			if !n.bounds.Contains(e.pos) {
				t.Fatalf("entry %v stored outside node bounds %v", e.pos, n.bounds)
			}
		}
	})
}

func TestQuadNode_BoundaryPointGoesToMinEdgeQuadrant(t *testing.T) {
	n := &quadNode{bounds: Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}}
	n.subdivide()

	// x == center: east. y == center: south. Both: SE.
	cases := []struct {
		p    Point
		want int
	}{
		{Point{50, 50}, quadSE},
		{Point{50, 10}, quadNE},
		{Point{10, 50}, quadSW},
		{Point{10, 10}, quadNW},
		{Point{49.999, 49.999}, quadNW},
		{Point{50, 49.999}, quadNE},
	}
	for _, c := range cases {
		if got := n.quadrantOf(c.p); got != c.want {
			t.Errorf("quadrantOf(%v) = %d, want %d", c.p, got, c.want)
		}
	}
}

func TestQuadNode_DepthCapStopsSubdivision(t *testing.T) {
	// 100 coincident points can never be separated by subdivision; the
	// depth cap must stop recursion and let one leaf accumulate them.
	points := make([]DataPoint, 100)
	for i := range points {
		points[i] = DataPoint{X: 50, Y: 50}
	}
	cs := identityCoords(100)
	idx := NewSpatialIndex(points, &cs, IndexConfig{MaxPointsPerNode: 4, MaxDepth: 6})

	st := idx.Stats()
	if st.TotalPoints != 100 {
		t.Errorf("TotalPoints = %d, want 100", st.TotalPoints)
	}
	if st.MaxDepth > 6 {
		t.Errorf("MaxDepth = %d, exceeds cap 6", st.MaxDepth)
	}

	// Below the cap no leaf may exceed capacity.
	idx.root.walk(func(n *quadNode) {
		if n.isLeaf() && n.depth < 6 && len(n.entries) > 4 {
			t.Fatalf("leaf at depth %d holds %d entries, capacity 4", n.depth, len(n.entries))
		}
	})
}

func TestQuadNode_LeafCapacityRespectedBelowMaxDepth(t *testing.T) {
	cs := identityCoords(100)
	cfg := IndexConfig{MaxPointsPerNode: 3, MaxDepth: 12}
	idx := NewSpatialIndex(screenPoints(300, 100, 4), &cs, cfg)

	idx.root.walk(func(n *quadNode) {
		if n.isLeaf() && n.depth < cfg.MaxDepth && len(n.entries) > cfg.MaxPointsPerNode {
			t.Fatalf("leaf at depth %d holds %d entries, capacity %d",
				n.depth, len(n.entries), cfg.MaxPointsPerNode)
		}
	})
}

func TestQuadNode_RootBoundsCoverSnappedPositions(t *testing.T) {
	// Data right at the domain edge can snap to a position marginally
	// outside the chart area; the root must still cover it.
	cs := NewCoordinateSystem(NewRect(0.3, 0.3, 399.4, 299.4), 0, 100, 0, 100)
	points := []DataPoint{{X: 0, Y: 0}, {X: 100, Y: 100}, {X: 50, Y: 50}}
	idx := NewSpatialIndex(points, &cs, DefaultIndexConfig())

	for _, p := range points {
		pos := cs.DataToScreen(p)
		if !idx.root.bounds.Contains(pos) {
			t.Errorf("root bounds %v do not cover projected point %v", idx.root.bounds, pos)
		}
	}
	if idx.Stats().TotalPoints != len(points) {
		t.Errorf("TotalPoints = %d, want %d", idx.Stats().TotalPoints, len(points))
	}
}
