package chartgeom

import (
	"container/heap"
	"fmt"
	"math"
	"sort"
)

// Match is one query result: the data point, where it landed on screen,
// and the distance the query ranked it by. The distance metric depends
// on the query: Euclidean for FindNearest, FindNearestK, and
// FindInRadius; |Δx| for FindNearestByX; |Δy| for FindNearestByY;
// perpendicular point-to-segment distance for FindAlongLine; always 0
// for FindInRect.
type Match struct {
	// Index is the position of the point in the source slice passed to
	// NewSpatialIndex or Rebuild.
	Index int

	// Point is the original data point.
	Point DataPoint

	// Screen is the point's projected (pixel-snapped) screen position.
	Screen Point

	// Distance is the query's ranking distance to the point.
	Distance float64
}

func (s *SpatialIndex) match(e entry, dist float64) Match {
	return Match{Index: e.idx, Point: s.points[e.idx], Screen: e.pos, Distance: dist}
}

// sortMatches orders set-query results by source index so callers see a
// deterministic order regardless of tree shape.
func sortMatches(ms []Match) []Match {
	sort.Slice(ms, func(i, j int) bool { return ms[i].Index < ms[j].Index })
	return ms
}

// --- nearest (full 2-D) ---

// nearestState carries the running best candidate through a
// branch-and-bound traversal. dist is in the traversal's own metric
// (squared Euclidean for 2-D searches, plain |Δ| for axis searches).
type nearestState struct {
	idx  int // source index; -1 until a candidate is accepted
	pos  Point
	dist float64
}

// consider accepts e if it beats the current best. Exact ties go to the
// lowest source index, which keeps results stable across rebuilds with
// different insertion orders.
func (b *nearestState) consider(e entry, d float64) {
	if d > b.dist {
		return
	}
	if d == b.dist && b.idx >= 0 && e.idx > b.idx {
		return
	}
	b.idx, b.pos, b.dist = e.idx, e.pos, d
}

// FindNearest returns the point whose projected position is
// Euclidean-nearest to pt, or false if the index is empty. Ties go to
// the lowest source index.
func (s *SpatialIndex) FindNearest(pt Point) (Match, bool) {
	return s.FindNearestWithin(pt, math.Inf(1))
}

// FindNearestWithin is FindNearest with a cutoff: it returns false if
// the nearest point's distance exceeds maxDistance. A point at exactly
// maxDistance is still returned. Panics if maxDistance is negative.
func (s *SpatialIndex) FindNearestWithin(pt Point, maxDistance float64) (Match, bool) {
	if maxDistance < 0 {
		panic(fmt.Sprintf("chartgeom: maxDistance must be >= 0, got %g", maxDistance))
	}
	best := nearestState{idx: -1, dist: maxDistance * maxDistance}
	s.root.nearest(pt, &best)
	if best.idx < 0 {
		return Match{}, false
	}
	return s.match(entry{pos: best.pos, idx: best.idx}, math.Sqrt(best.dist)), true
}

// nearest descends the subtree, visiting children nearest-first so the
// best distance tightens early, and skipping any child whose bounds
// cannot hold a better candidate. Pruning keeps equality: a subtree at
// exactly the best distance may still hold a lower-index tie.
func (n *quadNode) nearest(pt Point, best *nearestState) {
	if n.isLeaf() {
		for _, e := range n.entries {
			best.consider(e, distSq(e.pos, pt))
		}
		return
	}

	var order [4]int
	var dists [4]float64
	for i := range n.children {
		order[i] = i
		dists[i] = n.children[i].bounds.distSqToPoint(pt)
	}
	for i := 1; i < 4; i++ {
		for j := i; j > 0 && dists[order[j]] < dists[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	for _, ci := range order {
		if dists[ci] > best.dist {
			continue
		}
		n.children[ci].nearest(pt, best)
	}
}

// --- nearest along one axis ---

type axis int

const (
	axisX axis = iota
	axisY
)

// FindNearestByX returns the point nearest to pt by horizontal distance
// only (Y is ignored), or false if the index is empty. This backs
// trackball/crosshair interactions that lock onto the closest X.
// Ties go to the lowest source index.
func (s *SpatialIndex) FindNearestByX(pt Point) (Match, bool) {
	return s.findNearestAxis(pt, axisX)
}

// FindNearestByY is the vertical counterpart of FindNearestByX.
func (s *SpatialIndex) FindNearestByY(pt Point) (Match, bool) {
	return s.findNearestAxis(pt, axisY)
}

func (s *SpatialIndex) findNearestAxis(pt Point, ax axis) (Match, bool) {
	best := nearestState{idx: -1, dist: math.Inf(1)}
	s.root.nearestAxis(pt, ax, &best)
	if best.idx < 0 {
		return Match{}, false
	}
	return s.match(entry{pos: best.pos, idx: best.idx}, best.dist), true
}

func (n *quadNode) nearestAxis(pt Point, ax axis, best *nearestState) {
	if n.isLeaf() {
		for _, e := range n.entries {
			var d float64
			if ax == axisX {
				d = math.Abs(e.pos.X - pt.X)
			} else {
				d = math.Abs(e.pos.Y - pt.Y)
			}
			best.consider(e, d)
		}
		return
	}

	var order [4]int
	var dists [4]float64
	for i := range n.children {
		order[i] = i
		if ax == axisX {
			dists[i] = n.children[i].bounds.xDistTo(pt.X)
		} else {
			dists[i] = n.children[i].bounds.yDistTo(pt.Y)
		}
	}
	for i := 1; i < 4; i++ {
		for j := i; j > 0 && dists[order[j]] < dists[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	for _, ci := range order {
		if dists[ci] > best.dist {
			continue
		}
		n.children[ci].nearestAxis(pt, ax, best)
	}
}

// --- k nearest ---

// FindNearestK returns the k points Euclidean-nearest to pt, sorted by
// ascending distance (ties by ascending source index). If fewer than k
// points are indexed, all of them are returned. Panics if k < 1.
func (s *SpatialIndex) FindNearestK(pt Point, k int) []Match {
	if k < 1 {
		panic(fmt.Sprintf("chartgeom: k must be >= 1, got %d", k))
	}
	h := &knnHeap{}
	heap.Init(h)
	s.root.nearestK(pt, k, h)

	out := make([]Match, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		item := heap.Pop(h).(knnItem)
		out[i] = s.match(item.entry, math.Sqrt(item.distSq))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Index < out[j].Index
	})
	return out
}

// nearestK fills the bounded max-heap with the k closest entries,
// pruning subtrees that cannot beat the current k-th distance.
func (n *quadNode) nearestK(pt Point, k int, h *knnHeap) {
	if n.isLeaf() {
		for _, e := range n.entries {
			d := distSq(e.pos, pt)
			if h.Len() < k {
				heap.Push(h, knnItem{entry: e, distSq: d})
			} else if d < (*h)[0].distSq {
				(*h)[0] = knnItem{entry: e, distSq: d}
				heap.Fix(h, 0)
			}
		}
		return
	}

	var order [4]int
	var dists [4]float64
	for i := range n.children {
		order[i] = i
		dists[i] = n.children[i].bounds.distSqToPoint(pt)
	}
	for i := 1; i < 4; i++ {
		for j := i; j > 0 && dists[order[j]] < dists[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	for _, ci := range order {
		if h.Len() == k && dists[ci] > (*h)[0].distSq {
			continue
		}
		n.children[ci].nearestK(pt, k, h)
	}
}

type knnItem struct {
	entry  entry
	distSq float64
}

// knnHeap is a max-heap of knnItem (largest distance on top) used as a
// bounded priority queue for k-nearest queries.
type knnHeap []knnItem

func (h knnHeap) Len() int            { return len(h) }
func (h knnHeap) Less(i, j int) bool  { return h[i].distSq > h[j].distSq } // max-heap
func (h knnHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *knnHeap) Push(x interface{}) { *h = append(*h, x.(knnItem)) }
func (h *knnHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// --- region queries ---

// FindInRadius returns every point whose projected position is within
// Euclidean distance radius of center (boundary inclusive), sorted by
// source index. Panics if radius <= 0.
func (s *SpatialIndex) FindInRadius(center Point, radius float64) []Match {
	if radius <= 0 {
		panic(fmt.Sprintf("chartgeom: radius must be > 0, got %g", radius))
	}
	var out []Match
	rSq := radius * radius
	s.root.inRadius(center, rSq, func(e entry, dSq float64) {
		out = append(out, s.match(e, math.Sqrt(dSq)))
	})
	return sortMatches(out)
}

func (n *quadNode) inRadius(center Point, radiusSq float64, emit func(entry, float64)) {
	if n.bounds.distSqToPoint(center) > radiusSq {
		return
	}
	if n.isLeaf() {
		for _, e := range n.entries {
			if d := distSq(e.pos, center); d <= radiusSq {
				emit(e, d)
			}
		}
		return
	}
	for i := range n.children {
		n.children[i].inRadius(center, radiusSq, emit)
	}
}

// FindInRect returns every point whose projected position lies within
// rect, edges inclusive, sorted by source index. Distance on the
// results is 0; rectangle selection has no ranking.
func (s *SpatialIndex) FindInRect(rect Rect) []Match {
	var out []Match
	s.root.inRect(rect, func(e entry) {
		out = append(out, s.match(e, 0))
	})
	return sortMatches(out)
}

func (n *quadNode) inRect(rect Rect, emit func(entry)) {
	if !n.bounds.Intersects(rect) {
		return
	}
	if n.isLeaf() {
		for _, e := range n.entries {
			if rect.Contains(e.pos) {
				emit(e)
			}
		}
		return
	}
	for i := range n.children {
		n.children[i].inRect(rect, emit)
	}
}

// FindAlongLine returns every point whose perpendicular distance to
// segment a-b is at most tolerance, sorted by source index. This backs
// diagonal/line-based hit testing. A degenerate segment (a == b)
// reduces to a radius search of radius tolerance. Panics if tolerance
// is negative.
func (s *SpatialIndex) FindAlongLine(a, b Point, tolerance float64) []Match {
	if tolerance < 0 {
		panic(fmt.Sprintf("chartgeom: tolerance must be >= 0, got %g", tolerance))
	}
	// Prune with the segment's bounding box grown by the tolerance:
	// any point within tolerance of the segment lies inside it.
	reach := segmentBounds(a, b).Inflate(tolerance)
	var out []Match
	s.root.alongLine(a, b, tolerance, reach, func(e entry, d float64) {
		out = append(out, s.match(e, d))
	})
	return sortMatches(out)
}

func (n *quadNode) alongLine(a, b Point, tolerance float64, reach Rect, emit func(entry, float64)) {
	if !n.bounds.Intersects(reach) {
		return
	}
	if n.isLeaf() {
		for _, e := range n.entries {
			if d := pointSegmentDistance(e.pos, a, b); d <= tolerance {
				emit(e, d)
			}
		}
		return
	}
	for i := range n.children {
		n.children[i].alongLine(a, b, tolerance, reach, emit)
	}
}
