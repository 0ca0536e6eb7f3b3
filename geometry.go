package chartgeom

import "math"

// Point is a position in screen space. X grows rightward and Y grows
// downward, matching how pointer events arrive from the toolkit.
type Point struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance between two screen points.
func (p Point) DistanceTo(q Point) float64 {
	return math.Sqrt(distSq(p, q))
}

// distSq is the squared Euclidean distance, used internally so tree
// pruning can skip the sqrt (same trick as reduced distances in
// nearest-neighbor trees).
func distSq(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Rect is an axis-aligned screen-space rectangle. A valid Rect has
// MinX <= MaxX and MinY <= MaxY; a zero-area Rect (point or segment)
// is legal.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewRect builds a Rect from a top-left corner and a size.
// Panics if width or height is negative.
func NewRect(left, top, width, height float64) Rect {
	if width < 0 || height < 0 {
		panic("chartgeom: rect width and height must be non-negative")
	}
	return Rect{MinX: left, MinY: top, MaxX: left + width, MaxY: top + height}
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Contains reports whether p lies inside r. Edges are inclusive on all
// four sides.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX &&
		p.Y >= r.MinY && p.Y <= r.MaxY
}

// Intersects reports whether r and o share any point. Touching edges
// count as intersecting, so edge-inclusive containment queries never
// miss a boundary point.
func (r Rect) Intersects(o Rect) bool {
	return o.MinX <= r.MaxX && o.MaxX >= r.MinX &&
		o.MinY <= r.MaxY && o.MaxY >= r.MinY
}

// Inflate returns r grown outward by d on every side. A negative d
// shrinks the rectangle; the result is clamped so it never inverts.
func (r Rect) Inflate(d float64) Rect {
	out := Rect{MinX: r.MinX - d, MinY: r.MinY - d, MaxX: r.MaxX + d, MaxY: r.MaxY + d}
	if out.MinX > out.MaxX {
		c := (out.MinX + out.MaxX) / 2
		out.MinX, out.MaxX = c, c
	}
	if out.MinY > out.MaxY {
		c := (out.MinY + out.MaxY) / 2
		out.MinY, out.MaxY = c, c
	}
	return out
}

// ExpandToInclude returns the smallest Rect covering both r and p.
func (r Rect) ExpandToInclude(p Point) Rect {
	return Rect{
		MinX: math.Min(r.MinX, p.X),
		MinY: math.Min(r.MinY, p.Y),
		MaxX: math.Max(r.MaxX, p.X),
		MaxY: math.Max(r.MaxY, p.Y),
	}
}

// distSqToPoint returns the squared distance from p to the nearest
// point of r (0 if p is inside). This is the bound used to prune
// subtrees during nearest and radius traversals.
func (r Rect) distSqToPoint(p Point) float64 {
	dx := axisDist(p.X, r.MinX, r.MaxX)
	dy := axisDist(p.Y, r.MinY, r.MaxY)
	return dx*dx + dy*dy
}

// xDistTo returns the horizontal distance from x to the interval
// [MinX, MaxX] (0 if inside).
func (r Rect) xDistTo(x float64) float64 {
	return axisDist(x, r.MinX, r.MaxX)
}

// yDistTo returns the vertical distance from y to [MinY, MaxY].
func (r Rect) yDistTo(y float64) float64 {
	return axisDist(y, r.MinY, r.MaxY)
}

func axisDist(v, lo, hi float64) float64 {
	if v < lo {
		return lo - v
	}
	if v > hi {
		return v - hi
	}
	return 0
}

// segmentBounds returns the bounding box of segment a-b.
func segmentBounds(a, b Point) Rect {
	return Rect{
		MinX: math.Min(a.X, b.X),
		MinY: math.Min(a.Y, b.Y),
		MaxX: math.Max(a.X, b.X),
		MaxY: math.Max(a.Y, b.Y),
	}
}

// pointSegmentDistance returns the distance from p to the closest point
// of segment a-b. A degenerate segment (a == b) reduces to point
// distance.
func pointSegmentDistance(p, a, b Point) float64 {
	abx := b.X - a.X
	aby := b.Y - a.Y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return p.DistanceTo(a)
	}
	// Project p onto the segment, clamping to the endpoints.
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := Point{X: a.X + t*abx, Y: a.Y + t*aby}
	return p.DistanceTo(closest)
}
