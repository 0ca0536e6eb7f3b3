package chartgeom

import "fmt"

// IndexConfig controls quadtree construction.
// Start with [DefaultIndexConfig] and override the fields you need;
// zero-valued fields fall back to their defaults.
type IndexConfig struct {
	// MaxPointsPerNode is the leaf capacity: a leaf below MaxDepth
	// subdivides rather than exceed it. Smaller values make queries
	// cheaper per leaf but deepen the tree. Must be >= 1. Default: 8.
	MaxPointsPerNode int

	// MaxDepth caps subdivision. A leaf at MaxDepth accumulates
	// entries without bound, which keeps coincident points (repeated
	// categorical values, stacked series) from recursing forever.
	// Must be >= 1. Default: 12.
	MaxDepth int
}

// DefaultIndexConfig returns an IndexConfig with the default limits.
func DefaultIndexConfig() IndexConfig {
	return IndexConfig{MaxPointsPerNode: 8, MaxDepth: 12}
}

func (cfg *IndexConfig) applyDefaults() {
	if cfg.MaxPointsPerNode == 0 {
		cfg.MaxPointsPerNode = 8
	}
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = 12
	}
}

// validate panics on out-of-range limits. Invalid limits are
// programmer errors, not runtime conditions.
func (cfg IndexConfig) validate() {
	if cfg.MaxPointsPerNode < 1 {
		panic(fmt.Sprintf("chartgeom: MaxPointsPerNode must be >= 1, got %d", cfg.MaxPointsPerNode))
	}
	if cfg.MaxDepth < 1 {
		panic(fmt.Sprintf("chartgeom: MaxDepth must be >= 1, got %d", cfg.MaxDepth))
	}
}

// SpatialIndex answers "which data point is near this screen location"
// queries over a set of data points projected through a
// CoordinateSystem.
//
// The index owns its internal tree exclusively. The coordinate system
// and the source point slice are borrowed: the caller keeps them alive
// and calls Rebuild (or SetCoordinateSystem) after changing either.
// There is no incremental insert or delete; chart data changes in bulk,
// so every update is a full rebuild.
//
// SpatialIndex is not safe for concurrent use. Callers that query from
// multiple goroutines while rebuilding must add their own
// synchronization.
type SpatialIndex struct {
	root   quadNode
	coords *CoordinateSystem
	points []DataPoint
	cfg    IndexConfig
}

// NewSpatialIndex builds an index over points projected through coords.
// Panics if coords is nil or cfg holds out-of-range limits; an empty or
// nil points slice is legal and yields an index whose queries all come
// up empty.
func NewSpatialIndex(points []DataPoint, coords *CoordinateSystem, cfg IndexConfig) *SpatialIndex {
	if coords == nil {
		panic("chartgeom: coordinate system must not be nil")
	}
	cfg.applyDefaults()
	cfg.validate()
	s := &SpatialIndex{coords: coords, cfg: cfg}
	s.Rebuild(points)
	return s
}

// Rebuild discards the current tree, re-projects every point in points
// through the coordinate system, and reconstructs from scratch. The
// slice is borrowed, not copied.
func (s *SpatialIndex) Rebuild(points []DataPoint) {
	s.points = points

	// Root bounds cover the chart area grown to every projected
	// position: pixel snapping (and out-of-domain data) can land a
	// point just outside the chart area, and every stored entry must
	// lie within the root bounds.
	bounds := s.coords.ChartArea
	projected := make([]entry, len(points))
	for i, p := range points {
		pos := s.coords.DataToScreen(p)
		projected[i] = entry{pos: pos, idx: i}
		bounds = bounds.ExpandToInclude(pos)
	}

	s.root = quadNode{bounds: bounds}
	for _, e := range projected {
		s.root.insert(e, s.cfg.MaxPointsPerNode, s.cfg.MaxDepth)
	}
}

// Clear empties the index. Equivalent to Rebuild(nil).
func (s *SpatialIndex) Clear() {
	s.Rebuild(nil)
}

// SetCoordinateSystem swaps the borrowed coordinate system and
// re-projects the current points. The axis/layout layer calls this when
// the chart area or data bounds change. Panics if coords is nil.
func (s *SpatialIndex) SetCoordinateSystem(coords *CoordinateSystem) {
	if coords == nil {
		panic("chartgeom: coordinate system must not be nil")
	}
	s.coords = coords
	s.Rebuild(s.points)
}

// Len returns the number of indexed points.
func (s *SpatialIndex) Len() int { return len(s.points) }

// Points returns the borrowed source point slice.
func (s *SpatialIndex) Points() []DataPoint { return s.points }

// CoordinateSystem returns the borrowed coordinate system.
func (s *SpatialIndex) CoordinateSystem() *CoordinateSystem { return s.coords }
