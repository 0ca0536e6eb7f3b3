package chartgeom

import "gonum.org/v1/gonum/stat"

// Stats is a read-only diagnostic snapshot of the tree structure,
// computed by a full walk. It exists for tuning IndexConfig (leaf
// capacity vs. depth trade-offs) and sits on no query path.
type Stats struct {
	// TotalPoints is the number of entries stored across all leaves.
	TotalPoints int

	// NodeCount is the number of tree nodes, internal and leaf. An
	// empty index still has one node (the root leaf).
	NodeCount int

	// MaxDepth is the depth of the deepest node; the root is depth 0.
	MaxDepth int

	// AvgPointsPerLeaf is the mean entry count over all leaves,
	// including leaves left empty by subdivision.
	AvgPointsPerLeaf float64
}

// Stats walks the whole tree and returns its structural summary.
func (s *SpatialIndex) Stats() Stats {
	var st Stats
	var occupancy []float64
	s.root.walk(func(n *quadNode) {
		st.NodeCount++
		if n.depth > st.MaxDepth {
			st.MaxDepth = n.depth
		}
		if n.isLeaf() {
			st.TotalPoints += len(n.entries)
			occupancy = append(occupancy, float64(len(n.entries)))
		}
	})
	if len(occupancy) > 0 {
		st.AvgPointsPerLeaf = stat.Mean(occupancy, nil)
	}
	return st
}
