// Package chartgeom implements the geometric query core of a chart
// widget: a coordinate system mapping data space onto screen space, and
// a quadtree spatial index answering "which data point is near this
// screen location".
//
// The coordinate system handles the data-to-screen projection with
// device-pixel snapping and stays finite through degenerate geometry
// (zero-range axes, zero-size chart areas). The spatial index projects
// every data point once, stores the screen positions in a point
// quadtree, and answers nearest, axis-nearest, k-nearest, radius,
// rectangle, and near-line queries with branch-and-bound pruning.
//
// Basic usage:
//
//	area := chartgeom.NewRect(0, 0, 400, 300)
//	cs := chartgeom.NewCoordinateSystem(area, 0, 100, 0, 100)
//	idx := chartgeom.NewSpatialIndex(points, &cs, chartgeom.DefaultIndexConfig())
//
//	if m, ok := idx.FindNearest(cursor); ok {
//		// m.Point is the hit data point, m.Distance the screen distance
//	}
//	hits := idx.FindInRadius(cursor, 20)
//
// When the data changes, rebuild in bulk:
//
//	idx.Rebuild(newPoints)
//
// The index is synchronous and not safe for concurrent use; callers
// that share one across goroutines add their own locking.
package chartgeom
