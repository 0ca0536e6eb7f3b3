package chartgeom

import "gonum.org/v1/gonum/floats"

// DataPoint is a single datum in data space. It is an immutable value:
// the index stores only positions and indices derived from it, never a
// mutable reference.
type DataPoint struct {
	X, Y float64

	// Label is an optional caller-supplied tag (series name, category,
	// tooltip text). Empty means absent.
	Label string
}

// DataBounds returns the min/max extent of the given points on both
// axes. ok is false for an empty slice, in which case all bounds are 0.
func DataBounds(points []DataPoint) (xmin, xmax, ymin, ymax float64, ok bool) {
	if len(points) == 0 {
		return 0, 0, 0, 0, false
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return floats.Min(xs), floats.Max(xs), floats.Min(ys), floats.Max(ys), true
}

// FitCoordinateSystem builds a CoordinateSystem whose data domain is
// the tight bounding range of points, mapped onto chartArea. This is
// the constructor an axis/layout layer uses when the domain should
// follow the data. With no points the domain defaults to the unit
// square; a single point (or colinear points) produces a legal
// zero-range axis that maps to the screen midpoint.
func FitCoordinateSystem(chartArea Rect, points []DataPoint, devicePixelRatio float64) CoordinateSystem {
	xmin, xmax, ymin, ymax, ok := DataBounds(points)
	if !ok {
		xmin, xmax, ymin, ymax = 0, 1, 0, 1
	}
	return NewCoordinateSystem(chartArea, xmin, xmax, ymin, ymax).
		WithDevicePixelRatio(devicePixelRatio)
}
