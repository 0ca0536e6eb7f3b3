package chartgeom

import (
	"fmt"
	"math"
)

// CoordinateSystem is an immutable bidirectional mapping between a
// rectangular data domain and a rectangular screen region.
//
// Data Y grows upward while screen Y grows downward, so the vertical
// transform is inverted. Forward transforms snap to the device pixel
// grid (see DevicePixelRatio); the inverse does not undo snapping, so
// round-trips carry at most one device pixel of error.
//
// A zero data range on either axis is legal: every data value on that
// axis maps to the midpoint of the corresponding screen extent, and no
// transform ever produces NaN or Inf.
//
// CoordinateSystem is a comparable value type: two systems are equal
// (==) iff all scalar fields are equal.
type CoordinateSystem struct {
	// ChartArea is the screen region the data domain maps onto.
	// Its width and height are non-negative (enforced at construction).
	ChartArea Rect

	DataXMin, DataXMax float64
	DataYMin, DataYMax float64

	// DevicePixelRatio is the number of physical device pixels per
	// logical screen unit. Forward transforms round to this grid so
	// rendered points align crisply with physical pixels. At 1.0 the
	// snap lands on whole screen pixels; at 2.0 on half-pixel
	// boundaries. Must be > 0.
	DevicePixelRatio float64
}

// NewCoordinateSystem builds a CoordinateSystem with a device pixel
// ratio of 1.0. Panics if chartArea has negative width or height.
// An inverted data domain (min > max) is legal and simply flips the
// axis direction.
func NewCoordinateSystem(chartArea Rect, dataXMin, dataXMax, dataYMin, dataYMax float64) CoordinateSystem {
	if chartArea.Width() < 0 || chartArea.Height() < 0 {
		panic(fmt.Sprintf("chartgeom: chart area must have non-negative size, got %gx%g",
			chartArea.Width(), chartArea.Height()))
	}
	return CoordinateSystem{
		ChartArea:        chartArea,
		DataXMin:         dataXMin,
		DataXMax:         dataXMax,
		DataYMin:         dataYMin,
		DataYMax:         dataYMax,
		DevicePixelRatio: 1.0,
	}
}

// WithDevicePixelRatio returns a copy of c with the given device pixel
// ratio. Panics if dpr <= 0.
func (c CoordinateSystem) WithDevicePixelRatio(dpr float64) CoordinateSystem {
	if dpr <= 0 {
		panic(fmt.Sprintf("chartgeom: device pixel ratio must be > 0, got %g", dpr))
	}
	c.DevicePixelRatio = dpr
	return c
}

// Equal reports whether c and o are the same mapping. Equivalent to ==.
func (c CoordinateSystem) Equal(o CoordinateSystem) bool { return c == o }

// DataXRange returns DataXMax - DataXMin. May be zero or negative.
func (c CoordinateSystem) DataXRange() float64 { return c.DataXMax - c.DataXMin }

// DataYRange returns DataYMax - DataYMin. May be zero or negative.
func (c CoordinateSystem) DataYRange() float64 { return c.DataYMax - c.DataYMin }

// ChartWidth returns the width of the chart area in screen units.
func (c CoordinateSystem) ChartWidth() float64 { return c.ChartArea.Width() }

// ChartHeight returns the height of the chart area in screen units.
func (c CoordinateSystem) ChartHeight() float64 { return c.ChartArea.Height() }

// ScaleX returns screen units per data unit on the X axis, or the
// fixed fallback 0.0 when the data range is zero (the scale is
// undefined there; 0 is returned rather than NaN or Inf).
func (c CoordinateSystem) ScaleX() float64 {
	r := c.DataXRange()
	if r == 0 {
		return 0
	}
	return c.ChartWidth() / r
}

// ScaleY returns screen units per data unit on the Y axis, with the
// same 0.0 fallback as ScaleX at zero range.
func (c CoordinateSystem) ScaleY() float64 {
	r := c.DataYRange()
	if r == 0 {
		return 0
	}
	return c.ChartHeight() / r
}

// DataXToScreenX maps a data X value to a pixel-snapped screen X.
func (c CoordinateSystem) DataXToScreenX(x float64) float64 {
	var sx float64
	if r := c.DataXRange(); r == 0 {
		sx = c.ChartArea.MinX + c.ChartWidth()/2
	} else {
		// Normalize into [0,1] before scaling so extreme data
		// magnitudes cannot overflow an intermediate product.
		sx = c.ChartArea.MinX + (x-c.DataXMin)/r*c.ChartWidth()
	}
	return c.snap(sx)
}

// DataYToScreenY maps a data Y value to a pixel-snapped screen Y.
// The vertical axis is inverted: larger data Y is higher on screen,
// which is a smaller screen Y.
func (c CoordinateSystem) DataYToScreenY(y float64) float64 {
	var sy float64
	if r := c.DataYRange(); r == 0 {
		sy = c.ChartArea.MinY + c.ChartHeight()/2
	} else {
		sy = c.ChartArea.MinY + c.ChartHeight() - (y-c.DataYMin)/r*c.ChartHeight()
	}
	return c.snap(sy)
}

// ScreenXToDataX maps a screen X back to data space. Snapping is not
// inverted. A zero data range returns DataXMin (the only value on
// that axis); a zero-width chart area returns the midpoint of the
// data domain, since every data value collapses to the same screen X.
func (c CoordinateSystem) ScreenXToDataX(sx float64) float64 {
	r := c.DataXRange()
	if r == 0 {
		return c.DataXMin
	}
	w := c.ChartWidth()
	if w == 0 {
		return c.DataXMin + r/2
	}
	return c.DataXMin + (sx-c.ChartArea.MinX)/w*r
}

// ScreenYToDataY maps a screen Y back to data space, undoing the
// vertical inversion. Degenerate geometry follows the same rules as
// ScreenXToDataX.
func (c CoordinateSystem) ScreenYToDataY(sy float64) float64 {
	r := c.DataYRange()
	if r == 0 {
		return c.DataYMin
	}
	h := c.ChartHeight()
	if h == 0 {
		return c.DataYMin + r/2
	}
	return c.DataYMin + (c.ChartArea.MinY+h-sy)/h*r
}

// DataToScreen projects a data point to its pixel-snapped screen
// position.
func (c CoordinateSystem) DataToScreen(p DataPoint) Point {
	return Point{X: c.DataXToScreenX(p.X), Y: c.DataYToScreenY(p.Y)}
}

// ScreenToData maps a screen position back to data space. The Label of
// the result is empty; screen positions carry no identity.
func (c CoordinateSystem) ScreenToData(pt Point) DataPoint {
	return DataPoint{X: c.ScreenXToDataX(pt.X), Y: c.ScreenYToDataY(pt.Y)}
}

// snap rounds v to the nearest device-pixel grid line.
func (c CoordinateSystem) snap(v float64) float64 {
	return math.Round(v*c.DevicePixelRatio) / c.DevicePixelRatio
}
