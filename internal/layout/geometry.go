// internal/layout/geometry.go
package layout

import (
	"math"

	"github.com/xkilldash9x/mockup-cli/api/schemas"
)

// Axis is a flex axis.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Rect is a rectangle in the coordinate space of whatever owns it.
type Rect struct {
	X, Y, Width, Height float64
}

// Size returns the extent along axis.
func (r Rect) Size(axis Axis) float64 {
	if axis == Horizontal {
		return r.Width
	}
	return r.Height
}

// SetSize sets the extent along axis.
func (r *Rect) SetSize(axis Axis, v float64) {
	if axis == Horizontal {
		r.Width = v
	} else {
		r.Height = v
	}
}

// Start returns the leading coordinate along axis.
func (r Rect) Start(axis Axis) float64 {
	if axis == Horizontal {
		return r.X
	}
	return r.Y
}

// SetStart sets the leading coordinate along axis.
func (r *Rect) SetStart(axis Axis, v float64) {
	if axis == Horizontal {
		r.X = v
	} else {
		r.Y = v
	}
}

// Edges holds resolved pixel widths for padding, border or margin.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// Start returns the leading edge along axis (left or top).
func (e Edges) Start(axis Axis) float64 {
	if axis == Horizontal {
		return e.Left
	}
	return e.Top
}

// End returns the trailing edge along axis (right or bottom).
func (e Edges) End(axis Axis) float64 {
	if axis == Horizontal {
		return e.Right
	}
	return e.Bottom
}

// Sum returns both edges along axis.
func (e Edges) Sum(axis Axis) float64 {
	return e.Start(axis) + e.End(axis)
}

// Add returns the per-side sum of e and o.
func (e Edges) Add(o Edges) Edges {
	return Edges{Top: e.Top + o.Top, Right: e.Right + o.Right, Bottom: e.Bottom + o.Bottom, Left: e.Left + o.Left}
}

func uniform(v float64) Edges { return Edges{Top: v, Right: v, Bottom: v, Left: v} }

// epsilon absorbs float noise when comparing sizes.
const epsilon = 0.001

// indefinite marks a size that is not known yet.
var indefinite = math.NaN()

func definite(v float64) bool { return !math.IsNaN(v) }

// clamp applies max before min so a min larger than max wins.
func clamp(v, lo, hi float64) float64 {
	if definite(hi) && v > hi {
		v = hi
	}
	if definite(lo) && v < lo {
		v = lo
	}
	return max(v, 0)
}

func toBounds(r Rect) schemas.Bounds {
	return schemas.Bounds{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}
