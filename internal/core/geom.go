// Package core provides the fundamental types shared by the snake game and
// the platforms that host it. It has no external dependencies so the game
// logic stays pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Square creates a size×size rectangle with its top-left corner at (x, y).
func Square(x, y, size int) Rect {
	return Rect{X: x, Y: y, W: size, H: size}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Intersect returns the overlapping area of two rectangles.
// The result is the zero Rect when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}
	x0, y0 := max(r.X, other.X), max(r.Y, other.Y)
	x1, y1 := min(r.Right(), other.Right()), min(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Transform maps logical drawing units to device units:
// device = origin + logical*scale, per axis.
type Transform struct {
	X, Y   float64 // Device-space origin
	SX, SY float64 // Device units per logical unit
}

// Identity is the transform that leaves coordinates unchanged.
var Identity = Transform{SX: 1, SY: 1}

// snapEpsilon absorbs float rounding that would otherwise floor an exact
// device edge down by one unit.
const snapEpsilon = 1e-9

// Apply maps a logical rectangle into device space. Both edges are floored,
// so rectangles that share an edge in logical space share it on the device.
func (t Transform) Apply(r Rect) Rect {
	x0 := snap(t.X + float64(r.X)*t.SX)
	y0 := snap(t.Y + float64(r.Y)*t.SY)
	x1 := snap(t.X + float64(r.Right())*t.SX)
	y1 := snap(t.Y + float64(r.Bottom())*t.SY)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func snap(v float64) int {
	return int(math.Floor(v + snapEpsilon))
}

// Viewport is the device region a render request targets, together with
// the scale from logical units to device units.
type Viewport struct {
	Rect   Rect
	ScaleX float64
	ScaleY float64
}

// NewViewport returns an unscaled viewport of the given device size.
func NewViewport(w, h int) Viewport {
	return Viewport{Rect: NewRect(0, 0, w, h), ScaleX: 1, ScaleY: 1}
}

// FitViewport returns a viewport that maps a logicalW×logicalH area onto a
// deviceW×deviceH region.
func FitViewport(logicalW, logicalH, deviceW, deviceH int) Viewport {
	return Viewport{
		Rect:   NewRect(0, 0, deviceW, deviceH),
		ScaleX: float64(deviceW) / float64(logicalW),
		ScaleY: float64(deviceH) / float64(logicalH),
	}
}

// Transform returns the logical-to-device transform for this viewport.
func (v Viewport) Transform() Transform {
	return Transform{
		X:  float64(v.Rect.X),
		Y:  float64(v.Rect.Y),
		SX: v.ScaleX,
		SY: v.ScaleY,
	}
}
