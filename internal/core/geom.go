// Package core provides fundamental types and utilities shared by the game
// and the platform layer. It has no terminal dependencies so game logic stays
// pure and testable.
package core

// Rect is an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is an axis-aligned box in world units.
// Y grows downward, matching the screen.
type RectF struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// StrictlyInside reports whether v lies in the open interval (lo, hi).
func StrictlyInside(v, lo, hi float64) bool {
	return v > lo && v < hi
}

// SpansOverlap reports whether two horizontal spans overlap: either edge of
// one lies strictly inside the other.
func SpansOverlap(aLo, aHi, bLo, bHi float64) bool {
	return StrictlyInside(aLo, bLo, bHi) || StrictlyInside(aHi, bLo, bHi) ||
		StrictlyInside(bLo, aLo, aHi) || StrictlyInside(bHi, aLo, aHi)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
