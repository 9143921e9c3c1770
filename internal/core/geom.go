// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a point in the normalized playfield, where both axes span [-1, 1]
// and +Y points up.
type Vec2 struct {
	X, Y float64
}

// Box is an axis-aligned box described by its center and half extents.
type Box struct {
	Center Vec2
	HalfW  float64
	HalfH  float64
}

// NewBox creates a square box of the given half size around center.
func NewBox(center Vec2, half float64) Box {
	return Box{Center: center, HalfW: half, HalfH: half}
}

// Overlaps reports whether two boxes overlap.
// Each axis is tested independently and touching edges do not count.
func (b Box) Overlaps(other Box) bool {
	dx := math.Abs(b.Center.X - other.Center.X)
	dy := math.Abs(b.Center.Y - other.Center.Y)
	return dx < b.HalfW+other.HalfW && dy < b.HalfH+other.HalfH
}

// Rect represents an axis-aligned rectangle of screen cells.
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
