// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec2 is a 2D vector with float64 components.
// Pure value type used for positions and velocities in field units.
type Vec2 struct {
	X, Y float64
}

// RectF is an axis-aligned bounding box in field units.
// X, Y is the top-left corner; W and H are non-negative.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a new rectangle with the given position and dimensions.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r RectF) Left() float64 {
	return r.X
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r RectF) Top() float64 {
	return r.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the x-coordinate of the rectangle's center.
func (r RectF) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the y-coordinate of the rectangle's center.
func (r RectF) CenterY() float64 {
	return r.Y + r.H/2
}

// Center returns the center point of the rectangle.
func (r RectF) Center() Vec2 {
	return Vec2{X: r.CenterX(), Y: r.CenterY()}
}

// Rect is an axis-aligned rectangle in screen cells, used by the
// presentation layer for text, boxes, and HUD elements.
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
