package core

import "math"

// Side identifies which side of a rectangle a collision happened on.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideNone:
		return "None"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Overlaps reports whether two rectangles overlap.
// Touching edges count as overlap, so a ball resting exactly on the
// paddle's top edge still registers a hit.
func Overlaps(a, b RectF) bool {
	if a.Left() > b.Right() || b.Left() > a.Right() {
		return false
	}
	if a.Top() > b.Bottom() || b.Top() > a.Bottom() {
		return false
	}
	return true
}

// ResolveSide determines which side of b was struck by an overlapping a.
// The axis with the smaller penetration depth is the collision axis; on
// that axis the side follows the sign of the center-to-center difference.
// Equal penetration depths resolve to the vertical axis, since Breakout
// contact is overwhelmingly top or bottom.
// Returns the struck side of b and the outward collision normal.
func ResolveSide(a, b RectF) (Side, Vec2) {
	overlapX := math.Min(a.Right(), b.Right()) - math.Max(a.Left(), b.Left())
	overlapY := math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Top(), b.Top())
	if overlapX < 0 || overlapY < 0 {
		return SideNone, Vec2{}
	}

	if overlapY <= overlapX {
		if a.CenterY() <= b.CenterY() {
			return SideTop, Vec2{X: 0, Y: -1}
		}
		return SideBottom, Vec2{X: 0, Y: 1}
	}
	if a.CenterX() <= b.CenterX() {
		return SideLeft, Vec2{X: -1, Y: 0}
	}
	return SideRight, Vec2{X: 1, Y: 0}
}

// ClampToBounds translates r so it lies fully within [0,w] x [0,h].
// The rectangle is never resized; each axis is corrected independently
// by pulling the violated edge back inside.
func ClampToBounds(r RectF, w, h float64) RectF {
	r.X = ClampF(r.X, 0, w-r.W)
	r.Y = ClampF(r.Y, 0, h-r.H)
	return r
}
