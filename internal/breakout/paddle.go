package breakout

import "github.com/chamale-rac/breakout/internal/core"

// Paddle is the player's paddle. Horizontal only: Velocity.Y stays zero
// by construction, Speed is the horizontal speed in field units per
// second.
type Paddle struct {
	Bounds   core.RectF
	Velocity core.Vec2
	Speed    float64
}

// Steer sets the horizontal velocity from a direction in {-1, 0, 1}.
// The velocity is re-derived from held input every frame, never
// accumulated.
func (p *Paddle) Steer(dir float64) {
	p.Velocity.X = dir * p.Speed
}

// Update integrates the paddle position and keeps it inside the field.
func (p *Paddle) Update(dt, fieldW, fieldH float64) {
	p.Bounds.X += p.Velocity.X * dt
	p.Bounds = core.ClampToBounds(p.Bounds, fieldW, fieldH)
}

// Resize changes the paddle width in place, preserving the center.
// Used by the widen and shrink power-ups.
func (p *Paddle) Resize(w, fieldW, fieldH float64) {
	cx := p.Bounds.CenterX()
	p.Bounds.W = w
	p.Bounds.X = cx - w/2
	p.Bounds = core.ClampToBounds(p.Bounds, fieldW, fieldH)
}
