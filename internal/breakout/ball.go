package breakout

import (
	"math"

	"github.com/chamale-rac/breakout/internal/core"
)

// Ball is the single ball in play.
// Active=false marks a ball that left the bottom of the field; the state
// machine reads that as the life-loss signal. Ready=true marks the
// pre-launch state where the ball rides on top of the paddle.
type Ball struct {
	Bounds   core.RectF
	Velocity core.Vec2
	Active   bool
	Ready    bool
}

// Update advances the ball by velocity*dt and resolves wall contact.
// No-op while the ball is inactive or riding the paddle. Side and top
// walls reflect the velocity away from the wall and clamp the ball
// exactly onto the boundary so it cannot stick outside the field.
// Crossing the bottom edge deactivates the ball instead of bouncing.
func (b *Ball) Update(dt, fieldW, fieldH float64) {
	if !b.Active || b.Ready {
		return
	}

	b.Bounds.X += b.Velocity.X * dt
	b.Bounds.Y += b.Velocity.Y * dt

	// Side walls
	if b.Bounds.Left() <= 0 {
		b.Bounds.X = 0
		b.Velocity.X = math.Abs(b.Velocity.X)
	} else if b.Bounds.Right() >= fieldW {
		b.Bounds.X = fieldW - b.Bounds.W
		b.Velocity.X = -math.Abs(b.Velocity.X)
	}

	// Top wall
	if b.Bounds.Top() <= 0 {
		b.Bounds.Y = 0
		b.Velocity.Y = math.Abs(b.Velocity.Y)
	}

	// Bottom edge: out of play
	if b.Bounds.Top() >= fieldH {
		b.Active = false
	}
}

// BouncePaddle applies the paddle rebound when the ball overlaps the
// paddle while moving downward. The vertical velocity turns upward and
// the horizontal velocity is steered by where on the paddle the ball
// landed: a dead-center hit adds nothing, edge hits push outward.
// |Velocity.X| ends inside [minSpeedX, maxSpeedX] after every rebound.
// Responding only to a downward-moving ball keeps the response to one
// per contact: the bounce itself ends the qualifying condition.
// Returns true if a rebound was applied.
func (b *Ball) BouncePaddle(p *Paddle, minSpeedX, maxSpeedX float64) bool {
	if !b.Active || b.Ready {
		return false
	}
	if b.Velocity.Y <= 0 {
		return false
	}
	if !core.Overlaps(b.Bounds, p.Bounds) {
		return false
	}

	b.Velocity.Y = -math.Abs(b.Velocity.Y)

	offset := (b.Bounds.CenterX() - p.Bounds.CenterX()) / (p.Bounds.W / 2)
	b.Velocity.X += offset * p.Speed * 0.5
	b.Velocity.X = clampSpeedX(b.Velocity.X, offset, minSpeedX, maxSpeedX)

	// Reseat on top of the paddle so the next frame starts outside it
	b.Bounds.Y = p.Bounds.Top() - b.Bounds.H

	return true
}

// clampSpeedX bounds the horizontal speed magnitude, keeping the current
// direction. A dead horizontal velocity takes its direction from the hit
// offset so the floor always has a sign to apply.
func clampSpeedX(vx, offset, min, max float64) float64 {
	dir := 1.0
	switch {
	case vx < 0:
		dir = -1
	case vx == 0 && offset < 0:
		dir = -1
	}
	return dir * core.ClampF(math.Abs(vx), min, max)
}

// Ride seats the ball on top of the paddle, centered, with no velocity.
// Called every frame while the ball is ready so it tracks the paddle.
func (b *Ball) Ride(p *Paddle) {
	b.Bounds.X = p.Bounds.CenterX() - b.Bounds.W/2
	b.Bounds.Y = p.Bounds.Top() - b.Bounds.H
	b.Velocity = core.Vec2{}
	b.Active = true
	b.Ready = true
}

// Launch releases a ready ball with the given velocity. The vertical
// component is forced upward regardless of the configured sign.
func (b *Ball) Launch(v core.Vec2) {
	if !b.Ready {
		return
	}
	b.Velocity = core.Vec2{X: v.X, Y: -math.Abs(v.Y)}
	b.Ready = false
}

// Reset places the ball at (x, y) in play with the given velocity.
func (b *Ball) Reset(x, y float64, v core.Vec2) {
	b.Bounds.X = x
	b.Bounds.Y = y
	b.Velocity = v
	b.Active = true
	b.Ready = false
}
