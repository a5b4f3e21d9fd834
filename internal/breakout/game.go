package breakout

import (
	"fmt"
	"math"

	"github.com/chamale-rac/breakout/internal/config"
	"github.com/chamale-rac/breakout/internal/core"
)

// Game is the Breakout simulation: one paddle, one ball, a destructible
// block grid, falling power-ups, and the phase machine tying them
// together. It implements core.Game and is pure logic: no terminal, no
// timers, no I/O. Each Step consumes one input frame and a dt in seconds.
type Game struct {
	cfg *config.Config

	paddle   *Paddle
	ball     *Ball
	arena    *BlockArena
	powerups *PowerUpManager

	phase   core.Phase
	score   int
	lives   int
	frames  uint64
	elapsed float64 // Seconds of simulated play time, frozen outside Playing

	// Current vertical ball speed magnitude. Starts at |launch_vy| and is
	// rescaled by slow/fast effects; bounces only ever flip its sign.
	speedY float64

	runtime core.RuntimeConfig
}

// New builds a game from a validated config. The block arena is
// allocated here, once; every later restart re-seeds it in place.
func New(cfg *config.Config) (*Game, error) {
	arena, err := NewBlockArena(
		cfg.Blocks.Rows, cfg.Blocks.Cols,
		cfg.Window.Width, cfg.Blocks.Top, cfg.Blocks.Height, cfg.Blocks.Gap,
	)
	if err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}

	pu := DefaultPowerUpConfig()
	pu.SpawnChance = cfg.PowerUps.SpawnChance

	g := &Game{
		cfg:      cfg,
		paddle:   &Paddle{},
		ball:     &Ball{},
		arena:    arena,
		powerups: NewPowerUpManager(1, pu),
	}
	g.restart()
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.cfg.Window.Title
}

// Reset starts a fresh session with the given runtime config.
// The seed is remembered so an in-game restart replays the same session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.powerups.Reseed(cfg.Seed)
	g.restart()
}

// restart puts every entity back to its starting state without
// allocating: the arena re-seeds in place and the ball goes back to
// riding the paddle. The RNG keeps whatever stream Reset gave it.
func (g *Game) restart() {
	cfg := g.cfg

	g.phase = core.PhasePlaying
	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.frames = 0
	g.elapsed = 0

	g.arena.Seed()
	g.powerups.Clear()

	g.paddle.Speed = cfg.Paddle.Speed
	g.paddle.Velocity = core.Vec2{}
	g.paddle.Bounds = core.NewRectF(
		(cfg.Window.Width-cfg.Paddle.Width)/2,
		cfg.Window.Height-cfg.Paddle.MarginBottom,
		cfg.Paddle.Width,
		cfg.Paddle.Height,
	)

	g.speedY = math.Abs(cfg.Ball.LaunchVY)
	g.ball.Bounds.W = cfg.Ball.Size
	g.ball.Bounds.H = cfg.Ball.Size
	g.ball.Ride(g.paddle)
}

// Step advances the simulation by dt seconds.
//
// Phase handling comes first: restart and pause are edge-triggered and
// resolve before any physics. Only the Playing phase simulates; the
// frame counter and play clock freeze in every other phase.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionRestart) &&
		(g.phase == core.PhaseGameOver || g.phase == core.PhaseVictory) {
		g.restart()
		return g.result()
	}

	if in.Has(core.ActionPause) {
		switch g.phase {
		case core.PhasePlaying:
			g.phase = core.PhasePaused
		case core.PhasePaused:
			g.phase = core.PhasePlaying
		}
	}

	if g.phase != core.PhasePlaying {
		return g.result()
	}

	if dt < 0 {
		dt = 0
	}
	g.frames++
	g.elapsed += dt

	w, h := g.cfg.Window.Width, g.cfg.Window.Height

	g.paddle.Steer(in.Direction())
	g.paddle.Update(dt, w, h)

	// Pre-launch: the ball tracks the paddle until Launch. No pickups or
	// effects can exist in this state, so the frame ends here.
	if g.ball.Ready {
		g.ball.Ride(g.paddle)
		if in.Has(core.ActionLaunch) {
			g.ball.Launch(core.Vec2{X: g.cfg.Ball.LaunchVX, Y: -g.speedY})
		}
		return g.result()
	}

	g.ball.Update(dt, w, h)
	if !g.ball.Active {
		g.loseLife()
		return g.result()
	}

	g.ball.BouncePaddle(g.paddle, g.cfg.Ball.MinSpeedX, g.cfg.Ball.MaxSpeedX)

	g.powerups.Update(dt, h)
	if caught := g.powerups.Catch(g.paddle); caught >= 0 {
		g.applyPickup(caught)
	}
	for _, expired := range g.powerups.Expire(g.elapsed) {
		g.revertEffect(expired)
	}

	g.scanBlocks()
	if g.arena.ActiveCount() == 0 {
		g.phase = core.PhaseVictory
	}

	return g.result()
}

// scanBlocks tests the ball against every standing block. Each hit
// deactivates the block, flips the vertical velocity, scores, and rolls
// the pickup spawn chance at the block's center.
func (g *Game) scanBlocks() {
	for i := 0; i < g.arena.Len(); i++ {
		blk := g.arena.At(i)
		if !blk.Active || !core.Overlaps(g.ball.Bounds, blk.Bounds) {
			continue
		}
		blk.Active = false
		g.ball.Velocity.Y = -g.ball.Velocity.Y
		g.score += g.cfg.Blocks.Points
		g.powerups.TrySpawnPickup(blk.Bounds.CenterX(), blk.Bounds.CenterY())
	}
}

// loseLife handles the ball leaving the field. On the last life the game
// ends; otherwise everything transient is wiped and the ball re-racks on
// the paddle for the next serve.
func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.phase = core.PhaseGameOver
		return
	}

	g.powerups.Clear()
	g.applyPaddleWidth()
	g.applyBallSpeed()
	g.ball.Ride(g.paddle)
}

// applyPickup activates a caught pickup. Opposed effects displace each
// other; catching the same kind again extends its timer.
func (g *Game) applyPickup(t PickupType) {
	pc := g.powerups.Config
	switch t {
	case PickupWiden:
		g.powerups.RemoveEffect(EffectShrink)
		g.powerups.AddEffect(EffectWiden, g.elapsed, pc.DurationWiden)
		g.applyPaddleWidth()
	case PickupShrink:
		g.powerups.RemoveEffect(EffectWiden)
		g.powerups.AddEffect(EffectShrink, g.elapsed, pc.DurationShrink)
		g.applyPaddleWidth()
	case PickupSlowBall:
		g.powerups.RemoveEffect(EffectFastBall)
		g.powerups.AddEffect(EffectSlowBall, g.elapsed, pc.DurationSlowBall)
		g.applyBallSpeed()
	case PickupFastBall:
		g.powerups.RemoveEffect(EffectSlowBall)
		g.powerups.AddEffect(EffectFastBall, g.elapsed, pc.DurationFastBall)
		g.applyBallSpeed()
	case PickupExtraLife:
		g.lives++
	}
}

// revertEffect re-derives the affected attribute after an effect expires.
func (g *Game) revertEffect(t EffectType) {
	switch t {
	case EffectWiden, EffectShrink:
		g.applyPaddleWidth()
	case EffectSlowBall, EffectFastBall:
		g.applyBallSpeed()
	}
}

// applyPaddleWidth recomputes the paddle width from the configured base
// and whichever width effect is active, then resizes around the center.
func (g *Game) applyPaddleWidth() {
	pc := g.powerups.Config
	w := g.cfg.Paddle.Width
	switch {
	case g.powerups.HasEffect(EffectWiden):
		w *= pc.WidenFactor
	case g.powerups.HasEffect(EffectShrink):
		w *= pc.ShrinkFactor
	}
	w = core.ClampF(w, pc.MinPaddleWidth, pc.MaxPaddleWidth)
	g.paddle.Resize(w, g.cfg.Window.Width, g.cfg.Window.Height)
}

// applyBallSpeed recomputes the vertical speed magnitude from the
// configured base and whichever speed effect is active, rescaling an
// in-flight ball without touching its direction or horizontal speed.
func (g *Game) applyBallSpeed() {
	pc := g.powerups.Config
	speed := math.Abs(g.cfg.Ball.LaunchVY)
	switch {
	case g.powerups.HasEffect(EffectFastBall):
		speed *= pc.FastFactor
	case g.powerups.HasEffect(EffectSlowBall):
		speed *= pc.SlowFactor
	}
	g.speedY = core.ClampF(speed, pc.MinSpeedY, pc.MaxSpeedY)

	if g.ball.Active && !g.ball.Ready {
		switch {
		case g.ball.Velocity.Y < 0:
			g.ball.Velocity.Y = -g.speedY
		case g.ball.Velocity.Y > 0:
			g.ball.Velocity.Y = g.speedY
		}
	}
}

// Scene returns the drawable state as tagged sprites in field units.
func (g *Game) Scene() core.Scene {
	sprites := make([]core.Sprite, 0, g.arena.Len()+len(g.powerups.Pickups)+2)

	for i := 0; i < g.arena.Len(); i++ {
		blk := g.arena.At(i)
		if !blk.Active {
			continue
		}
		sprites = append(sprites, core.Sprite{Kind: core.SpriteBlock, Bounds: blk.Bounds})
	}

	for _, p := range g.powerups.Pickups {
		if !p.Active {
			continue
		}
		sprites = append(sprites, core.Sprite{
			Kind:   core.SpritePowerUp,
			Bounds: p.Bounds,
			Glyph:  p.Type.Glyph(),
		})
	}

	sprites = append(sprites, core.Sprite{Kind: core.SpritePaddle, Bounds: g.paddle.Bounds})
	if g.ball.Active {
		sprites = append(sprites, core.Sprite{Kind: core.SpriteBall, Bounds: g.ball.Bounds})
	}

	return core.Scene{
		FieldW:  g.cfg.Window.Width,
		FieldH:  g.cfg.Window.Height,
		Sprites: sprites,
	}
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.phase,
		Score: g.score,
		Lives: g.lives,
		Frame: g.frames,
		Ready: g.ball.Ready,
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State()}
}
