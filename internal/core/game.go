package core

// SpriteKind tags a drawable entity. The presentation layer maps kinds to
// colors and glyphs through lookup tables rather than asking entities how
// to draw themselves.
type SpriteKind int

const (
	SpriteBall SpriteKind = iota
	SpritePaddle
	SpriteBlock
	SpritePowerUp
)

// String returns a human-readable name for the sprite kind.
func (k SpriteKind) String() string {
	switch k {
	case SpriteBall:
		return "ball"
	case SpritePaddle:
		return "paddle"
	case SpriteBlock:
		return "block"
	case SpritePowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// Sprite is one drawable entity: geometry in field units plus a kind tag.
// Glyph optionally overrides the kind's default glyph (power-up pickups
// carry a per-type glyph); zero means "use the kind default".
type Sprite struct {
	Kind   SpriteKind
	Bounds RectF
	Glyph  rune
}

// Scene is everything the presentation layer needs to draw one frame:
// the field dimensions for projection plus the sprites to place on it.
type Scene struct {
	FieldW  float64
	FieldH  float64
	Sprites []Sprite
}

// Game is the core interface the simulation exposes to the platform.
// Games contain pure logic with no external dependencies (especially no
// Bubble Tea). The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "breakout").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state in place.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one tick of dt seconds.
	// Input is abstracted to platform-level actions (Left, Launch, Pause...).
	// Returns the result of this tick including current game state.
	Step(in InputFrame, dt float64) StepResult

	// Scene returns the current drawable state as tagged sprites in
	// field units. The platform projects them to screen cells.
	Scene() Scene

	// State returns the current game state (phase, score, lives).
	State() GameState
}
