// Package config provides YAML-based game configuration loading,
// validation, and difficulty presets.
package config

import "fmt"

// Config contains the full game configuration. It is built once at
// startup, validated, and passed by reference into every component
// that needs it; nothing mutates it after load.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Blocks   BlocksConfig   `yaml:"blocks"`
	PowerUps PowerUpsConfig `yaml:"powerups"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// WindowConfig defines the virtual playfield. All simulation distances
// and speeds are expressed in these field units; the terminal renderer
// scales them to cells.
type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Field units per second
	MarginBottom float64 `yaml:"margin_bottom"` // Distance from field bottom to paddle top
}

// BallConfig defines ball geometry and velocity limits.
type BallConfig struct {
	Size      float64 `yaml:"size"`
	LaunchVX  float64 `yaml:"launch_vx"`
	LaunchVY  float64 `yaml:"launch_vy"`   // Upward sign enforced at launch
	MinSpeedX float64 `yaml:"min_speed_x"` // Floor for |vx| after a paddle rebound
	MaxSpeedX float64 `yaml:"max_speed_x"` // Ceiling for |vx| after a paddle rebound
}

// BlocksConfig defines the destructible grid layout. The grid size is
// fixed for the whole session; restart re-seeds the same slots.
type BlocksConfig struct {
	Rows   int     `yaml:"rows"`
	Cols   int     `yaml:"cols"`
	Top    float64 `yaml:"top"`    // Y of the first block row
	Height float64 `yaml:"height"` // Height of one block
	Gap    float64 `yaml:"gap"`    // Spacing between blocks and field edges
	Points int     `yaml:"points"` // Score per destroyed block
}

// PowerUpsConfig exposes the spawn knob for power-ups; the per-effect
// tuning keeps its defaults in the game package.
type PowerUpsConfig struct {
	SpawnChance int `yaml:"spawn_chance"` // Percent per destroyed block, 0 disables
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// Default returns the default game configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Breakout",
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       20,
			Speed:        500,
			MarginBottom: 40,
		},
		Ball: BallConfig{
			Size:      12,
			LaunchVX:  150,
			LaunchVY:  -250,
			MinSpeedX: 100,
			MaxSpeedX: 300,
		},
		Blocks: BlocksConfig{
			Rows:   5,
			Cols:   10,
			Top:    80,
			Height: 20,
			Gap:    5,
			Points: 100,
		},
		PowerUps: PowerUpsConfig{
			SpawnChance: 15,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
	}
}

// Validate checks the invariants the simulation depends on. Everything
// downstream of a valid config is total: no divisions by zero, no empty
// grids, no paddle wider than the field.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		return fmt.Errorf("paddle size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Paddle.Width >= c.Window.Width {
		return fmt.Errorf("paddle width %v does not fit the field width %v", c.Paddle.Width, c.Window.Width)
	}
	if c.Paddle.Speed <= 0 {
		return fmt.Errorf("paddle speed must be positive, got %v", c.Paddle.Speed)
	}
	if c.Paddle.MarginBottom <= 0 {
		return fmt.Errorf("paddle bottom margin must be positive, got %v", c.Paddle.MarginBottom)
	}
	if c.Ball.Size <= 0 {
		return fmt.Errorf("ball size must be positive, got %v", c.Ball.Size)
	}
	if c.Ball.LaunchVY == 0 {
		return fmt.Errorf("ball launch vertical speed must be nonzero")
	}
	if c.Ball.MinSpeedX <= 0 || c.Ball.MaxSpeedX < c.Ball.MinSpeedX {
		return fmt.Errorf("ball horizontal speed range [%v, %v] is invalid", c.Ball.MinSpeedX, c.Ball.MaxSpeedX)
	}
	if c.Blocks.Rows <= 0 || c.Blocks.Cols <= 0 {
		return fmt.Errorf("block grid must have positive dimensions, got %dx%d", c.Blocks.Rows, c.Blocks.Cols)
	}
	if c.Blocks.Height <= 0 || c.Blocks.Gap < 0 || c.Blocks.Top < 0 {
		return fmt.Errorf("block layout must have positive height and non-negative top/gap")
	}
	if c.Blocks.Points < 0 {
		return fmt.Errorf("block points must be non-negative, got %d", c.Blocks.Points)
	}
	blockBottom := c.Blocks.Top + float64(c.Blocks.Rows)*(c.Blocks.Height+c.Blocks.Gap)
	paddleTop := c.Window.Height - c.Paddle.MarginBottom
	if blockBottom >= paddleTop {
		return fmt.Errorf("block grid bottom %v reaches the paddle row %v", blockBottom, paddleTop)
	}
	if c.PowerUps.SpawnChance < 0 || c.PowerUps.SpawnChance > 100 {
		return fmt.Errorf("power-up spawn chance must be in [0, 100], got %d", c.PowerUps.SpawnChance)
	}
	if c.Gameplay.Lives <= 0 {
		return fmt.Errorf("lives must be positive, got %d", c.Gameplay.Lives)
	}
	return nil
}
