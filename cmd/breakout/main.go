// breakout is a Breakout-style arcade game for the terminal.
//
// Usage:
//
//	breakout            - Play
//	breakout config     - Print the default configuration YAML
//
// Flags:
//
//	--fps <rate>          - Tick rate (default: 60)
//	--seed <value>        - RNG seed for reproducible sessions (0 = time-based)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Preset: easy, normal, hard
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chamale-rac/breakout/internal/breakout"
	"github.com/chamale-rac/breakout/internal/config"
	"github.com/chamale-rac/breakout/internal/core"
	"github.com/chamale-rac/breakout/internal/platform/tui"
)

var (
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout in your terminal",
	Long: `Breakout is a terminal arcade game: steer the paddle, keep the ball
in play, and clear the block wall.

Controls:
  Left/A/H    - Move left
  Right/D/L   - Move right
  Space       - Launch the ball
  P           - Pause / resume
  R           - Restart (after game over or victory)
  Q/Ctrl+C    - Quit

Examples:
  breakout
  breakout --difficulty hard
  breakout --seed 42 --fps 30
  breakout --config ./my-breakout.yaml
  breakout config > ~/.breakout/config.yaml`,
	Run: runGame,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGame(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})

	if flagFPS <= 0 {
		logger.Fatal("configuration", "err", fmt.Errorf("fps must be positive, got %d", flagFPS))
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		logger.Fatal("configuration", "err", err)
	}

	game, err := breakout.New(&gameCfg)
	if err != nil {
		logger.Fatal("setup", "err", err)
	}

	// Terminal size seeds the first frame; resizes arrive as messages later
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, runtime, logger); err != nil {
		logger.Fatal("session", "err", err)
	}
}

// loadGameConfig resolves the game configuration from the flag-selected
// file (or the default search order), applies the difficulty preset, and
// validates the result before any component sees it.
func loadGameConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
