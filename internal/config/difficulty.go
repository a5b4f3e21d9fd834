package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a difficulty name from the CLI.
// An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (expected easy, normal, or hard)", name)
	}
}

// ApplyPreset adjusts a loaded config for a difficulty preset, trading
// lives, paddle width, and launch speed against each other. Normal
// leaves the config exactly as loaded.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 130
		cfg.Ball.LaunchVY = -200
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 70
		cfg.Ball.LaunchVY = -320
	}
}
