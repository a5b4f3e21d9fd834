package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	// The shipped YAML and the hardcoded defaults must agree, or the
	// config subcommand would print values the game does not use.
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
}

func TestValidateRejectsBrokenConfigs(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(*Config)
	}{
		{"zero window width", func(c *Config) { c.Window.Width = 0 }},
		{"negative window height", func(c *Config) { c.Window.Height = -10 }},
		{"zero paddle width", func(c *Config) { c.Paddle.Width = 0 }},
		{"paddle wider than field", func(c *Config) { c.Paddle.Width = 800 }},
		{"zero paddle speed", func(c *Config) { c.Paddle.Speed = 0 }},
		{"zero bottom margin", func(c *Config) { c.Paddle.MarginBottom = 0 }},
		{"zero ball size", func(c *Config) { c.Ball.Size = 0 }},
		{"zero launch speed", func(c *Config) { c.Ball.LaunchVY = 0 }},
		{"inverted speed band", func(c *Config) { c.Ball.MinSpeedX = 300; c.Ball.MaxSpeedX = 100 }},
		{"zero block rows", func(c *Config) { c.Blocks.Rows = 0 }},
		{"zero block cols", func(c *Config) { c.Blocks.Cols = 0 }},
		{"negative gap", func(c *Config) { c.Blocks.Gap = -1 }},
		{"negative points", func(c *Config) { c.Blocks.Points = -5 }},
		{"blocks reach the paddle", func(c *Config) { c.Blocks.Rows = 40 }},
		{"spawn chance over 100", func(c *Config) { c.PowerUps.SpawnChance = 150 }},
		{"negative spawn chance", func(c *Config) { c.PowerUps.SpawnChance = -1 }},
		{"zero lives", func(c *Config) { c.Gameplay.Lives = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.corrupt(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, expected an error")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name    string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePreset(%q) = nil error, expected failure", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePreset(%q) returned error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %v, expected %v", tt.name, got, tt.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives != 5 || easy.Paddle.Width != 130 || easy.Ball.LaunchVY != -200 {
		t.Errorf("easy preset = lives %d, paddle %v, launch %v",
			easy.Gameplay.Lives, easy.Paddle.Width, easy.Ball.LaunchVY)
	}
	if err := easy.Validate(); err != nil {
		t.Errorf("easy preset fails validation: %v", err)
	}

	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Gameplay.Lives != 2 || hard.Paddle.Width != 70 || hard.Ball.LaunchVY != -320 {
		t.Errorf("hard preset = lives %d, paddle %v, launch %v",
			hard.Gameplay.Lives, hard.Paddle.Width, hard.Ball.LaunchVY)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset fails validation: %v", err)
	}

	normal := Default()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != Default() {
		t.Error("normal preset should leave the config untouched")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) returned error: %v", path, err)
	}
	if cfg != Default() {
		t.Errorf("Load(%q) = %+v, expected defaults", path, cfg)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() = nil error for a missing explicit path, expected failure")
	}
}

func TestLoadMalformedCustomPathFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("window: [not, a, mapping"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() = nil error for malformed YAML, expected failure")
	}
}
