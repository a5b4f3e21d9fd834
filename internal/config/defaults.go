package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file. The
// config subcommand prints it so players have a complete file to copy
// into ~/.breakout/config.yaml and edit.
func DefaultYAML() []byte {
	return defaultYAML
}
