package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/chamale-rac/breakout/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Prints the embedded default configuration file.

Save it as a starting point and edit:
  breakout config > ~/.breakout/config.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = os.Stdout.Write(config.DefaultYAML())
	},
}
