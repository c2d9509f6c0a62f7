package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/birdshot/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it as ~/.birdshot/birdshot.yaml or ./configs/birdshot.yaml and edit
the values you want to change; missing keys keep their defaults.

Example:
  birdshot config > ~/.birdshot/birdshot.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
