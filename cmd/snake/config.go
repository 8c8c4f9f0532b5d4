package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-snake/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a game would start with, after the config
file search and flag overrides. Use --default for the built-in file.

Search order:
  --config path, ~/.snake/config.yaml, ./configs/snake.yaml, built-in`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in default file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaultConfig {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
