package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/circular-pong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective arena configuration",
	Long: `Prints the arena configuration as YAML, after applying the search order:
--config, ~/.cpong/configs/circular.yaml, ./configs/circular.yaml, built-in defaults.

The output is a valid config file and can be edited and passed back with --config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
