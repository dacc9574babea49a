// cpong is Circular Pong: keep the ball out of the protected half of a round
// arena by rotating a paddle along its rim.
//
// Usage:
//
//	cpong                 - Play (same as cpong play)
//	cpong play [game]     - Play a game (default: circular)
//	cpong config          - Print the effective arena configuration
//	cpong list            - List available games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom arena config YAML
//	--mute              - Disable sound
//	--log-file <path>   - Write logs to a file while playing
//	--debug             - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagMute    bool
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cpong",
	Short: "Circular Pong - defend half of a round arena",
	Long: `Circular Pong is a terminal arcade game. A ball bounces around a
circular arena; rotate your paddle along the upper rim and keep the ball
out of the protected half for as long as you can.

Examples:
  cpong
  cpong --seed 42 --mute
  cpong config > my-arena.yaml
  cpong --config ./my-arena.yaml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// newLogger builds the session logger. The TUI owns the terminal, so logs
// go to the log file when one is given and are discarded otherwise.
// The returned func releases the file.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	cleanup := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		w = f
		cleanup = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "cpong",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, cleanup, nil
}
