package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/circular-pong/internal/audio"
	"github.com/vovakirdan/circular-pong/internal/config"
	"github.com/vovakirdan/circular-pong/internal/core"
	"github.com/vovakirdan/circular-pong/internal/games/circular"
	"github.com/vovakirdan/circular-pong/internal/platform/tui"
	"github.com/vovakirdan/circular-pong/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without an argument this is Circular Pong.

Controls:
  Left/A/H    - Rotate paddle left
  Right/D/L   - Rotate paddle right
  P           - Pause
  R           - Restart (after game over)
  Ctrl+S      - Save a text screenshot to ~/.cpong/screenshots
  ?           - Show all keys
  Q/Esc       - Quit

Examples:
  cpong play
  cpong play circular --fps 30
  cpong play --config ./my-arena.yaml --log-file cpong.log --debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := circular.GameID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'cpong list' to see available games)", gameID)
	}

	arena, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := newGame(gameID, map[string]registry.Factory{
		circular.GameID: circular.Factory(arena, logger),
	})
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	sink := audio.New(flagMute, logger)
	defer sink.Close()

	logger.Info("starting", "game", gameID, "fps", flagFPS, "seed", flagSeed, "arena_radius", arena.Arena.Radius)

	err = tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Sink:   sink,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// newGame creates gameID from its configured factory when one is given, and
// from the registry default otherwise.
func newGame(gameID string, configured map[string]registry.Factory) (registry.Game, error) {
	if f, ok := configured[gameID]; ok {
		return f(), nil
	}
	return registry.Create(gameID)
}
