package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rainstorm/internal/core"
	"github.com/vovakirdan/rainstorm/internal/games/rainstorm"
	"github.com/vovakirdan/rainstorm/internal/platform/tui"
	"github.com/vovakirdan/rainstorm/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: rainstorm).

Controls:
  Arrows/WASD          - Move
  Shift+Arrows/Caps    - Sprint
  Space/F              - Fire (hold for continuous fire)
  E                    - Reload
  P                    - Pause
  R                    - Restart (after death)
  Q/Esc                - Exit (after death)
  Ctrl+S               - Save a text screenshot
  Ctrl+C               - Quit at any time

Examples:
  rainstorm play
  rainstorm play rainstorm --seed 42
  rainstorm play --config ./my-rainstorm.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "rainstorm"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'rainstorm list' to see available games)", gameID)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// One row below the game is kept for the help line.
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  max(height-1, 1),
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	sound, closeSound := newSound(gameCfg.Audio, logger)
	defer closeSound()

	rainstorm.SetConfigPath(expandHome(flagConfig))
	rainstorm.SetLogger(logger)
	rainstorm.SetSound(sound)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, cfg, tui.Options{
		HoldWindow: gameCfg.Input.HoldWindow,
		Logger:     logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
