package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rainstorm/internal/audio"
	"github.com/vovakirdan/rainstorm/internal/config"
	"github.com/vovakirdan/rainstorm/internal/logging"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func newLogger() (*log.Logger, func() error, error) {
	return logging.New(expandHome(flagLogFile), flagLogLevel)
}

func loadConfig() (config.RainstormConfig, error) {
	return config.LoadRainstorm(expandHome(flagConfig))
}

// newSound opens the speaker unless sound is muted or disabled. Failure to
// open the device is not fatal: the game runs silently.
func newSound(cfg config.AudioConfig, logger *log.Logger) (audio.Sink, func()) {
	if flagMute || !cfg.Enabled {
		return audio.Nop{}, func() {}
	}

	sm := audio.NewSoundManager(cfg.Volume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, running silent", "error", err)
		return audio.Nop{}, func() {}
	}
	return sm, sm.Close
}
