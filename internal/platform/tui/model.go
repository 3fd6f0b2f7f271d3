package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rainstorm/internal/core"
	"github.com/vovakirdan/rainstorm/internal/registry"
)

// footerRows is the space below the game kept for the help line.
const footerRows = 1

// Options tunes how a game is run in the terminal.
type Options struct {
	HoldWindow    time.Duration
	ScreenshotDir string // Defaults to ~/.rainstorm/screenshots
	Logger        *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	held      *heldKeys
	pressed   map[core.Action]bool
	lastTick  time.Time
	gameState core.GameState
	quitting  bool
	opts      Options
	logger    *log.Logger
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenH is the game area; the help line is drawn below it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		held:    newHeldKeys(opts.HoldWindow),
		pressed: make(map[core.Action]bool),
		opts:    opts,
		logger:  logger,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the actions a key stands for until the next tick.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	in := m.keys.Map(msg)
	for _, a := range in.Held {
		m.held.press(a, now)
	}
	for _, a := range in.Pressed {
		m.pressed[a] = true
	}
	return m, nil
}

// handleResize follows the terminal size. Games that cannot resize in
// place are restarted.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w, h := msg.Width, max(msg.Height-footerRows, 1)
	if w == m.config.ScreenW && h == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, h)
	m.help.Width = w

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(w, h)
	} else {
		m.game.Reset(m.config)
		m.held.reset()
	}
	m.logger.Debug("terminal resized", "cols", w, "rows", h)
	return m, nil
}

// handleTick builds this tick's input frame and steps the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := stepSeconds(m.lastTick, now, m.config.TickSeconds())
	m.lastTick = now

	frame := m.frame(now)
	result := m.game.Step(frame, dt)
	if result.State.GameOver && !m.gameState.GameOver {
		m.held.reset() // keys held at death must not carry into a restart
	}
	m.gameState = result.State

	if m.gameState.Quit {
		m.logger.Info("game exited", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// frame drains pending presses and adds every live held action.
func (m Model) frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a := range m.pressed {
		frame.Press(a)
	}
	clear(m.pressed)
	m.held.fill(&frame, now)
	return frame
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".rainstorm", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
