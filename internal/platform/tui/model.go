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
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/circular-pong/internal/audio"
	"github.com/vovakirdan/circular-pong/internal/core"
	"github.com/vovakirdan/circular-pong/internal/registry"
)

const (
	holdWindow   = 150 * time.Millisecond // How long one key press keeps a direction active
	statusWindow = 2 * time.Second        // How long a status line stays in the footer
)

// Options configures a game run.
type Options struct {
	Runtime       core.RuntimeConfig
	Sink          audio.Sink  // nil plays nothing
	Logger        *log.Logger // nil discards
	ScreenshotDir string      // empty means ~/.cpong/screenshots
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	sink       audio.Sink
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState

	held      map[core.Action]int // Remaining frames per held direction
	holdTicks int

	shotDir     string
	status      string
	statusTicks int

	width, height int
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game and starts it.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	sink := opts.Sink
	if sink == nil {
		sink = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		sink:       sink,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		held:       make(map[core.Action]int),
		holdTicks:  holdTicks(cfg.TickRate, holdWindow),
		shotDir:    opts.ScreenshotDir,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft:
		m.held[core.ActionLeft] = m.holdTicks
		delete(m.held, core.ActionRight)
	case core.ActionRight:
		m.held[core.ActionRight] = m.holdTicks
		delete(m.held, core.ActionLeft)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionPause:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for a, n := range m.held {
		m.inputFrame.Set(a)
		if n <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = n - 1
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, e := range result.Events {
		m.sink.Play(e.Kind)
	}

	m.inputFrame.Clear()

	if m.statusTicks > 0 {
		m.statusTicks--
		if m.statusTicks == 0 {
			m.status = ""
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	path, err := m.writeScreenshot()
	if err != nil {
		m.logger.Error("screenshot failed", "err", err)
		m.setStatus("screenshot failed")
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("saved " + path)
}

func (m *Model) writeScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, ".cpong", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTicks = holdTicks(m.config.TickRate, statusWindow)
}

// footer renders the help line, or the status line while one is shown.
func (m Model) footer() string {
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	return footerStyle.Render(m.help.View(m.keys))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.footer()
	m.screen.Resize(m.width, m.height-lipgloss.Height(footer))
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
