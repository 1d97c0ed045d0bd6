package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// Game is what the model needs from a simulation.
type Game interface {
	Reset(cfg core.RuntimeConfig)
	Tick(events []core.Event) (core.StepResult, error)
	Frame() *core.Frame
	Field() (w, h float64)
}

// Options configures the model beyond the runtime config.
type Options struct {
	ReleaseAfter time.Duration // Hold window for synthesized key releases
	Logger       *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	releaser *Releaser
	logger   *log.Logger
	pending  []core.Event // Events queued since the last tick
	state    core.GameState
	err      error
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ReleaseAfter <= 0 {
		opts.ReleaseAfter = 600 * time.Millisecond
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     h,
		releaser: NewReleaser(opts.ReleaseAfter),
		logger:   opts.Logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		if ev, ok := MapMouse(msg); ok {
			m.pending = append(m.pending, ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the event for a key message. Quit goes through the game
// so the loop stops on its own next tick.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	k, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.pending = append(m.pending, core.Quit())
		return m, nil
	}
	if k == core.KeyNone {
		return m, nil
	}
	if ev, ok := m.releaser.Press(k, now); ok {
		m.pending = append(m.pending, ev)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running:
// the play-field is logical, only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1)) // Last line is the help bar
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with everything queued so far.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	events := append(m.pending, m.releaser.Expire(now)...)
	m.pending = nil

	result, err := m.game.Tick(events)
	m.state = result.State
	if err != nil {
		m.logger.Error("tick failed", "err", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if !result.State.Running {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.SetView(m.game.Field())
	m.game.Frame().Replay(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for the given game and blocks until the
// player quits. A simulation error ends the program and is returned.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse press and release steer the ship
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
