package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/chamale-rac/breakout/internal/core"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one game session. Key events
// accumulate into an input frame, each tick feeds that frame plus the
// measured elapsed seconds into the simulation, and the view projects
// the resulting scene onto the terminal.
type Model struct {
	game   core.Game
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	input    core.InputFrame
	state    core.GameState
	lastTick time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
		input:  core.NewInputFrame(),
	}
}

// Seed returns the seed the session actually runs with, after the
// time-based fallback for an unset seed.
func (m Model) Seed() int64 {
	return m.config.Seed
}

// gameRows returns the screen rows available to the game frame, keeping
// one terminal row for the help bar.
func gameRows(screenH int) int {
	return core.Max(screenH-1, 1)
}

// Init initializes the simulation and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: state will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keyboard input into the pending input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}

	return m, nil
}

// handleResize adapts the frame to the new terminal size. The
// simulation runs in its own field units, so a resize only changes the
// projection; the game itself keeps playing untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick advances the simulation by the measured frame time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	if dt > maxFrameSeconds {
		dt = maxFrameSeconds
	}
	if dt < 0 {
		dt = 0
	}
	m.lastTick = now

	prevPhase := m.state.Phase
	result := m.game.Step(m.input, dt)
	m.state = result.State
	m.logPhaseChange(prevPhase, m.state)

	// Clear input for next frame
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logPhaseChange reports session-level transitions once, on the frame
// they happen.
func (m Model) logPhaseChange(from core.Phase, state core.GameState) {
	if m.logger == nil || from == state.Phase {
		return
	}

	switch state.Phase {
	case core.PhaseGameOver:
		m.logger.Info("game over", "score", state.Score, "frames", state.Frame)
	case core.PhaseVictory:
		m.logger.Info("victory", "score", state.Score, "frames", state.Frame)
	case core.PhasePlaying:
		if from == core.PhaseGameOver || from == core.PhaseVictory {
			m.logger.Info("restarted")
		}
	}
}

// View renders the current frame plus the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	RenderFrame(m.screen, m.game.Scene(), m.state)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for one game session and blocks
// until the player quits.
func Run(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	if logger != nil {
		logger.Info("session started",
			"game", game.ID(),
			"fps", model.config.TickRate,
			"seed", model.Seed(),
		)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()

	if logger != nil {
		logger.Info("session ended", "game", game.ID())
	}
	return err
}
