package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stonesnake/internal/config"
	"github.com/vovakirdan/stonesnake/internal/core"
	"github.com/vovakirdan/stonesnake/internal/games/snake"
)

// Model is the Bubble Tea model driving one snake round.
type Model struct {
	round  *snake.Round
	cfg    config.SnakeConfig
	screen *core.Screen
	keys   *KeyMapper
	help   help.Model
	styles Styles
	logger *log.Logger

	inputFrame core.InputFrame
	paused     bool
	holding    bool // board frozen after a reset
	holdReason snake.ResetReason
	quitting   bool
}

// NewModel creates a model for round sized to a width x height terminal.
func NewModel(round *snake.Round, cfg config.SnakeConfig, width, height int, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	h := help.New()
	h.Width = width

	return Model{
		round:      round,
		cfg:        cfg,
		screen:     core.NewScreen(width, max(height-1, 1)),
		keys:       NewKeyMapper(),
		help:       h,
		styles:     NewStyles(cfg.Palette),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records steering and quit requests for the next tick.
// Pause toggles immediately since it never reaches the round.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case action == core.ActionNone:
		return m, nil
	case action == core.ActionPause:
		m.paused = !m.paused
		m.logger.Debug("pause toggled", "paused", m.paused)
		return m, nil
	case m.paused && !isQuit:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize resizes the screen buffer; the round keeps its grid.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the round by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	interval := m.cfg.TickInterval()

	if m.paused && !m.inputFrame.Has(core.ActionQuit) {
		return m, tickCmd(interval)
	}
	m.holding = false

	result := m.round.Tick(m.inputFrame)
	m.inputFrame.Clear()

	switch result.State {
	case snake.StateQuit:
		m.quitting = true
		return m, tea.Quit
	case snake.StateResetting:
		m.holding = true
		m.holdReason = result.Reason
		return m, tickCmd(m.cfg.ResetPause())
	}

	return m, tickCmd(interval)
}

// saveScreenshot writes the current board as plain text under
// ~/.stonesnake/screenshots.
func (m *Model) saveScreenshot() {
	snake.Render(m.screen, m.round.Snapshot())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".stonesnake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	filename := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the board, any overlay and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snake.Render(m.screen, m.round.Snapshot())
	switch {
	case m.holding:
		snake.DrawOverlay(m.screen, snake.ResetMessage(m.holdReason), "Get ready...")
	case m.paused:
		snake.DrawOverlay(m.screen, "Paused", "Press P to continue")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen, m.styles),
		m.help.View(m.keys.Keys()),
	)
}

// Paused reports whether the frontend is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program for round in the alternate screen.
func Run(round *snake.Round, cfg config.SnakeConfig, width, height int, logger *log.Logger) error {
	model := NewModel(round, cfg, width, height, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
