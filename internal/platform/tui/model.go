// Package tui provides the Bubble Tea front end: the game screen and the
// journal history browser.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/platform/term"
)

// Model is the Bubble Tea model for a game session.
type Model struct {
	game      *t2048.Game
	screen    *core.Screen
	presenter *term.Presenter
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	width     int
	height    int
	err       error // Engine failure that ended the program
}

// NewModel creates a model playing game.
func NewModel(game *t2048.Game, presenter *term.Presenter, keys config.KeysConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:      game,
		screen:    core.NewScreen(t2048.ScreenSize(game.Options().Size)),
		presenter: presenter,
		keys:      NewKeyMap(keys),
		help:      help.New(),
		logger:    logger,
	}
}

// Init initializes the model. The game is turn based, so nothing is scheduled.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Finished games wait for any key before exiting
	if m.game.Over() {
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	dir := m.keys.Direction(msg)
	if dir == t2048.DirNone {
		return m, nil
	}

	changed, err := m.game.Move(dir)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.logger.Debug("move", "dir", dir, "changed", changed, "moves", m.game.Moves())

	if dir == t2048.DirQuit {
		return m, tea.Quit
	}
	return m, nil
}

// Err returns the error that stopped the session, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	m.game.Render(m.screen)
	return m.renderView()
}

// Run plays game in an alternate screen. When the program exits the final
// board and the outcome are written to out.
func Run(game *t2048.Game, presenter *term.Presenter, keys config.KeysConfig, logger *log.Logger, out io.Writer) error {
	model := NewModel(game, presenter, keys, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := finalModel.(Model); ok && m.Err() != nil {
		return m.Err()
	}

	// Interrupted programs leave the session open
	if !game.Over() {
		if _, err := game.Move(t2048.DirQuit); err != nil {
			return err
		}
	}

	game.Render(model.screen)
	if _, err := fmt.Fprintf(out, "%s\n%s\n", presenter.Render(model.screen), game.Outcome()); err != nil {
		return fmt.Errorf("tui: write: %w", err)
	}
	return nil
}
