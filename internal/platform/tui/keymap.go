package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/games/t2048"
)

// KeyMap defines the key bindings for a game screen.
// Arrow keys always move; the configured keys are bound alongside them.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Quit  key.Binding
	Help  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Quit, k.Help},
	}
}

// NewKeyMap builds bindings from the configured keys.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", keys.Left),
			key.WithHelp("←/"+keys.Left, "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", keys.Right),
			key.WithHelp("→/"+keys.Right, "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", keys.Up),
			key.WithHelp("↑/"+keys.Up, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", keys.Down),
			key.WithHelp("↓/"+keys.Down, "down"),
		),
		Quit: key.NewBinding(
			key.WithKeys(keys.Quit, "ctrl+c"),
			key.WithHelp(keys.Quit, "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
}

// Direction translates a key message to a game command.
// Keys with no binding map to DirNone.
func (k KeyMap) Direction(msg tea.KeyMsg) t2048.Direction {
	switch {
	case key.Matches(msg, k.Quit):
		return t2048.DirQuit
	case key.Matches(msg, k.Left):
		return t2048.DirLeft
	case key.Matches(msg, k.Right):
		return t2048.DirRight
	case key.Matches(msg, k.Up):
		return t2048.DirUp
	case key.Matches(msg, k.Down):
		return t2048.DirDown
	}
	return t2048.DirNone
}
