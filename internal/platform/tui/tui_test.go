package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/platform/term"
	"github.com/vovakirdan/term2048/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func newTestModel(seed int64) (Model, *t2048.Game) {
	opts := t2048.DefaultOptions()
	opts.Seed = seed
	game := t2048.New(opts)
	var buf bytes.Buffer
	return NewModel(game, term.NewPresenter(&buf, false), config.Default().Keys, nil), game
}

func TestKeyMapDirection(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want t2048.Direction
	}{
		{"a", runes("a"), t2048.DirLeft},
		{"d", runes("d"), t2048.DirRight},
		{"w", runes("w"), t2048.DirUp},
		{"s", runes("s"), t2048.DirDown},
		{"q", runes("q"), t2048.DirQuit},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, t2048.DirLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, t2048.DirRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, t2048.DirUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, t2048.DirDown},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, t2048.DirQuit},
		{"unbound", runes("x"), t2048.DirNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Direction(tt.msg); got != tt.want {
				t.Errorf("Direction(%s) = %s, want %s", tt.msg, got, tt.want)
			}
		})
	}
}

func TestKeyMapUsesConfiguredKeys(t *testing.T) {
	keys := config.Default().Keys
	keys.Left = "h"
	km := NewKeyMap(keys)

	if got := km.Direction(runes("h")); got != t2048.DirLeft {
		t.Errorf("Direction(h) = %s, want left", got)
	}
	if got := km.Direction(runes("a")); got != t2048.DirNone {
		t.Errorf("Direction(a) = %s, want none after rebinding", got)
	}
}

func TestModelAppliesMoves(t *testing.T) {
	m, game := newTestModel(42)

	for _, k := range []string{"a", "d", "w", "s"} {
		next, cmd := m.Update(runes(k))
		m = next.(Model)
		if isQuit(cmd) {
			t.Fatalf("move %q should not quit", k)
		}
	}

	if got := len(game.Journal()); got != 4 {
		t.Errorf("journal has %d commands, want 4", got)
	}
}

func TestModelIgnoresUnboundKeys(t *testing.T) {
	m, game := newTestModel(1)

	next, cmd := m.Update(runes("x"))
	if cmd != nil {
		t.Error("unbound key should not produce a command")
	}
	if len(game.Journal()) != 0 {
		t.Error("unbound key should not reach the game")
	}

	next, _ = next.Update(runes("?"))
	if !next.(Model).help.ShowAll {
		t.Error("? should expand the help view")
	}
}

func TestModelQuit(t *testing.T) {
	m, game := newTestModel(9)

	_, cmd := m.Update(runes("q"))
	if !isQuit(cmd) {
		t.Error("quit key should end the program")
	}
	if game.Status() != t2048.StatusQuit {
		t.Errorf("Status = %s, want %s", game.Status(), t2048.StatusQuit)
	}
}

func TestModelWaitsAfterGameOver(t *testing.T) {
	m, game := newTestModel(9)
	if _, err := game.Move(t2048.DirQuit); err != nil {
		t.Fatal(err)
	}

	if view := m.View(); !strings.Contains(view, t2048.AnnounceLose) {
		t.Errorf("finished game view should show the outcome, got %q", view)
	}

	_, cmd := m.Update(runes("x"))
	if !isQuit(cmd) {
		t.Error("any key after the game ends should exit")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(5)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := next.View()
	for _, want := range []string{"moves 0", "seed 5", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestHistoryModelSelect(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)
	games := []storage.GameRecord{
		{ID: 12, Seed: 7, Status: t2048.StatusLost, Outcome: t2048.AnnounceLose, MaxTile: 256, Moves: 140, CreatedAt: now},
		{ID: 11, Seed: 3, Status: t2048.StatusPlaying, CreatedAt: now},
	}
	m := NewHistoryModel(games, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Error("selecting a game should end the browser")
	}
	if got := next.(HistoryModel).Selected(); got != 11 {
		t.Errorf("Selected = %d, want 11", got)
	}
}

func TestHistoryModelQuit(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)

	if view := m.View(); !strings.Contains(view, "No games journaled yet") {
		t.Errorf("empty history view = %q", view)
	}

	next, cmd := m.Update(runes("q"))
	if !isQuit(cmd) {
		t.Error("q should quit the browser")
	}
	if got := next.(HistoryModel).Selected(); got != 0 {
		t.Errorf("Selected = %d after quit, want 0", got)
	}
}

func TestHistoryResult(t *testing.T) {
	if got := HistoryResult(storage.GameRecord{Status: t2048.StatusPlaying}); got != "open" {
		t.Errorf("unfinished game result = %q, want open", got)
	}
	if got := HistoryResult(storage.GameRecord{Status: t2048.StatusWon, Outcome: t2048.AnnounceWin}); got != "won" {
		t.Errorf("won game result = %q, want won", got)
	}
}
