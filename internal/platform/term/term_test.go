package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
)

func sampleScreen() *core.Screen {
	s := core.NewScreen(10, 2)
	s.FillSpan(0, 0, 5, ' ', core.ColorTile2)
	s.DrawText(2, 0, "2", core.ColorTile2)
	s.FillSpan(5, 0, 5, ' ', core.ColorTile2048)
	s.DrawText(5, 0, "2048", core.ColorTile2048)
	return s
}

func TestPresenterPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf, false)
	s := sampleScreen()

	if p.Color() {
		t.Error("presenter created without colour reports Color() = true")
	}
	if got, want := p.Render(s), s.String(); got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestPresenterNonTerminalIsPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf, true)

	if got := p.Render(sampleScreen()); strings.Contains(got, "\x1b[") {
		t.Errorf("non-terminal output should carry no escapes, got %q", got)
	}
}

func TestPresenterTrueColor(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf, true)
	p.SetColorProfile(termenv.TrueColor)

	got := p.Render(sampleScreen())
	for _, want := range []string{
		"48;2;240;230;220", // 2 background
		"38;2;120;110;100", // 2 text
		"48;2;240;195;40",  // 2048 background
		"2048",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render output missing %q: %q", want, got)
		}
	}
}

func TestPaletteCoversEveryTileTone(t *testing.T) {
	for tone := core.ColorTile2; tone <= core.ColorTileOther; tone++ {
		if _, ok := tilePalette[tone]; !ok {
			t.Errorf("no palette entry for tone %d", tone)
		}
	}
}

func TestNewClearer(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		mode config.ClearMode
		want Clearer
	}{
		{config.ClearANSI, ANSIClearer{W: &buf}},
		{config.ClearCommand, CommandClearer{W: &buf}},
		{config.ClearNone, NopClearer{}},
		{config.ClearAuto, NopClearer{}}, // a buffer is not a terminal
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			if got := NewClearer(tt.mode, &buf); got != tt.want {
				t.Errorf("NewClearer(%s) = %#v, want %#v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestANSIClearer(t *testing.T) {
	var buf bytes.Buffer
	if err := (ANSIClearer{W: &buf}).Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := buf.String(); got != "\x1b[H\x1b[2J" {
		t.Errorf("Clear wrote %q", got)
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("bytes.Buffer reported as a terminal")
	}
}
