package term

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/config"
)

// ansiClear moves the cursor home and erases the display.
const ansiClear = "\x1b[H\x1b[2J"

// Clearer clears the screen before a render.
type Clearer interface {
	Clear() error
}

// NewClearer returns the clearer for mode writing to w.
// ClearAuto uses ANSI on a terminal (the host command on Windows consoles)
// and does nothing when w is not a terminal.
func NewClearer(mode config.ClearMode, w io.Writer) Clearer {
	switch mode {
	case config.ClearANSI:
		return ANSIClearer{W: w}
	case config.ClearCommand:
		return CommandClearer{W: w}
	case config.ClearNone:
		return NopClearer{}
	}

	if !IsTerminal(w) {
		return NopClearer{}
	}
	if runtime.GOOS == "windows" {
		return CommandClearer{W: w}
	}
	return ANSIClearer{W: w}
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ANSIClearer writes an ANSI clear sequence.
type ANSIClearer struct {
	W io.Writer
}

// Clear implements Clearer.
func (c ANSIClearer) Clear() error {
	if _, err := io.WriteString(c.W, ansiClear); err != nil {
		return fmt.Errorf("term: clear: %w", err)
	}
	return nil
}

// CommandClearer runs the host's clear command: cls on Windows, clear elsewhere.
type CommandClearer struct {
	W io.Writer
}

// Clear implements Clearer.
func (c CommandClearer) Clear() error {
	cmd := clearCommand()
	cmd.Stdout = c.W
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("term: clear: %w", err)
	}
	return nil
}

func clearCommand() *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.Command("cmd", "/C", "cls")
	}
	return exec.Command("clear")
}

// NopClearer does nothing.
type NopClearer struct{}

// Clear implements Clearer.
func (NopClearer) Clear() error {
	return nil
}
