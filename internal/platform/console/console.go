// Package console runs a game as a line-oriented loop: the board is
// redrawn, a line is read, and the line is mapped to a command.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/platform/term"
)

// Config wires a console session to its input, output and presentation.
type Config struct {
	In        io.Reader
	Out       io.Writer
	Keys      config.KeysConfig
	Presenter *term.Presenter
	Clearer   term.Clearer
	Logger    *log.Logger
	Hint      bool // Print the control hint below the board
}

// Run plays game until it is won, lost or quit. End of input counts as quit.
// The final board is drawn followed by the outcome announcement.
func Run(game *t2048.Game, cfg Config) error {
	if cfg.Clearer == nil {
		cfg.Clearer = term.NopClearer{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	screen := core.NewScreen(t2048.ScreenSize(game.Options().Size))
	reader := bufio.NewReader(cfg.In)

	for !game.Over() {
		if err := draw(game, screen, cfg, cfg.Hint); err != nil {
			return err
		}

		raw, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("console: read input: %w", err)
		}
		if err != nil && raw == "" {
			cfg.Logger.Debug("input closed, quitting")
			if _, err := game.Move(t2048.DirQuit); err != nil {
				return err
			}
			break
		}

		line := strings.TrimSpace(raw)
		dir, ok := cfg.Keys.Direction(line)
		if !ok {
			cfg.Logger.Debug("ignoring input", "bytes", len(line))
			continue
		}

		changed, err := game.Move(dir)
		if err != nil {
			return err
		}
		cfg.Logger.Debug("move", "dir", dir, "changed", changed, "moves", game.Moves())
	}

	if err := draw(game, screen, cfg, false); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cfg.Out, game.Outcome()); err != nil {
		return fmt.Errorf("console: write: %w", err)
	}
	return nil
}

func draw(game *t2048.Game, screen *core.Screen, cfg Config, hint bool) error {
	if err := cfg.Clearer.Clear(); err != nil {
		return fmt.Errorf("console: %w", err)
	}

	game.Render(screen)
	out := cfg.Presenter.Render(screen)
	if hint {
		out += "\n\n" + cfg.Keys.Controls()
	}
	if _, err := fmt.Fprintln(cfg.Out, out); err != nil {
		return fmt.Errorf("console: write: %w", err)
	}
	return nil
}
