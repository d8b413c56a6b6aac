package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/platform/term"
	"github.com/vovakirdan/term2048/internal/storage"
)

// errReplayDiverged reports a replay that did not reproduce the journaled result.
var errReplayDiverged = errors.New("replay diverged from journal")

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-run a journaled game",
	Long: `Reload a journaled game, replay it from its seed and recorded commands,
print the final board and check it against the stored result.

Examples:
  term2048 replay 3
  term2048 replay 3 --journal ./games.db`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid game id %q", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(journalPath())
	if err != nil {
		return err
	}
	defer store.Close()

	return replayGame(store, id, term.NewPresenter(os.Stdout, cfg.Display.Color))
}

// replayGame re-runs journaled game id and prints its final board.
func replayGame(store *storage.Store, id int64, presenter *term.Presenter) error {
	rec, err := store.LoadGame(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no journaled game with id %d", id)
	}

	game, err := t2048.Replay(rec.Options(), rec.Directions)
	if err != nil {
		return err
	}
	logger.Debug("replayed", "game", id, "commands", len(rec.Directions), "status", game.Status())

	screen := core.NewScreen(t2048.ScreenSize(rec.BoardSize))
	game.Render(screen)

	fmt.Printf("Game %d - seed %d, %d moves\n\n", rec.ID, rec.Seed, game.Moves())
	fmt.Println(presenter.Render(screen))
	fmt.Println()

	// Unfinished sessions have nothing stored to compare against
	if rec.Outcome == "" {
		fmt.Println("Game was not finished.")
		return nil
	}

	snap := game.Snapshot()
	if snap.Status != rec.Status || snap.MaxTile != rec.MaxTile || snap.Moves != rec.Moves {
		return fmt.Errorf("%w: game %d: got %s/%d/%d, journal has %s/%d/%d", errReplayDiverged, id,
			snap.Status, snap.MaxTile, snap.Moves, rec.Status, rec.MaxTile, rec.Moves)
	}

	fmt.Println(game.Outcome())
	return nil
}
