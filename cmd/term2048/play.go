package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/platform/console"
	"github.com/vovakirdan/term2048/internal/platform/term"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/storage"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Use time-based seed if not specified
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := t2048.New(cfg.GameOptions(seed))
	logger.Debug("game started", "seed", seed, "size", game.Options().Size)

	var journal *storage.Journal
	if flagJournal != "" {
		var store *storage.Store
		store, journal = openJournal(game)
		if store != nil {
			defer store.Close()
		}
	}

	presenter := term.NewPresenter(os.Stdout, cfg.Display.Color)

	if flagTUI {
		err = tui.Run(game, presenter, cfg.Keys, logger, os.Stdout)
	} else {
		err = console.Run(game, console.Config{
			In:        os.Stdin,
			Out:       os.Stdout,
			Keys:      cfg.Keys,
			Presenter: presenter,
			Clearer:   term.NewClearer(cfg.Display.Clear, os.Stdout),
			Logger:    logger,
			Hint:      true,
		})
	}
	if err != nil {
		return err
	}

	reportJournal(journal)
	return nil
}

// openJournal attaches a journal to game. Failures are logged and the game
// continues unrecorded.
func openJournal(game *t2048.Game) (*storage.Store, *storage.Journal) {
	store, err := storage.Open(flagJournal)
	if err != nil {
		logger.Warn("could not open game journal", "path", flagJournal, "err", err)
		return nil, nil
	}

	j, err := store.NewJournal(game.Options(), logger)
	if err != nil {
		logger.Warn("could not start journal entry", "err", err)
		store.Close()
		return nil, nil
	}

	game.Attach(j)
	logger.Debug("journaling game", "id", j.ID(), "path", flagJournal)
	return store, j
}

// reportJournal tells the player where the finished game was recorded.
func reportJournal(j *storage.Journal) {
	if j == nil {
		return
	}
	if j.Broken() {
		logger.Warn("game was only partly journaled and cannot be replayed", "id", j.ID())
		return
	}
	logger.Info("game journaled", "id", j.ID(), "path", flagJournal)
}
