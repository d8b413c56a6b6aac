package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/platform/term"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	flagHistoryLimit  int
	flagHistoryTUI    bool
	flagHistoryDelete int64
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled games",
	Long: `Display recently journaled games, newest first.

With --tui the games are shown in a browsable table; pressing Enter
replays the selected game. --delete removes one game from the journal.

Examples:
  term2048 history
  term2048 history --limit 5
  term2048 history --tui
  term2048 history --delete 3`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of games to list")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse games in a table and replay one")
	historyCmd.Flags().Int64Var(&flagHistoryDelete, "delete", 0, "Delete the journaled game with this ID")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(journalPath())
	if err != nil {
		return err
	}
	defer store.Close()

	if flagHistoryDelete != 0 {
		return deleteGame(store, flagHistoryDelete, os.Stdout)
	}
	if flagHistoryTUI {
		return browseHistory(store)
	}

	games, err := store.RecentGames(flagHistoryLimit)
	if err != nil {
		return err
	}

	fmt.Println("Journaled games")
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games journaled yet.")
		fmt.Println()
		fmt.Println("Play 'term2048 --journal <path>' to record one!")
		return nil
	}

	// Print header
	fmt.Printf("  %-5s  %-20s  %-6s  %-6s  %-7s  %s\n", "ID", "Seed", "Moves", "Max", "Result", "Date")
	fmt.Printf("  %-5s  %-20s  %-6s  %-6s  %-7s  %s\n", "--", "----", "-----", "---", "------", "----")

	for _, g := range games {
		dateStr := g.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-5d  %-20d  %-6d  %-6d  %-7s  %s\n", g.ID, g.Seed, g.Moves, g.MaxTile, tui.HistoryResult(g), dateStr)
	}
	return nil
}

func browseHistory(store *storage.Store) error {
	id, err := tui.RunHistory(store)
	if err != nil || id == 0 {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return replayGame(store, id, term.NewPresenter(os.Stdout, cfg.Display.Color))
}

// deleteGame removes game id from the journal.
func deleteGame(store *storage.Store, id int64, out io.Writer) error {
	if err := store.DeleteGame(id); err != nil {
		return err
	}
	logger.Debug("deleted journaled game", "id", id)
	_, err := fmt.Fprintf(out, "Deleted game %d.\n", id)
	return err
}
