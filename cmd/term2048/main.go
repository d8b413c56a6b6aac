// term2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	term2048                 - Play in the console (one command per line)
//	term2048 --tui           - Play with arrow keys in a full-screen view
//	term2048 replay <id>     - Re-run a journaled game and verify its result
//	term2048 history         - List journaled games
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--config <path>   - Set config YAML path
//	--journal <path>  - Record games to a SQLite journal
//	--no-color        - Disable tile colours
//	--debug           - Log debug messages to stderr
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
)

// defaultJournalPath is read by replay and history when --journal is unset.
const defaultJournalPath = "~/.term2048/journal.db"

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagJournal string
	flagNoColor bool
	flagDebug   bool
	flagTUI     bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "term2048",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("term2048 failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "term2048",
	Short: "2048 in your terminal",
	Long: `term2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board with a, d, w and s (one per line, then Enter) and quit with q.
Equal tiles merge when they collide. Reach 2048 to win; the game is lost when
no move can change the board.

Examples:
  term2048
  term2048 --seed 42
  term2048 --tui
  term2048 --journal ~/.term2048/journal.db
  term2048 replay 3 --journal ~/.term2048/journal.db`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
	RunE: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagJournal, "journal", "", "Path to SQLite game journal (empty = no journal while playing)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable tile colours")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	rootCmd.Flags().BoolVar(&flagTUI, "tui", false, "Play in a full-screen view with arrow keys")

	// Add subcommands
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig loads the configuration and applies --no-color.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagNoColor {
		cfg.Display.Color = false
	}
	logger.Debug("config loaded", "path", flagConfig, "spawn4", cfg.Spawn.FourProbability, "clear", cfg.Display.Clear)
	return cfg, nil
}

// journalPath returns --journal or the default journal location.
func journalPath() string {
	if flagJournal != "" {
		return flagJournal
	}
	return defaultJournalPath
}
