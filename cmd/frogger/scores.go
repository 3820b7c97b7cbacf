package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the scoreboard",
	Long: `Display the best scores recorded in the scores database.

The default database lives in memory and is empty at startup, so pass
--db with a file path to keep scores between runs.

Examples:
  frogger --db ~/.frogger/scores.db scores
  frogger --db ~/.frogger/scores.db scores --plain --limit 5`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to print with --plain")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a static table instead of the interactive view")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if storage.IsMemory(flagDBPath) {
		fmt.Fprintln(os.Stderr, "Note: scores are kept in memory; use --db <file> to persist them.")
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if flagScoresPlain || !interactive {
		return printScores(store)
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}
	return tui.RunScoreboard(store, frogger.ID, "Frogger", width, height)
}

func printScores(store *storage.Store) error {
	scores, err := store.TopScores(frogger.ID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Frogger")
	fmt.Println()
	fmt.Println(tui.RenderScoreTable(scores, flagScoresLimit))

	if len(scores) == 0 {
		return nil
	}

	stats, err := store.GetGameStats(frogger.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Games: %d  Wins: %d  Best: %d  Average: %.0f\n",
		stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore)
	return nil
}
