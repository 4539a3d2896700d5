package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded results for a board size",
	Long: `Display the best recorded results for the configured board size.

Examples:
  t2048 scores
  t2048 scores --size 5x5
  t2048 scores --limit 25
  t2048 scores --size 3x3 --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results for the board size")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Open results storage
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("error opening results database: %w", err)
	}
	defer store.Close()

	h, w := cfg.Board.Height, cfg.Board.Width
	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearResults(h, w); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared results for %dx%d.\n", h, w)
		return nil
	}

	return printScores(out, store, h, w, flagLimit)
}

// printScores writes the results table and summary for one board size.
func printScores(out io.Writer, store *storage.Store, h, w, limit int) error {
	results, err := store.TopResults(h, w, limit)
	if err != nil {
		return fmt.Errorf("error retrieving results: %w", err)
	}

	// Display results
	fmt.Fprintf(out, "Results - %dx%d\n", h, w)
	fmt.Fprintln(out)

	if len(results) == 0 {
		fmt.Fprintln(out, "No results recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 't2048 play --size %dx%d' to set the first one!\n", h, w)
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "Rank", "Score", "Max", "Moves", "Won", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "----", "-----", "---", "-----", "---", "----")

	// Print results
	for i, r := range results {
		won := "no"
		if r.Won {
			won = "yes"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %-6d  %-3s  %s\n", i+1, r.Score, r.MaxTile, r.Moves, won, dateStr)
	}

	// Show summary
	stats, err := store.Stats(h, w)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Best tile: %d  Games: %d  Wins: %d  Average: %.0f\n",
			stats.BestScore, stats.BestTile, stats.Sessions, stats.Wins, stats.AvgScore)
	}
	return nil
}
