package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spider-run/internal/registry"
	"github.com/vovakirdan/spider-run/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the best runs",
	Long: `Display the best runs for a variant (default "runner").

Examples:
  spiderrun scores
  spiderrun scores runner_classic --limit 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	id, err := variantArg(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(id)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.TopRuns(id, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best runs - %s\n\n", game.Title())

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'spiderrun play %s' to set the first score!\n", id)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-5s  %-5s  %s\n", "Rank", "Score", "Time", "Coins", "Lives", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-5s  %-5s  %s\n", "----", "-----", "----", "-----", "-----", "----")
	for i, r := range runs {
		secs := r.Frames / max(flagFPS, 1)
		fmt.Printf("  %-4d  %-8d  %-7s  %-5d  %-5d  %s\n",
			i+1, r.Score, fmt.Sprintf("%d:%02d", secs/60, secs%60), r.Coins, r.MaxLives,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(id)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.0f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	return nil
}
