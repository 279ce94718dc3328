package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/digger/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [map]",
	Short: "Show high scores",
	Long: `Display the top 10 finished sessions, optionally for one map.

Examples:
  digger scores
  digger scores map2.tmx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	if flagDBPath == "" {
		return fmt.Errorf("scores: no database configured")
	}
	mapName := ""
	if len(args) == 1 {
		mapName = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("scores: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(mapName, 10)
	if err != nil {
		return fmt.Errorf("scores: %w", err)
	}

	out := cmd.OutOrStdout()
	if mapName == "" {
		fmt.Fprintln(out, "High Scores")
	} else {
		fmt.Fprintf(out, "High Scores - %s\n", mapName)
	}
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-12s  %-5s  %-5s  %-6s  %s\n", "Rank", "Score", "Map", "Gold", "Coal", "Blocks", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-12s  %-5s  %-5s  %-6s  %s\n", "----", "-----", "---", "----", "----", "------", "----")
	for i, r := range scores {
		fmt.Fprintf(out, "  %-4d  %-8d  %-12s  %-5d  %-5d  %-6d  %s\n",
			i+1, r.Score, r.Map, r.GoldCollected, r.CoalCollected, r.BlocksDestroyed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(mapName)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d\n", best)
	}
	return nil
}
