package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [theme]",
	Short: "Show high scores",
	Long: `Display the top 10 runs on a board. A board is a theme played in one
variant. Without a theme, a summary of every board is shown.

Examples:
  runner scores
  runner scores classic
  runner scores ascii --variant slow
  runner scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every run on the board")
}

func runScores(_ *cobra.Command, args []string) error {
	variant, err := config.ParseVariant(flagVariant)
	if err != nil {
		return err
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 && flagTheme == "" {
		return printSummary(store)
	}

	id, err := themeID(args)
	if err != nil {
		return err
	}
	board := storage.BoardID(id, string(variant))

	if flagClearScores {
		if err := store.ClearScores(board); err != nil {
			return err
		}
		fmt.Printf("Cleared %s\n", board)
		return nil
	}

	scores, err := store.TopScores(board, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", board)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'runner play %s' to set the first high score!\n", id)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %05d   %s\n", i+1, entry.Player, entry.Score, dateStr)
	}

	stats, err := store.Stats(board)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f\n", stats.RunsCount, stats.BestScore, stats.AvgScore)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	boards := make([]string, 0, len(all))
	for id := range all {
		boards = append(boards, id)
	}
	sort.Strings(boards)

	fmt.Printf("  %-16s  %5s  %6s  %s\n", "Board", "Runs", "Best", "Last played")
	fmt.Printf("  %-16s  %5s  %6s  %s\n", "-----", "----", "----", "-----------")
	for _, id := range boards {
		s := all[id]
		fmt.Printf("  %-16s  %5d  %06d  %s\n", id, s.RunsCount, s.BestScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
