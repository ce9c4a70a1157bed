package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagScoresMode  string
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a mode, with the level reached.
With --all every run is listed, best first.

Examples:
  pacman scores
  pacman scores --mode endless
  pacman scores --all
  pacman scores --clear --mode endless`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "campaign", "Game mode: campaign or endless")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded run instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the mode")
}

func runScores(cmd *cobra.Command, _ []string) error {
	gameID, err := gameIDForMode(flagScoresMode)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "mode", flagScoresMode)
		return nil
	}
	return printScores(cmd.OutOrStdout(), store, gameID, flagScoresAll)
}

func printScores(w io.Writer, store *storage.Store, gameID string, all bool) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	var scores []storage.ScoreEntry
	if all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n", game.Title())
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %s\n", "Rank", "Score", "Level", "Result", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %s\n", "----", "-----", "-----", "------", "----")
	for i, entry := range scores {
		result := ""
		if entry.Won {
			result = "won"
		}
		fmt.Fprintf(w, "  %-4d  %-8d  %-5d  %-6s  %s\n",
			i+1, entry.Score, entry.Level, result, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Games: %d  Wins: %d  Best level: %d  Average: %.0f\n",
		stats.HighScore, stats.GamesCount, stats.Wins, stats.BestLevel, stats.AvgScore)
	return nil
}
