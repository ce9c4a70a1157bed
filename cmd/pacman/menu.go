package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick mode, level and difficulty interactively",
	Long: `Start with the selector. Choose campaign, endless or a starting
level, and cycle the difficulty preset with left/right.
Press B while paused or after a game to return to the selector.

Controls:
  Up/Down/j/k  - Navigate
  Left/Right   - Change difficulty
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  pacman menu
  pacman menu --fps 30
  pacman menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselected difficulty preset")
}

func runMenu(_ *cobra.Command, _ []string) error {
	base, preset, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	if preset == "" {
		preset = config.DifficultyNormal
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	lastGameID := ""
	for {
		res, err := tui.RunSelector(cfg, preset)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil
		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, lastGameID)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		sel := res.Selection
		preset = sel.Difficulty
		game, err := sel.NewGame(base)
		if err != nil {
			return err
		}
		lastGameID = game.ID()

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		back, err := tui.RunWithBack(game, store, cfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
