package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var (
	flagMode       string
	flagLevel      int
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Pac-Man",
	Long: `Start playing directly, skipping the selector.

Controls:
  Arrows/WASD/HJKL - Move (turns are buffered until the way is open)
  1                - Speed boost (costs 1 mana)
  2                - Transform; press again while active to cycle form
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Eat a ghost by touching it in the same form (red, green, blue).
Mega pellets give mana.

Difficulty options:
  easy   - More lives, ghosts do not coordinate
  normal - Start at 30% difficulty, progresses to max
  hard   - Fewer lives, optimal ghost paths, wider chase radius
  fixed  - No progression, stays at config's initial level

Examples:
  pacman play
  pacman play --level 3
  pacman play --mode endless --difficulty hard
  pacman play --config ./my-pacman.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", string(pacman.ModeCampaign), "Game mode: campaign or endless")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to start from (1-based, 0 = first)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// gameIDForMode maps a --mode value to its registry id.
func gameIDForMode(mode string) (string, error) {
	switch pacman.Mode(mode) {
	case pacman.ModeCampaign:
		return pacman.GameID, nil
	case pacman.ModeEndless:
		return pacman.EndlessGameID, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want campaign or endless)", mode)
	}
}

// newConfiguredGame creates the game through the registry after
// installing the loaded config.
func newConfiguredGame(gameID string, cfg config.PacmanConfig, preset config.DifficultyPreset, level int) (registry.Game, error) {
	if preset != "" {
		config.ApplyPacmanPreset(&cfg, preset)
	}
	pacman.Configure(cfg)

	game, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}
	if level > 0 {
		sel, ok := game.(registry.LevelSelector)
		if !ok {
			return nil, fmt.Errorf("%s does not support --level", gameID)
		}
		if err := sel.SelectLevel(level); err != nil {
			return nil, err
		}
	}
	return game, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameID, err := gameIDForMode(flagMode)
	if err != nil {
		return err
	}

	cfg, preset, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	game, err := newConfiguredGame(gameID, cfg, preset, flagLevel)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
