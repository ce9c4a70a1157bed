// pacman is a terminal Pac-Man whose ghosts hunt with A* pathfinding.
//
// Usage:
//
//	pacman play              - Play the campaign or endless mode
//	pacman menu              - Pick mode, level and difficulty interactively
//	pacman levels            - List the campaign levels
//	pacman scores            - Show high scores
//	pacman serve             - Start SSH server for remote play
//	pacman path              - Run the ghost pathfinder on a level
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/pacman.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "pacman"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man in your terminal, with ghosts that plan their routes",
	Long: `A grid Pac-Man for the terminal. Ghosts chase, patrol and wander
using A* search, and cooperating ghosts spread out over different routes.

Available commands:
  play     - Play directly
  menu     - Interactive mode, level and difficulty selector
  levels   - List campaign levels
  scores   - View high scores
  serve    - Start SSH server for remote play
  path     - Run the ghost pathfinder on a level and print the route

Examples:
  pacman play
  pacman play --mode endless --difficulty hard
  pacman menu
  pacman path --level 1 --from 9,13 --to 1,1`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(pathCmd)
}

// runtimeConfig sizes the game to the current terminal, 80x24 if unknown.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// loadGameConfig loads the YAML config and validates the preset name.
// An empty preset leaves the loaded difficulty untouched.
func loadGameConfig(path, difficulty string) (config.PacmanConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadPacman(path)
	if err != nil {
		return cfg, "", err
	}
	if difficulty == "" {
		return cfg, "", nil
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return cfg, "", err
	}
	return cfg, preset, nil
}
