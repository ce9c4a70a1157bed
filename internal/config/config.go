// Package config provides YAML-based configuration loading and difficulty
// management for the Pac-Man game.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned by ParsePreset for names outside the preset list.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// PacmanConfig contains all tunables of the game.
type PacmanConfig struct {
	Player     PacmanPlayer     `yaml:"player"`
	Movement   PacmanMovement   `yaml:"movement"`
	Ghosts     PacmanGhosts     `yaml:"ghosts"`
	Scoring    PacmanScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PacmanPlayer defines the player's starting resources.
type PacmanPlayer struct {
	Lives     int `yaml:"lives"`
	StartMana int `yaml:"start_mana"`
}

// PacmanMovement defines move cadences in simulation ticks per cell.
// Levels add their own offsets on top.
type PacmanMovement struct {
	PacmanMoveEveryTicks int `yaml:"pacman_move_every_ticks"`
	BoostMoveEveryTicks  int `yaml:"boost_move_every_ticks"`
	GhostMoveEveryTicks  int `yaml:"ghost_move_every_ticks"`
	MinMoveEveryTicks    int `yaml:"min_move_every_ticks"`
}

// PacmanGhosts tunes the ghost AI pass.
type PacmanGhosts struct {
	AIEveryTicks    int  `yaml:"ai_every_ticks"`
	ChaseRadius     int  `yaml:"chase_radius"`  // Manhattan cells
	WanderRadius    int  `yaml:"wander_radius"` // random targets lie farther than this
	Cooperative     bool `yaml:"cooperative"`   // spread pursuers with the avoid penalty
	AvoidPenalty    int  `yaml:"avoid_penalty"`
	AccumulatedCost bool `yaml:"accumulated_cost"`
	MaxExpansions   int  `yaml:"max_expansions"` // 0 = unbounded
}

// PacmanScoring defines point values.
type PacmanScoring struct {
	Pellet     int `yaml:"pellet"`
	MegaPellet int `yaml:"mega_pellet"`
	Cherry     int `yaml:"cherry"`
	Ghost      int `yaml:"ghost"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`   // ghost speed gain at max difficulty
	ChaseRadiusBonus int     `yaml:"chase_radius_bonus"` // extra chase cells at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. Matching is case-insensitive.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want easy, normal, hard or fixed)", ErrUnknownPreset, name)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
