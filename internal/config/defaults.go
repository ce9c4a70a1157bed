package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the hardcoded configuration used when the
// embedded YAML cannot be parsed.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Player: PacmanPlayer{
			Lives:     3,
			StartMana: 0,
		},
		Movement: PacmanMovement{
			PacmanMoveEveryTicks: 10,
			BoostMoveEveryTicks:  6,
			GhostMoveEveryTicks:  12,
			MinMoveEveryTicks:    3,
		},
		Ghosts: PacmanGhosts{
			AIEveryTicks:    6,
			ChaseRadius:     5,
			WanderRadius:    12,
			Cooperative:     true,
			AvoidPenalty:    4,
			AccumulatedCost: false,
			MaxExpansions:   0,
		},
		Scoring: PacmanScoring{
			Pellet:     10,
			MegaPellet: 50,
			Cherry:     100,
			Ghost:      200,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 8000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				ChaseRadiusBonus: 3,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPacmanYAML
}
