package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "pacman.yaml"

// LoadPacman loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/pacman.yaml -> ./configs/pacman.yaml -> embedded default.
// Files found on the search path that fail to parse are skipped. A custom
// path that cannot be read or parsed is an error.
func LoadPacman(customPath string) (PacmanConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PacmanConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parsePacman(data)
		if err != nil {
			return PacmanConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parsePacman(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parsePacman(defaultPacmanYAML)
	if err != nil {
		return DefaultPacmanConfig(), nil
	}
	return cfg, nil
}

// parsePacman decodes data over the hardcoded defaults, so a partial file
// only overrides the keys it names.
func parsePacman(data []byte) (PacmanConfig, error) {
	cfg := DefaultPacmanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PacmanConfig{}, err
	}
	cfg.normalize()
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// normalize repairs values the game cannot run with.
func (c *PacmanConfig) normalize() {
	m := &c.Movement
	m.MinMoveEveryTicks = max(1, m.MinMoveEveryTicks)
	m.PacmanMoveEveryTicks = max(m.MinMoveEveryTicks, m.PacmanMoveEveryTicks)
	m.GhostMoveEveryTicks = max(m.MinMoveEveryTicks, m.GhostMoveEveryTicks)
	if m.BoostMoveEveryTicks <= 0 || m.BoostMoveEveryTicks > m.PacmanMoveEveryTicks {
		m.BoostMoveEveryTicks = m.PacmanMoveEveryTicks
	}
	c.Ghosts.AIEveryTicks = max(1, c.Ghosts.AIEveryTicks)
	c.Ghosts.AvoidPenalty = max(0, c.Ghosts.AvoidPenalty)
	c.Ghosts.MaxExpansions = max(0, c.Ghosts.MaxExpansions)
	c.Player.Lives = max(1, c.Player.Lives)
}

// ApplyPacmanPreset modifies the config based on a difficulty preset.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Ghosts.Cooperative = false
		cfg.Ghosts.ChaseRadius = max(1, cfg.Ghosts.ChaseRadius-2)
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Ghosts.Cooperative = true
		cfg.Ghosts.AccumulatedCost = true
		cfg.Ghosts.ChaseRadius += 2
	}
}
