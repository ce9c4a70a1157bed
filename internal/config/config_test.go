package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate points the search path at empty directories.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML PacmanConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &fromYAML))
	assert.Equal(t, DefaultPacmanConfig(), fromYAML)
}

func TestLoadPacmanFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadPacman("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPacmanConfig(), cfg)
}

func TestLoadPacmanCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ghosts:\n  avoid_penalty: 9\n  cooperative: false\n"), 0o644))

	cfg, err := LoadPacman(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Ghosts.AvoidPenalty)
	assert.False(t, cfg.Ghosts.Cooperative)
	// Keys the file does not name keep their defaults.
	assert.Equal(t, 5, cfg.Ghosts.ChaseRadius)
	assert.Equal(t, 10, cfg.Scoring.Pellet)
}

func TestLoadPacmanCustomPathErrors(t *testing.T) {
	isolate(t)

	_, err := LoadPacman(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("ghosts: [oops"), 0o644))
	_, err = LoadPacman(bad)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoadPacmanSearchOrder(t *testing.T) {
	home := isolate(t)

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", FileName), []byte("player:\n  lives: 7\n"), 0o644))

	cfg, err := LoadPacman("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Player.Lives, "local configs directory is used when no user file exists")

	userDir := filepath.Join(home, ".arcade", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, FileName), []byte("player:\n  lives: 4\n"), 0o644))

	cfg, err = LoadPacman("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Player.Lives, "user directory wins over local directory")
}

func TestNormalize(t *testing.T) {
	cfg := DefaultPacmanConfig()
	cfg.Movement = PacmanMovement{PacmanMoveEveryTicks: 0, BoostMoveEveryTicks: 50, GhostMoveEveryTicks: -1}
	cfg.Ghosts.AIEveryTicks = 0
	cfg.Ghosts.AvoidPenalty = -3
	cfg.Player.Lives = 0
	cfg.normalize()

	assert.Equal(t, 1, cfg.Movement.MinMoveEveryTicks)
	assert.Equal(t, 1, cfg.Movement.PacmanMoveEveryTicks)
	assert.Equal(t, 1, cfg.Movement.BoostMoveEveryTicks)
	assert.Equal(t, 1, cfg.Movement.GhostMoveEveryTicks)
	assert.Equal(t, 1, cfg.Ghosts.AIEveryTicks)
	assert.Zero(t, cfg.Ghosts.AvoidPenalty)
	assert.Equal(t, 1, cfg.Player.Lives)
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "Normal", " HARD ", "fixed"} {
		_, err := ParsePreset(name)
		assert.NoError(t, err, name)
	}

	_, err := ParsePreset("nightmare")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestApplyPacmanPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		initial     float64
		lives       int
		cooperative bool
		accumulated bool
		chase       int
	}{
		{DifficultyEasy, true, 0.0, 5, false, false, 3},
		{DifficultyNormal, true, 0.3, 3, true, false, 5},
		{DifficultyHard, true, 0.7, 2, true, true, 7},
		{DifficultyFixed, false, 0.0, 3, true, false, 5},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			ApplyPacmanPreset(&cfg, tc.preset)

			assert.Equal(t, tc.enabled, cfg.Difficulty.Enabled)
			assert.InDelta(t, tc.initial, cfg.Difficulty.InitialLevel, 1e-9)
			assert.Equal(t, tc.lives, cfg.Player.Lives)
			assert.Equal(t, tc.cooperative, cfg.Ghosts.Cooperative)
			assert.Equal(t, tc.accumulated, cfg.Ghosts.AccumulatedCost)
			assert.Equal(t, tc.chase, cfg.Ghosts.ChaseRadius)
		})
	}
}

func TestDifficultyManagerLevel(t *testing.T) {
	cfg := DefaultPacmanConfig().Difficulty
	cfg.InitialLevel = 0.2
	d := NewDifficultyManager(cfg)

	assert.InDelta(t, 0.2, d.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.6, d.Level(4000, 0), 1e-9)
	assert.InDelta(t, 1.0, d.Level(1_000_000, 0), 1e-9)

	d.SetEnabled(false)
	assert.False(t, d.IsEnabled())
	assert.InDelta(t, 0.2, d.Level(8000, 0), 1e-9)

	d.SetInitialLevel(3)
	assert.InDelta(t, 1.0, d.Level(0, 0), 1e-9)
}

func TestDifficultyManagerTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, ChaseRadiusBonus: 4},
	})

	assert.InDelta(t, 0.5, d.Level(99999, 300), 1e-9)
	assert.Equal(t, 12, d.MoveInterval(12, 3, 0, 0))
	assert.Equal(t, 8, d.MoveInterval(12, 3, 0, 300))
	assert.Equal(t, 6, d.MoveInterval(12, 3, 0, 600))
	assert.Equal(t, 5, d.MoveInterval(6, 5, 0, 600), "floor holds")

	assert.Equal(t, 5, d.ChaseRadius(5, 0, 0))
	assert.Equal(t, 7, d.ChaseRadius(5, 0, 300))
	assert.Equal(t, 9, d.ChaseRadius(5, 0, 600))
}
