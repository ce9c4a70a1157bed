package pacman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pacman/internal/pathfind"
)

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
	}{
		{"empty", nil},
		{"no pacman", []string{"###", "#$#", "###"}},
		{"two pacmen", []string{"#####", "#@$@#", "#####"}},
		{"no ghosts", []string{"###", "#@#", "###"}},
		{"unmatched teleport", []string{"#.###", "#@$.#", "#####"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseBoard(tc.layout)
			assert.ErrorIs(t, err, ErrInvalidBoard)
		})
	}
}

func TestParseBoardContents(t *testing.T) {
	b, err := ParseBoard([]string{
		"##.##",
		"#o+$#",
		".@. .",
		"##.##",
	})
	require.NoError(t, err)

	assert.Equal(t, pathfind.C(1, 2), b.PacmanSpawn())
	assert.Equal(t, []pathfind.Cell{pathfind.C(3, 1)}, b.GhostSpawns())
	assert.Equal(t, 5, b.Count(ItemPellet))
	assert.Equal(t, 1, b.Count(ItemMegaPellet))
	assert.Equal(t, 1, b.Count(ItemCherry))

	for _, c := range []pathfind.Cell{pathfind.C(2, 0), pathfind.C(2, 3), pathfind.C(0, 2), pathfind.C(4, 2)} {
		assert.True(t, b.IsTeleport(c), "%s should be a teleport", c)
	}
	assert.False(t, b.IsTeleport(pathfind.C(2, 2)))
	assert.NotContains(t, b.Floors(), pathfind.C(0, 2), "teleports are not wander targets")
	assert.Contains(t, b.Floors(), pathfind.C(3, 2))
}

func TestBoardItemsIsACopy(t *testing.T) {
	b, err := LevelBoard(1)
	require.NoError(t, err)

	items := b.Items()
	for c := range items {
		delete(items, c)
	}
	assert.NotEmpty(t, b.Items())
}

func TestBoardStepWraps(t *testing.T) {
	b, err := LevelBoard(1)
	require.NoError(t, err)

	next, ok := b.Step(pathfind.C(0, 9), pathfind.Left)
	assert.True(t, ok)
	assert.Equal(t, pathfind.C(18, 9), next)

	next, ok = b.Step(pathfind.C(18, 9), pathfind.Right)
	assert.True(t, ok)
	assert.Equal(t, pathfind.C(0, 9), next)

	_, ok = b.Step(pathfind.C(1, 1), pathfind.Up)
	assert.False(t, ok, "walls block")

	b2, err := LevelBoard(2)
	require.NoError(t, err)
	next, ok = b2.Step(pathfind.C(9, 0), pathfind.Up)
	assert.True(t, ok)
	assert.Equal(t, pathfind.C(9, 18), next)
}

func TestBoardPlot(t *testing.T) {
	b, err := ParseBoard([]string{
		"#####",
		"#@.$#",
		"#####",
	})
	require.NoError(t, err)

	out := b.Plot(pathfind.C(1, 1), pathfind.C(3, 1), []pathfind.Cell{pathfind.C(2, 1), pathfind.C(3, 1)})
	assert.Equal(t, "#####\n#S*G#\n#####", out)
}

func TestLevelBoardRange(t *testing.T) {
	_, err := LevelBoard(0)
	assert.Error(t, err)
	_, err = LevelBoard(LevelCount() + 1)
	assert.Error(t, err)
}
