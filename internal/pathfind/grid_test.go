package pathfind

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	g := ParseGrid([]string{
		"#.#",
		"...",
		"#.",
	}, isWall)

	require.Equal(t, 3, g.Width())
	require.Equal(t, 3, g.Height())

	tests := []struct {
		name     string
		cell     Cell
		expected Kind
	}{
		{"wall", C(0, 0), Obstacle},
		{"floor", C(1, 0), Empty},
		{"middle row", C(2, 1), Empty},
		{"missing from short row", C(2, 2), Obstacle},
		{"left of map", C(-1, 1), Obstacle},
		{"below map", C(1, 3), Obstacle},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, g.Kind(tc.cell))
			assert.Equal(t, tc.expected == Empty, g.Passable(tc.cell))
		})
	}
}

func TestNewGridIgnoresOutOfBoundsObstacles(t *testing.T) {
	g := NewGrid(2, 2, []Cell{C(1, 1), C(5, 5), C(-1, 0)})

	assert.Equal(t, []Cell{C(0, 0), C(1, 0), C(0, 1)}, g.EmptyCells())
	assert.Equal(t, "obstacle", g.Kind(C(1, 1)).String())
}

func TestNewGridNegativeSize(t *testing.T) {
	g := NewGrid(-3, 4, nil)
	assert.Zero(t, g.Width())
	assert.Empty(t, g.EmptyCells())
	assert.Equal(t, Obstacle, g.Kind(C(0, 0)))
}

func TestOpenSetOrdersByCostThenInsertion(t *testing.T) {
	open := newOpenSet()
	open.add(&node{pos: C(0, 0), f: 5})
	open.add(&node{pos: C(1, 0), f: 3})
	open.add(&node{pos: C(2, 0), f: 5})
	open.add(&node{pos: C(3, 0), f: 3})

	var order []Cell
	for open.Len() > 0 {
		order = append(order, open.popBest().pos)
	}
	assert.Equal(t, []Cell{C(1, 0), C(3, 0), C(0, 0), C(2, 0)}, order)
}

func TestOpenSetImproveResequences(t *testing.T) {
	open := newOpenSet()
	open.add(&node{pos: C(0, 0), f: 4})
	open.add(&node{pos: C(1, 0), f: 6})
	open.add(&node{pos: C(2, 0), f: 4})

	existing, ok := open.lookup(C(1, 0))
	require.True(t, ok)
	open.improve(existing, &node{pos: C(1, 0), g: 1, h: 3, f: 4})

	// The improved node ties on f but was inserted last.
	assert.Equal(t, C(0, 0), open.popBest().pos)
	assert.Equal(t, C(2, 0), open.popBest().pos)
	assert.Equal(t, C(1, 0), open.popBest().pos)

	_, ok = open.lookup(C(1, 0))
	assert.False(t, ok)
	assert.Implements(t, (*heap.Interface)(nil), open)
}

func TestNodePathExcludesStart(t *testing.T) {
	start := &node{pos: C(0, 0)}
	mid := &node{pos: C(1, 0), parent: start}
	end := &node{pos: C(1, 1), parent: mid}

	assert.Equal(t, []Cell{C(1, 0), C(1, 1)}, end.path())
	assert.Equal(t, []Cell{}, start.path())
}

func TestUsedSectors(t *testing.T) {
	var used UsedSectors
	assert.False(t, used.Contains(C(0, 0)))
	assert.Zero(t, used.Len())

	used.Add([]Cell{C(1, 1), C(1, 2)})
	used.Add([]Cell{C(1, 2), C(1, 3)})

	assert.Equal(t, []Cell{C(1, 1), C(1, 2), C(1, 2), C(1, 3)}, used.Cells())
	assert.Equal(t, 4, used.Len())
	assert.True(t, used.Contains(C(1, 3)))
	assert.False(t, used.Contains(C(0, 0)))

	fresh := NewUsedSectors()
	assert.Empty(t, fresh.Cells(), "each tick starts from an empty accumulator")
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, C(2, 2).Manhattan(C(2, 2)))
	assert.Equal(t, 7, C(-1, 3).Manhattan(C(2, -1)))
	assert.Equal(t, "(2,-1)", C(2, -1).String())
}
