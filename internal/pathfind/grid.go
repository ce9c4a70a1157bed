package pathfind

// Kind classifies a grid cell for pathfinding.
type Kind uint8

const (
	Empty    Kind = iota // Passable floor
	Obstacle             // Wall, or anything outside the map
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Obstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// ObstacleMap is the read-only lookup the Finder searches over.
// Implementations must report Obstacle for cells outside their bounds.
type ObstacleMap interface {
	Kind(c Cell) Kind
}

// Grid is a fixed-size ObstacleMap. A Grid is never modified after
// construction; build a new one when the level changes.
type Grid struct {
	width  int
	height int
	kinds  []Kind // row-major
}

// NewGrid creates a width x height grid with the given obstacle cells.
// Obstacles outside the bounds are ignored.
func NewGrid(width, height int, obstacles []Cell) *Grid {
	g := &Grid{
		width:  max(width, 0),
		height: max(height, 0),
	}
	g.kinds = make([]Kind, g.width*g.height)
	for _, c := range obstacles {
		if g.InBounds(c) {
			g.kinds[g.index(c)] = Obstacle
		}
	}
	return g
}

// ParseGrid builds a grid from text rows. The grid is as wide as the
// longest row; cells missing from shorter rows are obstacles.
func ParseGrid(rows []string, isObstacle func(r rune) bool) *Grid {
	width := 0
	runeRows := make([][]rune, len(rows))
	for y, row := range rows {
		runeRows[y] = []rune(row)
		width = max(width, len(runeRows[y]))
	}

	var obstacles []Cell
	for y, row := range runeRows {
		for x := range width {
			if x >= len(row) || isObstacle(row[x]) {
				obstacles = append(obstacles, Cell{Col: x, Row: y})
			}
		}
	}
	return NewGrid(width, len(rows), obstacles)
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.width && c.Row >= 0 && c.Row < g.height
}

// Kind implements ObstacleMap. Out-of-bounds cells are obstacles.
func (g *Grid) Kind(c Cell) Kind {
	if !g.InBounds(c) {
		return Obstacle
	}
	return g.kinds[g.index(c)]
}

// Passable reports whether c is an in-bounds empty cell.
func (g *Grid) Passable(c Cell) bool {
	return g.Kind(c) == Empty
}

// EmptyCells returns every passable cell in row-major order.
func (g *Grid) EmptyCells() []Cell {
	cells := make([]Cell, 0, len(g.kinds))
	for y := range g.height {
		for x := range g.width {
			c := Cell{Col: x, Row: y}
			if g.kinds[g.index(c)] == Empty {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

func (g *Grid) index(c Cell) int {
	return c.Row*g.width + c.Col
}
