package pathfind

// UsedSectors collects the cells claimed by pursuers during one simulation
// tick. Create a fresh value at the start of every tick, Add each resolved
// path in pursuer order, and pass Cells() as the avoid list of the next
// search. The zero value is ready to use.
type UsedSectors struct {
	cells []Cell
	seen  map[Cell]struct{}
}

// NewUsedSectors returns an empty accumulator.
func NewUsedSectors() *UsedSectors {
	return &UsedSectors{}
}

// Add appends every cell of path in order.
func (u *UsedSectors) Add(path []Cell) {
	if u.seen == nil {
		u.seen = make(map[Cell]struct{}, len(path))
	}
	for _, c := range path {
		u.cells = append(u.cells, c)
		u.seen[c] = struct{}{}
	}
}

// Cells returns the claimed cells in the order they were added.
// Cells claimed by several pursuers appear once per claim.
func (u *UsedSectors) Cells() []Cell {
	return u.cells
}

// Contains reports whether any pursuer claimed c this tick.
func (u *UsedSectors) Contains(c Cell) bool {
	_, ok := u.seen[c]
	return ok
}

// Len returns the number of claims recorded.
func (u *UsedSectors) Len() int {
	return len(u.cells)
}
