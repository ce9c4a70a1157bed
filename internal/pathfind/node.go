package pathfind

import "container/heap"

// node is a per-search record. Two nodes refer to the same search state
// when their positions match; parent and costs are carried alongside so
// that every node can rebuild its own path.
type node struct {
	pos    Cell
	parent *node
	g      int // cost from start
	h      int // estimate to goal, including any avoid penalty
	f      int // g + h
	seq    uint64
	index  int // position in the heap
}

// openSet is a binary heap ordered by (f, seq) with a position index.
// Equal f values come out in insertion order.
type openSet struct {
	items []*node
	byPos map[Cell]*node
	next  uint64
}

func newOpenSet() *openSet {
	return &openSet{byPos: make(map[Cell]*node)}
}

func (o *openSet) Len() int { return len(o.items) }

func (o *openSet) Less(i, j int) bool {
	a, b := o.items[i], o.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

func (o *openSet) Swap(i, j int) {
	o.items[i], o.items[j] = o.items[j], o.items[i]
	o.items[i].index = i
	o.items[j].index = j
}

func (o *openSet) Push(x any) {
	n := x.(*node)
	n.index = len(o.items)
	o.items = append(o.items, n)
}

func (o *openSet) Pop() any {
	old := o.items
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	o.items = old[:last]
	n.index = -1
	return n
}

// add inserts n with a fresh sequence number.
func (o *openSet) add(n *node) {
	n.seq = o.next
	o.next++
	o.byPos[n.pos] = n
	heap.Push(o, n)
}

// popBest removes and returns the node with the lowest (f, seq).
func (o *openSet) popBest() *node {
	n := heap.Pop(o).(*node)
	delete(o.byPos, n.pos)
	return n
}

// lookup returns the open node at pos, if any.
func (o *openSet) lookup(pos Cell) (*node, bool) {
	n, ok := o.byPos[pos]
	return n, ok
}

// improve overwrites an open node with a cheaper route to the same cell.
// The node is re-sequenced as if it had just been inserted.
func (o *openSet) improve(existing, better *node) {
	existing.parent = better.parent
	existing.g = better.g
	existing.h = better.h
	existing.f = better.f
	existing.seq = o.next
	o.next++
	heap.Fix(o, existing.index)
}

// path walks parent links back to the start and returns the cells in
// travel order, excluding the start itself.
func (n *node) path() []Cell {
	depth := 0
	for cur := n; cur.parent != nil; cur = cur.parent {
		depth++
	}
	cells := make([]Cell, depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		depth--
		cells[depth] = cur.pos
	}
	return cells
}
