package pathfind

// Result contains the outcome of a search.
type Result struct {
	// Path runs from the first cell after start up to and including goal.
	// It is empty (not nil) when start == goal, and nil when nothing was found.
	Path []Cell

	// Found is false when the goal is unreachable. An empty Path with
	// Found == true means the start already is the goal.
	Found bool

	// Expanded counts the nodes moved to the closed set.
	Expanded int

	// Truncated is set when the search stopped at the expansion limit.
	Truncated bool
}

// Options defines parameters for the search.
type Options struct {
	// AccumulatedCost makes g the true path cost (parent g + 1) instead of
	// the Manhattan distance from the start cell. The default matches the
	// ghost behavior players know; it can pick longer routes around walls.
	AccumulatedCost bool

	// MaxExpansions caps the closed set size. Zero means unbounded.
	MaxExpansions int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithAccumulatedCost switches g to accumulated step cost, which makes
// the search optimal on any grid.
func WithAccumulatedCost() Option {
	return func(o *Options) { o.AccumulatedCost = true }
}

// WithMaxExpansions limits how many nodes a single search may expand.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = max(n, 0) }
}

// Finder runs A* searches against one obstacle map.
// A Finder holds no per-search state and may be reused for any number of
// sequential queries.
type Finder struct {
	obstacles ObstacleMap
	opts      Options
}

// NewFinder creates a Finder over m.
func NewFinder(m ObstacleMap, options ...Option) *Finder {
	var opts Options
	for _, option := range options {
		option(&opts)
	}
	return &Finder{obstacles: m, opts: opts}
}

// Options returns the options the Finder was built with.
func (f *Finder) Options() Options {
	return f.opts
}

// FindPath returns the path from start to goal, or false when the goal is
// unreachable. Cells in avoid cost an extra penalty when entered; they are
// discouraged, never forbidden.
func (f *Finder) FindPath(start, goal Cell, avoid []Cell, penalty int) ([]Cell, bool) {
	res := f.Search(start, goal, avoid, penalty)
	return res.Path, res.Found
}

// Search executes the A* search and reports expansion statistics.
//
// The start cell is never checked against the obstacle map, so a pursuer
// that is nominally inside a wall can still search outward. A goal that is
// an obstacle is never reachable. Negative penalties are treated as zero.
func (f *Finder) Search(start, goal Cell, avoid []Cell, penalty int) Result {
	if start == goal {
		return Result{Path: []Cell{}, Found: true}
	}
	if f.obstacles.Kind(goal) == Obstacle {
		return Result{}
	}

	var avoided map[Cell]struct{}
	if penalty > 0 && len(avoid) > 0 {
		avoided = make(map[Cell]struct{}, len(avoid))
		for _, c := range avoid {
			avoided[c] = struct{}{}
		}
	}

	open := newOpenSet()
	closed := make(map[Cell]struct{})
	open.add(&node{pos: start, h: start.Manhattan(goal), f: start.Manhattan(goal)})

	expanded := 0
	for open.Len() > 0 {
		if f.opts.MaxExpansions > 0 && expanded >= f.opts.MaxExpansions {
			return Result{Expanded: expanded, Truncated: true}
		}

		current := open.popBest()
		closed[current.pos] = struct{}{}
		expanded++

		if current.pos == goal {
			return Result{Path: current.path(), Found: true, Expanded: expanded}
		}

		for _, pos := range current.pos.neighbors() {
			if f.obstacles.Kind(pos) == Obstacle {
				continue
			}
			if _, done := closed[pos]; done {
				continue
			}

			candidate := &node{pos: pos, parent: current}
			if f.opts.AccumulatedCost {
				candidate.g = current.g + 1
			} else {
				candidate.g = pos.Manhattan(start)
			}
			candidate.h = pos.Manhattan(goal)
			if _, ok := avoided[pos]; ok {
				candidate.h += penalty
			}
			candidate.f = candidate.g + candidate.h

			if existing, ok := open.lookup(pos); ok {
				if existing.f <= candidate.f {
					continue
				}
				open.improve(existing, candidate)
				continue
			}
			open.add(candidate)
		}
	}

	return Result{Expanded: expanded}
}
