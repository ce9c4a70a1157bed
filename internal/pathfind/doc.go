// Package pathfind provides grid pathfinding for chasing creatures.
//
// It exposes three pieces:
//
//   - Grid: an immutable obstacle map built once per level.
//   - Finder: an A* search over a Grid (or any ObstacleMap) with a
//     deterministic tie-break and an optional soft "avoid" bias.
//   - DirectionTo: translates the first step of a path into a cardinal
//     Direction.
//
// UsedSectors accumulates the paths resolved during one simulation tick so
// that later searches in the same tick are steered away from routes already
// claimed by earlier pursuers.
//
// The package has no I/O, no goroutines and no shared mutable state.
package pathfind
