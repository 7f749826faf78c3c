// Package search implements A* over a world.Grid.
//
// Search runs one query to completion and reports progress through an
// Observer: every cell whose best-known cost improves, then exactly one
// terminal event (path found, search failed, or rejected). All per-query
// state (cost table, frontier, closed set) is owned by the call, so a grid
// may be searched concurrently as long as nobody mutates it meanwhile.
package search
