// Package world provides the 2D occupancy grid primitives used by the search engine.
// These are engine-level constructs with no knowledge of rendering or sessions.
package world

import "fmt"

// Coord is a (row, col) position in a grid
type Coord struct {
	Row int
	Col int
}

// At is shorthand for Coord{Row: row, Col: col}
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Less orders coordinates by row, then column
func (c Coord) Less(other Coord) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// Move returns the coordinate reached by taking step from c
func (c Coord) Move(step Step) Coord {
	return Coord{Row: c.Row + step.RowDelta, Col: c.Col + step.ColDelta}
}

// IsAdjacent returns true if other is one orthogonal step away from c
func (c Coord) IsAdjacent(other Coord) bool {
	return ManhattanDistance(c, other) == 1
}

// String returns the coordinate as "(row,col)"
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// ManhattanDistance calculates the Manhattan distance between two coordinates
func ManhattanDistance(a, b Coord) int {
	rowDist := a.Row - b.Row
	colDist := a.Col - b.Col
	if rowDist < 0 {
		rowDist = -rowDist
	}
	if colDist < 0 {
		colDist = -colDist
	}
	return rowDist + colDist
}
