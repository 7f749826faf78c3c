package world

import (
	"fmt"
	"strings"
)

// Default grid dimensions
const (
	DefaultRows = 38
	DefaultCols = 40
)

// CellState is the occupancy of a single grid cell
type CellState uint8

// Cell states
const (
	Blocked CellState = iota
	Open
)

// String returns the string representation of a cell state
func (s CellState) String() string {
	if s == Open {
		return "Open"
	}
	return "Blocked"
}

// Symbols used by ParseGrid and Grid.String
const (
	SymbolBlocked = '#'
	SymbolOpen    = '.'
)

// Grid is a fixed-size occupancy map. Searches read it but never mutate it.
type Grid struct {
	rows  int
	cols  int
	cells []CellState
}

// NewGrid creates a grid with every cell open
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Build (re)initializes the grid with the given dimensions, all cells open
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([]CellState, rows*cols)
	for i := range g.cells {
		g.cells[i] = Open
	}
}

// ParseGrid builds a grid from text rows where '#' is blocked and '.' is open.
// All rows must have the same length.
func ParseGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("empty grid")
	}

	g := NewGrid(len(lines), len(lines[0]))
	for row, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", row, len(line), g.cols)
		}
		for col, ch := range line {
			switch ch {
			case SymbolBlocked:
				g.Block(At(row, col))
			case SymbolOpen:
			default:
				return nil, fmt.Errorf("unknown cell symbol %q at %v", ch, At(row, col))
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns rows*cols
func (g *Grid) Size() int {
	return g.rows * g.cols
}

// IsValid checks if a coordinate is within grid bounds
func (g *Grid) IsValid(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsOpen returns true if c is inside the grid and not blocked.
// Out-of-bounds coordinates are reported as not open.
func (g *Grid) IsOpen(c Coord) bool {
	return g.State(c) == Open
}

// State returns the state of the cell at c, or Blocked if c is out of bounds
func (g *Grid) State(c Coord) CellState {
	if !g.IsValid(c) {
		return Blocked
	}
	return g.cells[g.index(c)]
}

// SetState sets the state of the cell at c. Returns false if out of bounds.
func (g *Grid) SetState(c Coord, s CellState) bool {
	if !g.IsValid(c) {
		return false
	}
	g.cells[g.index(c)] = s
	return true
}

// Block marks the cell at c as blocked. Returns false if out of bounds.
func (g *Grid) Block(c Coord) bool {
	return g.SetState(c, Blocked)
}

// Unblock marks the cell at c as open. Returns false if out of bounds.
func (g *Grid) Unblock(c Coord) bool {
	return g.SetState(c, Open)
}

// Fill sets every cell to s
func (g *Grid) Fill(s CellState) {
	for i := range g.cells {
		g.cells[i] = s
	}
}

// BlockedCount returns how many cells are blocked
func (g *Grid) BlockedCount() int {
	n := 0
	for _, s := range g.cells {
		if s == Blocked {
			n++
		}
	}
	return n
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(c Coord, s CellState)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			c := At(row, col)
			fn(c, g.cells[g.index(c)])
		}
	}
}

// String renders the grid with one symbol per cell and a newline per row
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.cells[g.index(At(row, col))] == Open {
				sb.WriteByte(SymbolOpen)
			} else {
				sb.WriteByte(SymbolBlocked)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}
