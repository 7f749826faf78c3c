package search

import (
	"errors"
	"math"

	"gridpath/pkg/engine/world"
)

// ErrBrokenParentChain is returned by Trace when parent links do not lead back to a root
var ErrBrokenParentChain = errors.New("parent chain does not reach the source")

// CellRecord holds the best-known costs for one cell.
// A cell whose Parent is itself has not been reached, except for the source.
type CellRecord struct {
	G      float64
	H      float64
	F      float64
	Parent world.Coord
}

// CostTable stores one CellRecord per grid cell for the lifetime of a single search
type CostTable struct {
	rows    int
	cols    int
	records []CellRecord
}

// NewCostTable creates a table with every cost at +Inf and every parent pointing to itself
func NewCostTable(rows, cols int) *CostTable {
	t := &CostTable{rows: rows, cols: cols, records: make([]CellRecord, rows*cols)}
	inf := math.Inf(1)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			t.records[row*cols+col] = CellRecord{G: inf, H: inf, F: inf, Parent: world.At(row, col)}
		}
	}
	return t
}

// Record returns the record for c
func (t *CostTable) Record(c world.Coord) CellRecord {
	return t.records[t.index(c)]
}

// Relax overwrites the record for c. Callers check IsImproved first.
func (t *CostTable) Relax(c world.Coord, g, h float64, parent world.Coord) {
	t.records[t.index(c)] = CellRecord{G: g, H: h, F: g + h, Parent: parent}
}

// SetParent updates only the parent link of c
func (t *CostTable) SetParent(c, parent world.Coord) {
	t.records[t.index(c)].Parent = parent
}

// IsImproved reports whether f beats the stored f for c, or c has never been costed
func (t *CostTable) IsImproved(c world.Coord, f float64) bool {
	stored := t.records[t.index(c)].F
	return math.IsInf(stored, 1) || f < stored
}

// Trace follows parent links from dest back to the self-parented root and
// returns the coordinates in root-to-dest order.
func (t *CostTable) Trace(dest world.Coord) ([]world.Coord, error) {
	path := []world.Coord{dest}
	current := dest
	for {
		parent := t.records[t.index(current)].Parent
		if parent == current {
			break
		}
		if len(path) > len(t.records) {
			return nil, ErrBrokenParentChain
		}
		path = append(path, parent)
		current = parent
	}

	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

func (t *CostTable) index(c world.Coord) int {
	return c.Row*t.cols + c.Col
}
