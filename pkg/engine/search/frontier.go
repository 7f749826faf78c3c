package search

import (
	"errors"

	"github.com/zyedidia/generic/heap"

	"gridpath/pkg/engine/world"
)

// ErrEmptyFrontier is returned by PopMin on an empty frontier
var ErrEmptyFrontier = errors.New("pop from empty frontier")

// Entry is a frontier element: an f-cost and the coordinate it was computed for
type Entry struct {
	F     float64
	Coord world.Coord
}

// entryLess orders by f, then by coordinate so expansion order is deterministic
func entryLess(a, b Entry) bool {
	if a.F != b.F {
		return a.F < b.F
	}
	return a.Coord.Less(b.Coord)
}

// Frontier is the open set of an A* search.
// The same coordinate may be inserted more than once; superseded entries are
// filtered by the closed set when they are popped.
type Frontier struct {
	entries *heap.Heap[Entry]
}

// NewFrontier creates an empty frontier
func NewFrontier() *Frontier {
	return &Frontier{entries: heap.New[Entry](entryLess)}
}

// Insert adds an entry
func (f *Frontier) Insert(cost float64, c world.Coord) {
	f.entries.Push(Entry{F: cost, Coord: c})
}

// PopMin removes and returns the lowest entry
func (f *Frontier) PopMin() (Entry, error) {
	e, ok := f.entries.Pop()
	if !ok {
		return Entry{}, ErrEmptyFrontier
	}
	return e, nil
}

// IsEmpty returns true if there is nothing left to expand
func (f *Frontier) IsEmpty() bool {
	return f.entries.Size() == 0
}
