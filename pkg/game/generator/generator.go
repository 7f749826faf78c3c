// Package generator builds occupancy grids for the search to solve.
package generator

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"gridpath/pkg/engine/world"
)

// GridGenerator is an interface for map generation algorithms.
// Every coordinate in keepOpen is guaranteed to be open in the result.
type GridGenerator interface {
	Generate(rows, cols int, keepOpen ...world.Coord) *world.Grid
	Name() string
}

// DefaultBlockedRatio is the share of cells the noise generator blocks
const DefaultBlockedRatio = 0.3

// Generator names accepted by New
const (
	NameNoise      = "noise"
	NameLineWalker = "linewalker"
	NameBSP        = "bsp"
)

// Names returns the registered generator names in sorted order
func Names() []string {
	names := []string{NameNoise, NameLineWalker, NameBSP}
	sort.Strings(names)
	return names
}

// New returns the generator registered under name, driven by a source seeded with seed
func New(name string, seed int64, blockedRatio float64) (GridGenerator, error) {
	rng := rand.New(rand.NewSource(seed))
	switch name {
	case NameNoise, "":
		return &NoiseGenerator{BlockedRatio: blockedRatio, rng: rng}, nil
	case NameLineWalker:
		return &LineWalkerGenerator{rng: rng}, nil
	case NameBSP:
		return &BSPGenerator{rng: rng}, nil
	default:
		return nil, fmt.Errorf("unknown generator %q (have %v)", name, Names())
	}
}

// Reachable returns every open cell reachable from start by orthogonal moves
func Reachable(grid *world.Grid, start world.Coord) mapset.Set[world.Coord] {
	reachable := mapset.New[world.Coord]()
	queue := []world.Coord{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if !grid.IsOpen(current) || reachable.Has(current) {
			continue
		}
		reachable.Put(current)

		for _, step := range world.OrthogonalSteps() {
			n := current.Move(step)
			if grid.IsOpen(n) && !reachable.Has(n) {
				queue = append(queue, n)
			}
		}
	}

	return reachable
}

// Connected returns true if b can be reached from a
func Connected(grid *world.Grid, a, b world.Coord) bool {
	return Reachable(grid, a).Has(b)
}

// carveL opens an L-shaped corridor from a to b. horizontalFirst picks which leg comes first.
func carveL(grid *world.Grid, a, b world.Coord, horizontalFirst bool) {
	if horizontalFirst {
		carveRow(grid, a.Row, a.Col, b.Col)
		carveCol(grid, b.Col, a.Row, b.Row)
	} else {
		carveCol(grid, a.Col, a.Row, b.Row)
		carveRow(grid, b.Row, a.Col, b.Col)
	}
}

func carveRow(grid *world.Grid, row, startCol, endCol int) {
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	for col := startCol; col <= endCol; col++ {
		grid.Unblock(world.At(row, col))
	}
}

func carveCol(grid *world.Grid, col, startRow, endRow int) {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	for row := startRow; row <= endRow; row++ {
		grid.Unblock(world.At(row, col))
	}
}

// connectAll carves corridors until every keepOpen cell is reachable from the first one
func connectAll(grid *world.Grid, rng *rand.Rand, keepOpen []world.Coord) {
	for _, c := range keepOpen {
		grid.Unblock(c)
	}
	if len(keepOpen) < 2 {
		return
	}
	anchor := keepOpen[0]
	for _, c := range keepOpen[1:] {
		if !Connected(grid, anchor, c) {
			carveL(grid, anchor, c, rng.Intn(2) == 0)
		}
	}
}
