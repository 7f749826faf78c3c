package generator

import (
	"math/rand"

	"gridpath/pkg/engine/world"
)

// NoiseGenerator blocks each cell independently with probability BlockedRatio.
// It does not guarantee that the kept-open cells are connected.
type NoiseGenerator struct {
	BlockedRatio float64
	rng          *rand.Rand
}

// Name returns the name of this generator
func (g *NoiseGenerator) Name() string {
	return "Random Noise"
}

// Generate creates a new grid with randomly blocked cells
func (g *NoiseGenerator) Generate(rows, cols int, keepOpen ...world.Coord) *world.Grid {
	grid := world.NewGrid(rows, cols)

	grid.ForEachCell(func(c world.Coord, s world.CellState) {
		if g.rng.Float64() < g.BlockedRatio {
			grid.Block(c)
		}
	})

	// Make sure to set source and destination as unblocked cells
	for _, c := range keepOpen {
		grid.Unblock(c)
	}

	return grid
}
