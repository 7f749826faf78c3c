package generator

import (
	"math/rand"

	"gridpath/pkg/engine/world"
)

// LineWalkerGenerator carves corridors into a fully blocked grid by walking
// lines in random directions with a branching probability
type LineWalkerGenerator struct {
	rng *rand.Rand
}

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "Line Walker"
}

// Generate creates a new grid of corridors. The first keepOpen cell seeds the
// walk; every other one is connected to it afterwards.
func (g *LineWalkerGenerator) Generate(rows, cols int, keepOpen ...world.Coord) *world.Grid {
	grid := world.NewGrid(rows, cols)
	grid.Fill(world.Blocked)

	start := world.At(rows/2, cols/2)
	if len(keepOpen) > 0 && grid.IsValid(keepOpen[0]) {
		start = keepOpen[0]
	}

	// Scale corridor length with the grid so small and large maps look alike
	minDist := 2 + (rows+cols)/40
	maxDist := 4 + (rows+cols)/10
	branchProb := float32(0.45)

	for _, dir := range world.OrthogonalSteps() {
		g.walk(grid, start, dir.Dir, branchProb, minDist, maxDist)
	}

	// Extra walks from random cells keep larger grids from being mostly wall
	extra := (rows * cols) / 200
	for i := 0; i < extra; i++ {
		from := world.At(g.rng.Intn(rows), g.rng.Intn(cols))
		g.walk(grid, from, g.randomDirection(), branchProb, minDist, maxDist)
	}

	connectAll(grid, g.rng, keepOpen)
	return grid
}

// randomDirection returns a random orthogonal direction
func (g *LineWalkerGenerator) randomDirection() world.Direction {
	steps := world.OrthogonalSteps()
	return steps[g.rng.Intn(len(steps))].Dir
}

// walk opens a straight line of cells starting at from, branching off at random
func (g *LineWalkerGenerator) walk(grid *world.Grid, from world.Coord, dir world.Direction, branchProbability float32, minDist, maxDist int) world.Coord {
	step := world.StepFor(dir)
	distance := minDist + g.rng.Intn(maxDist-minDist+1)

	current := from
	for segment := 0; segment < distance; segment++ {
		grid.Unblock(current)

		next := current.Move(step)
		if !grid.IsValid(next) {
			return current
		}

		if g.rng.Float32() < branchProbability {
			g.walk(grid, current, g.randomDirection(), branchProbability-.1, minDist, maxDist)
		}

		current = next
	}

	grid.Unblock(current)
	return current
}
