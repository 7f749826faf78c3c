package world

import "math"

// Direction represents a compass direction a search can step in
type Direction int

// Direction constants. The orthogonal ones are listed in expansion order.
const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	case NorthEast:
		return "North-East"
	case NorthWest:
		return "North-West"
	case SouthEast:
		return "South-East"
	case SouthWest:
		return "South-West"
	default:
		return "Unknown"
	}
}

// IsDiagonal returns true for the four diagonal directions
func (d Direction) IsDiagonal() bool {
	return d >= NorthEast && d <= SouthWest
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	case NorthEast:
		return -1, 1
	case NorthWest:
		return -1, -1
	case SouthEast:
		return 1, 1
	case SouthWest:
		return 1, -1
	default:
		return 0, 0
	}
}

// Step is one entry of a movement table: a direction, its offsets and its cost
type Step struct {
	Dir      Direction
	RowDelta int
	ColDelta int
	Cost     float64
}

// StepFor builds the Step for d. Orthogonal steps cost 1, diagonal steps cost sqrt(2).
func StepFor(d Direction) Step {
	rowDelta, colDelta := d.Delta()
	cost := 1.0
	if d.IsDiagonal() {
		cost = math.Sqrt2
	}
	return Step{Dir: d, RowDelta: rowDelta, ColDelta: colDelta, Cost: cost}
}

// OrthogonalSteps returns the four unit-cost steps in expansion order: N, S, E, W
func OrthogonalSteps() []Step {
	return []Step{StepFor(North), StepFor(South), StepFor(East), StepFor(West)}
}

// DiagonalSteps returns the four diagonal steps
func DiagonalSteps() []Step {
	return []Step{StepFor(NorthEast), StepFor(NorthWest), StepFor(SouthEast), StepFor(SouthWest)}
}

// AllSteps returns the orthogonal steps followed by the diagonal ones
func AllSteps() []Step {
	return append(OrthogonalSteps(), DiagonalSteps()...)
}
