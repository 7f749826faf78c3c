package world

import (
	"math"
	"testing"
)

func TestOrthogonalSteps_Order(t *testing.T) {
	want := []Direction{North, South, East, West}
	steps := OrthogonalSteps()
	if len(steps) != len(want) {
		t.Fatalf("len(OrthogonalSteps()) = %d, want %d", len(steps), len(want))
	}
	for i, s := range steps {
		if s.Dir != want[i] {
			t.Errorf("step %d = %v, want %v", i, s.Dir, want[i])
		}
		if s.Cost != 1.0 {
			t.Errorf("%v cost = %v, want 1", s.Dir, s.Cost)
		}
	}
}

func TestStepFor_Deltas(t *testing.T) {
	origin := At(5, 5)
	tests := []struct {
		dir  Direction
		want Coord
	}{
		{North, At(4, 5)},
		{South, At(6, 5)},
		{East, At(5, 6)},
		{West, At(5, 4)},
		{NorthEast, At(4, 6)},
		{SouthWest, At(6, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := origin.Move(StepFor(tt.dir)); got != tt.want {
				t.Errorf("%v.Move(%v) = %v, want %v", origin, tt.dir, got, tt.want)
			}
		})
	}
}

func TestDiagonalSteps_CostSqrt2(t *testing.T) {
	for _, s := range DiagonalSteps() {
		if math.Abs(s.Cost-math.Sqrt2) > 1e-12 {
			t.Errorf("%v cost = %v, want sqrt(2)", s.Dir, s.Cost)
		}
	}
	if n := len(AllSteps()); n != 8 {
		t.Errorf("len(AllSteps()) = %d, want 8", n)
	}
}

func TestCoord_LessAndAdjacent(t *testing.T) {
	if !At(0, 5).Less(At(1, 0)) {
		t.Error("(0,5).Less((1,0)) = false, want true")
	}
	if At(1, 1).Less(At(1, 1)) {
		t.Error("(1,1).Less((1,1)) = true, want false")
	}
	if !At(2, 2).IsAdjacent(At(2, 3)) {
		t.Error("(2,2).IsAdjacent((2,3)) = false, want true")
	}
	if At(2, 2).IsAdjacent(At(3, 3)) {
		t.Error("(2,2).IsAdjacent((3,3)) = true, want false")
	}
	if d := ManhattanDistance(At(0, 0), At(3, -4)); d != 7 {
		t.Errorf("ManhattanDistance = %d, want 7", d)
	}
}
