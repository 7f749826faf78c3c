package search

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gridpath/pkg/engine/world"
)

func TestFrontier_PopsByCostThenCoord(t *testing.T) {
	f := NewFrontier()
	f.Insert(3.5, world.At(0, 0))
	f.Insert(1.0, world.At(4, 4))
	f.Insert(1.0, world.At(2, 9))
	f.Insert(1.0, world.At(2, 3))
	f.Insert(0.5, world.At(9, 9))

	want := []Entry{
		{F: 0.5, Coord: world.At(9, 9)},
		{F: 1.0, Coord: world.At(2, 3)},
		{F: 1.0, Coord: world.At(2, 9)},
		{F: 1.0, Coord: world.At(4, 4)},
		{F: 3.5, Coord: world.At(0, 0)},
	}
	var got []Entry
	for !f.IsEmpty() {
		e, err := f.PopMin()
		if err != nil {
			t.Fatalf("PopMin: %v", err)
		}
		got = append(got, e)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pop order mismatch (-want +got):\n%s", diff)
	}
}

func TestFrontier_KeepsDuplicates(t *testing.T) {
	f := NewFrontier()
	f.Insert(5, world.At(1, 1))
	f.Insert(4, world.At(1, 1))
	e, _ := f.PopMin()
	if e.F != 4 {
		t.Errorf("first pop F = %v, want the improved entry 4", e.F)
	}
	stale, err := f.PopMin()
	if err != nil || stale.F != 5 || stale.Coord != world.At(1, 1) {
		t.Errorf("second pop = %+v, %v, want the superseded entry 5 at (1,1)", stale, err)
	}
}

func TestFrontier_PopEmpty(t *testing.T) {
	f := NewFrontier()
	if !f.IsEmpty() {
		t.Fatal("new frontier is not empty")
	}
	if _, err := f.PopMin(); !errors.Is(err, ErrEmptyFrontier) {
		t.Errorf("PopMin() on empty error = %v, want ErrEmptyFrontier", err)
	}
}

func TestCostTable_Initial(t *testing.T) {
	table := NewCostTable(2, 3)
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			c := world.At(row, col)
			rec := table.Record(c)
			if !math.IsInf(rec.G, 1) || !math.IsInf(rec.H, 1) || !math.IsInf(rec.F, 1) {
				t.Errorf("Record(%v) = %+v, want all costs +Inf", c, rec)
			}
			if rec.Parent != c {
				t.Errorf("Record(%v).Parent = %v, want self", c, rec.Parent)
			}
			if !table.IsImproved(c, math.MaxFloat64) {
				t.Errorf("IsImproved(%v) on a fresh record = false, want true", c)
			}
		}
	}
}

func TestCostTable_RelaxAndIsImproved(t *testing.T) {
	table := NewCostTable(3, 3)
	c := world.At(1, 2)
	table.Relax(c, 2, 1.5, world.At(1, 1))

	rec := table.Record(c)
	if rec.F != 3.5 || rec.Parent != world.At(1, 1) {
		t.Errorf("Record after Relax = %+v, want F=3.5 parent=(1,1)", rec)
	}
	if table.IsImproved(c, 3.5) {
		t.Error("IsImproved with an equal f = true, want false")
	}
	if table.IsImproved(c, 4) {
		t.Error("IsImproved with a worse f = true, want false")
	}
	if !table.IsImproved(c, 3.25) {
		t.Error("IsImproved with a better f = false, want true")
	}
}

func TestCostTable_Trace(t *testing.T) {
	table := NewCostTable(3, 3)
	src := world.At(0, 0)
	table.Relax(src, 0, 0, src)
	table.SetParent(world.At(0, 1), src)
	table.SetParent(world.At(1, 1), world.At(0, 1))
	table.SetParent(world.At(2, 1), world.At(1, 1))

	got, err := table.Trace(world.At(2, 1))
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	want := []world.Coord{src, world.At(0, 1), world.At(1, 1), world.At(2, 1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Trace mismatch (-want +got):\n%s", diff)
	}
}

func TestCostTable_TraceCycle(t *testing.T) {
	table := NewCostTable(2, 2)
	table.SetParent(world.At(0, 0), world.At(0, 1))
	table.SetParent(world.At(0, 1), world.At(0, 0))
	if _, err := table.Trace(world.At(0, 0)); !errors.Is(err, ErrBrokenParentChain) {
		t.Errorf("Trace on a cycle error = %v, want ErrBrokenParentChain", err)
	}
}

func TestObservers_FanOutInOrder(t *testing.T) {
	grid := world.NewGrid(4, 4)
	a, b := &Recorder{}, &Recorder{}
	Search(grid, world.At(0, 0), world.At(3, 3), Observers{a, NopObserver{}, b})

	if len(a.Events) == 0 {
		t.Fatal("no events recorded")
	}
	if diff := cmp.Diff(a.Events, b.Events); diff != "" {
		t.Errorf("observers saw different events (-first +second):\n%s", diff)
	}
}
