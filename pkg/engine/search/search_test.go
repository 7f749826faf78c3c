package search

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zyedidia/generic/mapset"

	"gridpath/pkg/engine/world"
)

func mustParse(t *testing.T, lines ...string) *world.Grid {
	t.Helper()
	g, err := world.ParseGrid(lines)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return g
}

// checkPathShape verifies adjacency, uniqueness and endpoints of a found path
func checkPathShape(t *testing.T, grid *world.Grid, path []world.Coord, src, dst world.Coord) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("path is empty")
	}
	if path[0] != src {
		t.Errorf("path[0] = %v, want source %v", path[0], src)
	}
	if path[len(path)-1] != dst {
		t.Errorf("path[last] = %v, want destination %v", path[len(path)-1], dst)
	}
	seen := mapset.New[world.Coord]()
	for i, c := range path {
		if seen.Has(c) {
			t.Errorf("path repeats %v at index %d", c, i)
		}
		seen.Put(c)
		if !grid.IsOpen(c) {
			t.Errorf("path crosses blocked cell %v", c)
		}
		if i > 0 && !path[i-1].IsAdjacent(c) {
			t.Errorf("path[%d]=%v and path[%d]=%v are not 4-adjacent", i-1, path[i-1], i, c)
		}
	}
}

// bfsDistance returns the number of orthogonal moves on a shortest path, or -1
func bfsDistance(grid *world.Grid, src, dst world.Coord) int {
	dist := map[world.Coord]int{src: 0}
	queue := []world.Coord{src}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == dst {
			return dist[current]
		}
		for _, step := range world.OrthogonalSteps() {
			n := current.Move(step)
			if !grid.IsOpen(n) {
				continue
			}
			if _, ok := dist[n]; ok {
				continue
			}
			dist[n] = dist[current] + 1
			queue = append(queue, n)
		}
	}
	return -1
}

func TestSearch_OpenThreeByThree(t *testing.T) {
	grid := world.NewGrid(3, 3)
	rec := &Recorder{}
	out := Search(grid, world.At(0, 0), world.At(2, 2), rec)

	if out.Status != Succeeded {
		t.Fatalf("Status = %v, want succeeded", out.Status)
	}
	if len(out.Path) != 5 {
		t.Errorf("len(Path) = %d, want 5", len(out.Path))
	}
	if out.Cost != 4.0 {
		t.Errorf("Cost = %v, want 4", out.Cost)
	}
	want := []world.Coord{world.At(0, 0), world.At(0, 1), world.At(1, 1), world.At(1, 2), world.At(2, 2)}
	if diff := cmp.Diff(want, out.Path); diff != "" {
		t.Errorf("Path mismatch (-want +got):\n%s", diff)
	}
	checkPathShape(t, grid, out.Path, world.At(0, 0), world.At(2, 2))

	if n := rec.Count(EventPathFound); n != 1 {
		t.Errorf("OnPathFound fired %d times, want 1", n)
	}
	if n := rec.Count(EventFailed); n != 0 {
		t.Errorf("OnSearchFailed fired %d times, want 0", n)
	}
	if last := rec.Events[len(rec.Events)-1]; last.Kind != EventPathFound {
		t.Errorf("last event kind = %v, want path found", last.Kind)
	}
	if got := len(rec.Relaxed()); got != out.Relaxed {
		t.Errorf("relax events = %d, Outcome.Relaxed = %d", got, out.Relaxed)
	}
}

func TestSearch_CenterColumnBlocked(t *testing.T) {
	grid := mustParse(t,
		"...",
		".#.",
		".#.",
	)
	out := Search(grid, world.At(0, 0), world.At(2, 2), nil)
	if !out.Found() {
		t.Fatalf("Status = %v, want succeeded", out.Status)
	}
	checkPathShape(t, grid, out.Path, world.At(0, 0), world.At(2, 2))

	viaTop := false
	for _, c := range out.Path {
		if c == world.At(0, 1) || c == world.At(0, 2) {
			viaTop = true
		}
	}
	if !viaTop {
		t.Errorf("Path %v does not route through (0,1) or (0,2)", out.Path)
	}
	if out.Steps() != 4 {
		t.Errorf("Steps() = %d, want 4", out.Steps())
	}
}

func TestSearch_ManhattanOnEmptyGrid(t *testing.T) {
	grid := world.NewGrid(world.DefaultRows, world.DefaultCols)
	pairs := [][2]world.Coord{
		{world.At(0, 0), world.At(world.DefaultRows-1, world.DefaultCols-1)},
		{world.At(5, 5), world.At(5, 30)},
		{world.At(30, 2), world.At(1, 2)},
		{world.At(10, 39), world.At(20, 0)},
	}
	for _, p := range pairs {
		out := Search(grid, p[0], p[1], nil)
		if !out.Found() {
			t.Fatalf("Search(%v, %v) status = %v", p[0], p[1], out.Status)
		}
		want := world.ManhattanDistance(p[0], p[1])
		if out.Steps() != want {
			t.Errorf("Search(%v, %v) steps = %d, want %d", p[0], p[1], out.Steps(), want)
		}
		if out.Cost != float64(want) {
			t.Errorf("Search(%v, %v) cost = %v, want %d", p[0], p[1], out.Cost, want)
		}
		checkPathShape(t, grid, out.Path, p[0], p[1])
	}
}

func TestSearch_EnclosedDestinationFails(t *testing.T) {
	grid := mustParse(t,
		".....",
		"..###",
		"..#..",
		"..###",
		".....",
	)
	rec := &Recorder{}
	out := Search(grid, world.At(0, 0), world.At(2, 3), rec)

	if out.Status != Failed {
		t.Fatalf("Status = %v, want failed", out.Status)
	}
	if out.Path != nil {
		t.Errorf("Path = %v, want nil", out.Path)
	}
	if rec.Count(EventPathFound) != 0 {
		t.Error("OnPathFound fired for an unreachable destination")
	}
	if rec.Count(EventFailed) != 1 {
		t.Errorf("OnSearchFailed fired %d times, want 1", rec.Count(EventFailed))
	}
	if !errors.Is(out.Err(), ErrSearchExhausted) {
		t.Errorf("Err() = %v, want ErrSearchExhausted", out.Err())
	}
	// every open cell reachable from the source gets expanded exactly once
	if out.Expanded != 16 {
		t.Errorf("Expanded = %d, want 16", out.Expanded)
	}
}

func TestSearch_Rejections(t *testing.T) {
	blockedSource := world.NewGrid(10, 10)
	blockedSource.Block(world.At(0, 0))

	tests := []struct {
		name string
		grid *world.Grid
		src  world.Coord
		dst  world.Coord
		want Rejection
	}{
		{"invalid source", world.NewGrid(5, 5), world.At(-1, 0), world.At(0, 0), InvalidEndpoint},
		{"invalid destination", world.NewGrid(5, 5), world.At(0, 0), world.At(0, 5), InvalidEndpoint},
		{"blocked source", blockedSource, world.At(0, 0), world.At(5, 5), BlockedEndpoint},
		{"blocked destination", blockedSource, world.At(5, 5), world.At(0, 0), BlockedEndpoint},
		{"same cell", world.NewGrid(5, 5), world.At(2, 2), world.At(2, 2), AlreadyAtDestination},
		{"invalid wins over blocked", blockedSource, world.At(0, 0), world.At(10, 10), InvalidEndpoint},
		{"blocked wins over same cell", blockedSource, world.At(0, 0), world.At(0, 0), BlockedEndpoint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Recorder{}
			out := Search(tt.grid, tt.src, tt.dst, rec)
			if out.Status != Rejected {
				t.Fatalf("Status = %v, want rejected", out.Status)
			}
			if out.Rejection != tt.want {
				t.Errorf("Rejection = %v, want %v", out.Rejection, tt.want)
			}
			if len(rec.Events) != 1 || rec.Events[0].Kind != EventRejected || rec.Events[0].Rejection != tt.want {
				t.Errorf("events = %+v, want a single OnRejected(%v)", rec.Events, tt.want)
			}
			var rejErr *RejectionError
			if !errors.As(out.Err(), &rejErr) || rejErr.Reason != tt.want {
				t.Errorf("Err() = %v, want RejectionError{%v}", out.Err(), tt.want)
			}
		})
	}
}

func TestSearch_RejectionMessages(t *testing.T) {
	want := map[Rejection]string{
		InvalidEndpoint:      "Source or Destination is invalid.",
		BlockedEndpoint:      "Source or Destination is blocked.",
		AlreadyAtDestination: "We are already at the destination.",
	}
	for r, msg := range want {
		if got := (&RejectionError{Reason: r}).Error(); got != msg {
			t.Errorf("%v message = %q, want %q", r, got, msg)
		}
	}
}

func TestSearch_DestinationAcceptedOnDiscovery(t *testing.T) {
	// the destination is a neighbor of the source, so it is found while the
	// source is being expanded and nothing else is ever relaxed before it
	grid := world.NewGrid(3, 3)
	rec := &Recorder{}
	out := Search(grid, world.At(1, 1), world.At(0, 1), rec)
	if !out.Found() {
		t.Fatalf("Status = %v, want succeeded", out.Status)
	}
	if out.Expanded != 1 {
		t.Errorf("Expanded = %d, want 1", out.Expanded)
	}
	if len(rec.Relaxed()) != 0 {
		t.Errorf("relaxed %v before discovering the north neighbor, want none", rec.Relaxed())
	}
	if diff := cmp.Diff([]world.Coord{world.At(1, 1), world.At(0, 1)}, out.Path); diff != "" {
		t.Errorf("Path mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	grid := randomGrid(rng, world.DefaultRows, world.DefaultCols, 0.25)
	src, dst := world.At(0, 0), world.At(world.DefaultRows-1, world.DefaultCols-1)
	grid.Unblock(src)
	grid.Unblock(dst)

	first, firstRec := Search(grid, src, dst, nil), &Recorder{}
	Search(grid, src, dst, firstRec)
	for i := 0; i < 3; i++ {
		rec := &Recorder{}
		again := Search(grid, src, dst, rec)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d outcome differs (-first +again):\n%s", i, diff)
		}
		if diff := cmp.Diff(firstRec.Events, rec.Events); diff != "" {
			t.Fatalf("run %d events differ (-first +again):\n%s", i, diff)
		}
	}
}

func TestSearch_MatchesBFSOnRandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		rows, cols := 2+rng.Intn(20), 2+rng.Intn(20)
		grid := randomGrid(rng, rows, cols, 0.3)
		src := world.At(rng.Intn(rows), rng.Intn(cols))
		dst := world.At(rng.Intn(rows), rng.Intn(cols))
		if src == dst {
			continue
		}
		grid.Unblock(src)
		grid.Unblock(dst)

		out := Search(grid, src, dst, nil)
		want := bfsDistance(grid, src, dst)
		if want < 0 {
			if out.Status != Failed {
				t.Errorf("grid %d: %v->%v unreachable but status = %v\n%s", i, src, dst, out.Status, grid)
			}
			continue
		}
		if !out.Found() {
			t.Errorf("grid %d: %v->%v reachable in %d but status = %v\n%s", i, src, dst, want, out.Status, grid)
			continue
		}
		if out.Steps() != want {
			t.Errorf("grid %d: %v->%v steps = %d, BFS = %d\n%s", i, src, dst, out.Steps(), want, grid)
		}
		checkPathShape(t, grid, out.Path, src, dst)
	}
}

func TestSearch_DoesNotMutateGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	grid := randomGrid(rng, 12, 12, 0.3)
	before := grid.String()
	Search(grid, world.At(0, 0), world.At(11, 11), nil)
	if after := grid.String(); after != before {
		t.Errorf("grid changed during search:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

func TestSearch_WithDiagonalSteps(t *testing.T) {
	grid := world.NewGrid(5, 5)
	out := Search(grid, world.At(0, 0), world.At(4, 4), nil, WithSteps(world.AllSteps()))
	if !out.Found() {
		t.Fatalf("Status = %v, want succeeded", out.Status)
	}
	if out.Steps() != 4 {
		t.Errorf("Steps() = %d, want 4 diagonal moves", out.Steps())
	}
	if math.Abs(out.Cost-4*math.Sqrt2) > 1e-9 {
		t.Errorf("Cost = %v, want 4*sqrt(2)", out.Cost)
	}
}

func TestSearch_CustomHeuristic(t *testing.T) {
	calls := 0
	zero := func(from, to world.Coord) float64 {
		calls++
		return 0
	}
	grid := world.NewGrid(4, 4)
	out := Search(grid, world.At(0, 0), world.At(3, 3), nil, WithHeuristic(zero))
	if !out.Found() || out.Steps() != 6 {
		t.Errorf("zero-heuristic search: status = %v steps = %d, want succeeded in 6", out.Status, out.Steps())
	}
	if calls == 0 {
		t.Error("custom heuristic was never called")
	}
}

func TestEuclidean(t *testing.T) {
	if got := Euclidean(world.At(0, 0), world.At(3, 4)); got != 5 {
		t.Errorf("Euclidean((0,0),(3,4)) = %v, want 5", got)
	}
	if got := Euclidean(world.At(2, 2), world.At(2, 2)); got != 0 {
		t.Errorf("Euclidean of a point to itself = %v, want 0", got)
	}
}

func randomGrid(rng *rand.Rand, rows, cols int, ratio float64) *world.Grid {
	g := world.NewGrid(rows, cols)
	g.ForEachCell(func(c world.Coord, s world.CellState) {
		if rng.Float64() < ratio {
			g.Block(c)
		}
	})
	return g
}
