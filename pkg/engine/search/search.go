package search

import (
	"io"
	"log/slog"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/zyedidia/generic/mapset"

	"gridpath/pkg/engine/world"
)

// Heuristic estimates the remaining cost from a cell to the destination
type Heuristic func(from, to world.Coord) float64

// Euclidean is the straight-line distance between two cells.
// It never overestimates the cost of orthogonal or diagonal moves.
func Euclidean(from, to world.Coord) float64 {
	return planar.Distance(toPoint(from), toPoint(to))
}

func toPoint(c world.Coord) orb.Point {
	return orb.Point{float64(c.Col), float64(c.Row)}
}

// Options defines parameters for the search
type Options struct {
	Steps     []world.Step
	Heuristic Heuristic
	Logger    *slog.Logger
}

// Option is a function that modifies Options
type Option func(*Options)

// WithSteps replaces the movement table. The default is world.OrthogonalSteps().
func WithSteps(steps []world.Step) Option {
	return func(o *Options) { o.Steps = steps }
}

// WithHeuristic replaces the Euclidean heuristic
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithLogger sets a logger for terminal outcomes. Output is discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// run is the per-call state of one search
type run struct {
	grid   *world.Grid
	source world.Coord
	dest   world.Coord
	obs    Observer
	opts   Options

	costs    *CostTable
	frontier *Frontier
	closed   mapset.Set[world.Coord]
	outcome  Outcome
}

// Search finds a lowest-cost path from source to dest on grid.
// Progress and the terminal result are sent to obs (which may be nil);
// the same terminal result is returned as an Outcome.
func Search(grid *world.Grid, source, dest world.Coord, obs Observer, options ...Option) Outcome {
	opts := Options{
		Steps:     world.OrthogonalSteps(),
		Heuristic: Euclidean,
	}
	for _, option := range options {
		option(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if obs == nil {
		obs = NopObserver{}
	}

	r := &run{grid: grid, source: source, dest: dest, obs: obs, opts: opts}
	r.outcome.Status = Idle

	if reason := r.validate(); reason != NotRejected {
		r.outcome.Status = Rejected
		r.outcome.Rejection = reason
		r.obs.OnRejected(reason)
		r.log()
		return r.outcome
	}

	r.outcome.Status = Running
	r.loop()
	r.log()
	return r.outcome
}

// validate applies the entry checks in order
func (r *run) validate() Rejection {
	if !r.grid.IsValid(r.source) || !r.grid.IsValid(r.dest) {
		return InvalidEndpoint
	}
	if !r.grid.IsOpen(r.source) || !r.grid.IsOpen(r.dest) {
		return BlockedEndpoint
	}
	if r.source == r.dest {
		return AlreadyAtDestination
	}
	return NotRejected
}

func (r *run) loop() {
	r.costs = NewCostTable(r.grid.Rows(), r.grid.Cols())
	r.frontier = NewFrontier()
	r.closed = mapset.New[world.Coord]()

	r.costs.Relax(r.source, 0, 0, r.source)
	r.frontier.Insert(0, r.source)

	for !r.frontier.IsEmpty() {
		entry, err := r.frontier.PopMin()
		if err != nil {
			panic(err)
		}

		current := entry.Coord
		if r.closed.Has(current) {
			continue
		}
		r.closed.Put(current)
		r.outcome.Expanded++

		if r.expand(current) {
			return
		}
	}

	r.outcome.Status = Failed
	r.obs.OnSearchFailed()
}

// expand relaxes the neighbors of current. Returns true once the destination is found.
func (r *run) expand(current world.Coord) bool {
	g := r.costs.Record(current).G

	for _, step := range r.opts.Steps {
		next := current.Move(step)
		if !r.grid.IsValid(next) {
			continue
		}

		// The destination is accepted as soon as it is discovered, not when popped
		if next == r.dest {
			r.costs.SetParent(next, current)
			r.succeed(g + step.Cost)
			return true
		}

		if r.closed.Has(next) || !r.grid.IsOpen(next) {
			continue
		}

		gNew := g + step.Cost
		hNew := r.opts.Heuristic(next, r.dest)
		fNew := gNew + hNew

		if r.costs.IsImproved(next, fNew) {
			r.frontier.Insert(fNew, next)
			r.costs.Relax(next, gNew, hNew, current)
			r.outcome.Relaxed++
			r.obs.OnCellRelaxed(next)
		}
	}
	return false
}

func (r *run) succeed(cost float64) {
	path, err := r.costs.Trace(r.dest)
	if err != nil {
		// parent links are only ever written towards closed cells
		panic(err)
	}

	r.outcome.Status = Succeeded
	r.outcome.Path = path
	r.outcome.Cost = cost
	r.obs.OnPathFound(path)
}

func (r *run) log() {
	r.opts.Logger.Debug("search finished",
		slog.String("status", r.outcome.Status.String()),
		slog.String("source", r.source.String()),
		slog.String("destination", r.dest.String()),
		slog.String("rejection", r.outcome.Rejection.String()),
		slog.Int("expanded", r.outcome.Expanded),
		slog.Int("relaxed", r.outcome.Relaxed),
		slog.Int("steps", r.outcome.Steps()),
		slog.Float64("cost", r.outcome.Cost),
	)
}
