package search

import (
	"gridpath/pkg/engine/world"
)

// Observer receives search progress. Implementations must return promptly;
// the search does not wait on anything they start.
type Observer interface {
	// OnCellRelaxed fires each time a cell's best-known cost improves
	OnCellRelaxed(c world.Coord)

	// OnPathFound fires once with the full source-to-destination path
	OnPathFound(path []world.Coord)

	// OnSearchFailed fires once when the frontier is exhausted
	OnSearchFailed()

	// OnRejected fires once, before the main loop, when the input is refused
	OnRejected(reason Rejection)
}

// NopObserver ignores every event
type NopObserver struct{}

func (NopObserver) OnCellRelaxed(world.Coord) {}
func (NopObserver) OnPathFound([]world.Coord) {}
func (NopObserver) OnSearchFailed() {}
func (NopObserver) OnRejected(Rejection) {}

// Observers fans every event out to each member in order
type Observers []Observer

func (o Observers) OnCellRelaxed(c world.Coord) {
	for _, obs := range o {
		obs.OnCellRelaxed(c)
	}
}

func (o Observers) OnPathFound(path []world.Coord) {
	for _, obs := range o {
		obs.OnPathFound(path)
	}
}

func (o Observers) OnSearchFailed() {
	for _, obs := range o {
		obs.OnSearchFailed()
	}
}

func (o Observers) OnRejected(reason Rejection) {
	for _, obs := range o {
		obs.OnRejected(reason)
	}
}

// EventKind identifies a recorded event
type EventKind int

// Event kinds
const (
	EventRelaxed EventKind = iota
	EventPathFound
	EventFailed
	EventRejected
)

// Event is one observed notification
type Event struct {
	Kind      EventKind
	Coord     world.Coord
	Path      []world.Coord
	Rejection Rejection
}

// Recorder keeps every event it sees, in order
type Recorder struct {
	Events []Event
}

func (r *Recorder) OnCellRelaxed(c world.Coord) {
	r.Events = append(r.Events, Event{Kind: EventRelaxed, Coord: c})
}

func (r *Recorder) OnPathFound(path []world.Coord) {
	p := make([]world.Coord, len(path))
	copy(p, path)
	r.Events = append(r.Events, Event{Kind: EventPathFound, Path: p})
}

func (r *Recorder) OnSearchFailed() {
	r.Events = append(r.Events, Event{Kind: EventFailed})
}

func (r *Recorder) OnRejected(reason Rejection) {
	r.Events = append(r.Events, Event{Kind: EventRejected, Rejection: reason})
}

// Relaxed returns the coordinates of all relax events, in order
func (r *Recorder) Relaxed() []world.Coord {
	var out []world.Coord
	for _, e := range r.Events {
		if e.Kind == EventRelaxed {
			out = append(out, e.Coord)
		}
	}
	return out
}

// Count returns how many events of kind k were recorded
func (r *Recorder) Count(k EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
