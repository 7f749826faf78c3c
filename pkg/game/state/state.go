// Package state holds the interactive session: the grid, its endpoints and the
// overlay left behind by the last search.
package state

import (
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"gridpath/pkg/engine/search"
	"gridpath/pkg/engine/world"
)

// MaxMessages is how many log lines a session keeps
const MaxMessages = 5

// Mark is what a renderer should draw for a cell
type Mark int

// Cell marks, in increasing precedence
const (
	MarkOpen Mark = iota
	MarkBlocked
	MarkRelaxed
	MarkPath
	MarkEndpoint
)

func (m Mark) String() string {
	switch m {
	case MarkOpen:
		return "open"
	case MarkBlocked:
		return "blocked"
	case MarkRelaxed:
		return "relaxed"
	case MarkPath:
		return "path"
	case MarkEndpoint:
		return "endpoint"
	default:
		return "unknown"
	}
}

// Session represents one interactive pathfinding session
type Session struct {
	ID uuid.UUID

	Grid        *world.Grid
	Source      world.Coord
	Destination world.Coord

	Generator  string
	Seed       int64
	Generation int

	// Overlay of the last search
	Relaxed mapset.Set[world.Coord]
	Path    []world.Coord
	onPath  mapset.Set[world.Coord]
	Outcome search.Outcome

	Solves   int
	Messages []string
}

// NewSession creates a session over grid with the given endpoints
func NewSession(grid *world.Grid, source, destination world.Coord) *Session {
	return &Session{
		ID:          uuid.New(),
		Grid:        grid,
		Source:      source,
		Destination: destination,
		Relaxed:     mapset.New[world.Coord](),
		onPath:      mapset.New[world.Coord](),
		Messages:    make([]string, 0),
	}
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)

	// Keep only the last MaxMessages
	if len(s.Messages) > MaxMessages {
		s.Messages = s.Messages[len(s.Messages)-MaxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}

// ClearOverlay forgets everything the last search painted
func (s *Session) ClearOverlay() {
	s.Relaxed = mapset.New[world.Coord]()
	s.onPath = mapset.New[world.Coord]()
	s.Path = nil
	s.Outcome = search.Outcome{}
}

// SetGrid replaces the grid and clears the overlay
func (s *Session) SetGrid(grid *world.Grid) {
	s.Grid = grid
	s.ClearOverlay()
}

// MarkAt returns how the cell at c should be drawn
func (s *Session) MarkAt(c world.Coord) Mark {
	switch {
	case c == s.Source || c == s.Destination:
		return MarkEndpoint
	case s.onPath.Has(c):
		return MarkPath
	case s.Relaxed.Has(c):
		return MarkRelaxed
	case !s.Grid.IsOpen(c):
		return MarkBlocked
	default:
		return MarkOpen
	}
}

// ForEachMark calls fn for every cell in row-major order with its mark
func (s *Session) ForEachMark(fn func(c world.Coord, m Mark)) {
	s.Grid.ForEachCell(func(c world.Coord, _ world.CellState) {
		fn(c, s.MarkAt(c))
	})
}

// OnCellRelaxed adds c to the relaxed overlay
func (s *Session) OnCellRelaxed(c world.Coord) {
	s.Relaxed.Put(c)
}

// OnPathFound stores a copy of the path
func (s *Session) OnPathFound(path []world.Coord) {
	s.Path = append([]world.Coord(nil), path...)
	for _, c := range path {
		s.onPath.Put(c)
	}
}

func (s *Session) OnSearchFailed() {}

func (s *Session) OnRejected(search.Rejection) {}

var _ search.Observer = (*Session)(nil)
