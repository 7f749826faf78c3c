package renderer

import (
	"gridpath/pkg/engine/search"
	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleAction
	StyleActionShort
	StyleFound
	StyleDenied
	StyleSubtle
)

// Renderer defines the interface for session rendering backends.
// A renderer is also a search observer so it can animate a running search.
type Renderer interface {
	search.Observer

	// Init initializes the renderer (colors, output, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders the grid, overlay, messages and prompt
	RenderFrame(s *state.Session)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete frame
func RenderFrame(s *state.Session) {
	if Current != nil {
		Current.RenderFrame(s)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return msg
}

// Observer forwards search events to whichever renderer is current when they fire
type Observer struct{}

func (Observer) OnCellRelaxed(c world.Coord) {
	if Current != nil {
		Current.OnCellRelaxed(c)
	}
}

func (Observer) OnPathFound(path []world.Coord) {
	if Current != nil {
		Current.OnPathFound(path)
	}
}

func (Observer) OnSearchFailed() {
	if Current != nil {
		Current.OnSearchFailed()
	}
}

func (Observer) OnRejected(reason search.Rejection) {
	if Current != nil {
		Current.OnRejected(reason)
	}
}
