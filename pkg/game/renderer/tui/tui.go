package tui

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/gookit/color"

	"gridpath/pkg/engine/search"
	"gridpath/pkg/engine/terminal"
	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/messages"
	"gridpath/pkg/game/renderer"
	"gridpath/pkg/game/state"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = messages.Get

// footerLines counts the lines RenderFrame prints below the grid
const footerLines = 6 + state.MaxMessages

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out       io.Writer
	delay     time.Duration
	noColor   bool
	cellWidth int

	// session is the last session drawn; search events repaint it
	session *state.Session

	colorAction      color.Style
	colorActionShort color.Style
	colorFound       color.Style
	colorDenied      color.Style
	colorSubtle      color.Style

	regexpStringFunctions *regexp.Regexp
}

// Option configures a TUIRenderer
type Option func(*TUIRenderer)

// WithOutput sends frames to w instead of stdout
func WithOutput(w io.Writer) Option {
	return func(t *TUIRenderer) { t.out = w }
}

// WithDelay animates searches by repainting and pausing after each event.
// The pause happens inside the observer callback, so the search itself is
// held for d on every relaxed cell.
func WithDelay(d time.Duration) Option {
	return func(t *TUIRenderer) { t.delay = d }
}

// WithoutColor draws glyphs instead of colored blocks
func WithoutColor() Option {
	return func(t *TUIRenderer) { t.noColor = true }
}

// New creates a new TUI renderer
func New(opts ...Option) *TUIRenderer {
	t := &TUIRenderer{out: os.Stdout}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorFound = color.Style{color.FgGreen, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	terminal.Clear(t.out)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if t.noColor {
		return text
	}
	switch style {
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleFound:
		return t.colorFound.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system.
// GT{KEY} translates a message key, ACTION{word} highlights the first letter.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ACTION":
			val = t.StyleText(operand[0:1], renderer.StyleActionShort) + t.StyleText(operand[1:], renderer.StyleAction)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// RenderFrame renders the grid, the last outcome, the message log and the prompt
func (t *TUIRenderer) RenderFrame(s *state.Session) {
	t.session = s
	if t.cellWidth == 0 {
		t.cellWidth = terminal.CellWidth(s.Grid.Rows(), s.Grid.Cols(), footerLines)
	}

	var b strings.Builder
	t.writeGrid(&b, s)

	b.WriteString("\n")
	b.WriteString(t.statusLine(s))
	b.WriteString("\n\n")

	for _, msg := range s.Messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(t.FormatText("ACTION{solve}  ACTION{reset}  ACTION{quit}"))
	b.WriteString("\n> ")

	terminal.Clear(t.out)
	fmt.Fprint(t.out, b.String())
}

func (t *TUIRenderer) writeGrid(b *strings.Builder, s *state.Session) {
	for row := 0; row < s.Grid.Rows(); row++ {
		for col := 0; col < s.Grid.Cols(); col++ {
			b.WriteString(t.cell(s, world.At(row, col)))
		}
		b.WriteString("\n")
	}
}

// cell draws one cell cellWidth characters wide
func (t *TUIRenderer) cell(s *state.Session, c world.Coord) string {
	glyph := renderer.Glyph(s, c)
	if t.noColor {
		return strings.Repeat(glyph, t.cellWidth)
	}

	text := strings.Repeat(" ", t.cellWidth)
	if m := s.MarkAt(c); m == state.MarkEndpoint {
		text = glyph + strings.Repeat(" ", t.cellWidth-1)
	}
	return renderer.MarkColor(s.MarkAt(c)).Sprint(text)
}

func (t *TUIRenderer) statusLine(s *state.Session) string {
	base := fmt.Sprintf("%dx%d  %s  %v -> %v", s.Grid.Rows(), s.Grid.Cols(), s.Generator, s.Source, s.Destination)
	switch s.Outcome.Status {
	case search.Succeeded:
		return base + "  " + t.StyleText(fmt.Sprintf("%d steps", s.Outcome.Steps()), renderer.StyleFound)
	case search.Failed, search.Rejected:
		return base + "  " + t.StyleText(s.Outcome.Status.String(), renderer.StyleDenied)
	default:
		return base + "  " + t.StyleText(renderer.Legend(), renderer.StyleSubtle)
	}
}

// animate repaints the current session and pauses when a delay is configured
func (t *TUIRenderer) animate() {
	if t.delay <= 0 || t.session == nil {
		return
	}
	t.RenderFrame(t.session)
	time.Sleep(t.delay)
}

// OnCellRelaxed repaints the grid so the newly relaxed cell shows up
func (t *TUIRenderer) OnCellRelaxed(world.Coord) {
	t.animate()
}

// OnPathFound repaints the grid with the path
func (t *TUIRenderer) OnPathFound([]world.Coord) {
	t.animate()
}

func (t *TUIRenderer) OnSearchFailed() {}

func (t *TUIRenderer) OnRejected(search.Rejection) {}

var _ renderer.Renderer = (*TUIRenderer)(nil)
