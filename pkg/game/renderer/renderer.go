package renderer

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/state"
)

// Glyphs used when colors are disabled and in text dumps
const (
	GlyphOpen        = "."
	GlyphBlocked     = "#"
	GlyphRelaxed     = "o"
	GlyphPath        = "*"
	GlyphSource      = "S"
	GlyphDestination = "D"
)

// Cell colors: relaxed red, path green, blocked black, open white, endpoints blue
var (
	ColorOpen     = color.Style{color.BgWhite}
	ColorBlocked  = color.Style{color.BgBlack}
	ColorRelaxed  = color.Style{color.BgRed}
	ColorPath     = color.Style{color.BgGreen}
	ColorEndpoint = color.Style{color.FgWhite, color.BgBlue, color.OpBold}
)

// Glyph returns the text symbol for the cell at c
func Glyph(s *state.Session, c world.Coord) string {
	switch s.MarkAt(c) {
	case state.MarkEndpoint:
		if c == s.Source {
			return GlyphSource
		}
		return GlyphDestination
	case state.MarkPath:
		return GlyphPath
	case state.MarkRelaxed:
		return GlyphRelaxed
	case state.MarkBlocked:
		return GlyphBlocked
	default:
		return GlyphOpen
	}
}

// MarkColor returns the color used to paint a cell mark
func MarkColor(m state.Mark) color.Style {
	switch m {
	case state.MarkEndpoint:
		return ColorEndpoint
	case state.MarkPath:
		return ColorPath
	case state.MarkRelaxed:
		return ColorRelaxed
	case state.MarkBlocked:
		return ColorBlocked
	default:
		return ColorOpen
	}
}

// Legend lists every glyph with its meaning
func Legend() string {
	return fmt.Sprintf("%s open  %s blocked  %s relaxed  %s path  %s source  %s destination",
		GlyphOpen, GlyphBlocked, GlyphRelaxed, GlyphPath, GlyphSource, GlyphDestination)
}

// TextGrid renders the session as plain text, one line per row
func TextGrid(s *state.Session) string {
	var b strings.Builder
	for row := 0; row < s.Grid.Rows(); row++ {
		for col := 0; col < s.Grid.Cols(); col++ {
			b.WriteString(Glyph(s, world.At(row, col)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
