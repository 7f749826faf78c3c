package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ANSI sequences used to redraw the grid in place
const (
	clearScreen = "\033[2J"
	cursorHome  = "\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether both stdin and stdout are attached to a terminal
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Fits reports whether a grid of rows x cols, drawn cellWidth columns per cell,
// fits in a width x height terminal with footerLines left below it.
func Fits(rows, cols, cellWidth, footerLines, width, height int) bool {
	return cols*cellWidth <= width && rows+footerLines <= height
}

// CellWidth picks the widest per-cell drawing width (2 or 1) that fits the
// current terminal. Grids that fit neither way are drawn single width.
func CellWidth(rows, cols, footerLines int) int {
	width, height := GetSize()
	return cellWidthFor(rows, cols, footerLines, width, height)
}

func cellWidthFor(rows, cols, footerLines, width, height int) int {
	if Fits(rows, cols, 2, footerLines, width, height) {
		return 2
	}
	return 1
}

// Clear wipes the screen and moves the cursor to the top-left corner
func Clear(w io.Writer) {
	fmt.Fprint(w, clearScreen+cursorHome)
}

// HideCursor hides the cursor while the grid is animated
func HideCursor(w io.Writer) {
	fmt.Fprint(w, hideCursor)
}

// ShowCursor restores the cursor
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, showCursor)
}
