// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gridpath/pkg/engine/search"
	"gridpath/pkg/game/renderer"
	"gridpath/pkg/game/state"
)

// DefaultDumpFilename is used when no dump path is configured
const DefaultDumpFilename = "map.txt"

// ErrNoGrid is returned when a session has nothing to export
var ErrNoGrid = errors.New("no grid")

// DumpMapToFile writes a debug dump of the session to path and returns its absolute path:
// metadata, legend, the overlaid map, and the path cell by cell.
func DumpMapToFile(s *state.Session, path string) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create map dump: %w", err)
	}
	defer f.Close()

	if err := WriteMapDump(f, s); err != nil {
		return "", err
	}
	return absPath, nil
}

// WriteMapDump writes the dump format to w
func WriteMapDump(w io.Writer, s *state.Session) error {
	if s == nil || s.Grid == nil {
		return ErrNoGrid
	}

	out := s.Outcome

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "session: %s\n", s.ID)
	fmt.Fprintf(w, "generator: %s\n", s.Generator)
	fmt.Fprintf(w, "seed: %d\n", s.Seed)
	fmt.Fprintf(w, "generation: %d\n", s.Generation)
	fmt.Fprintf(w, "grid_rows: %d\n", s.Grid.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", s.Grid.Cols())
	fmt.Fprintf(w, "blocked_cells: %d\n", s.Grid.BlockedCount())
	fmt.Fprintf(w, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(w, "source: %d,%d\n", s.Source.Row, s.Source.Col)
	fmt.Fprintf(w, "destination: %d,%d\n", s.Destination.Row, s.Destination.Col)
	fmt.Fprintf(w, "status: %s\n", out.Status)
	if out.Rejection != search.NotRejected {
		fmt.Fprintf(w, "rejection: %s\n", out.Rejection)
	}
	fmt.Fprintf(w, "expanded: %d\n", out.Expanded)
	fmt.Fprintf(w, "relaxed: %d\n", out.Relaxed)
	if out.Found() {
		fmt.Fprintf(w, "steps: %d\n", out.Steps())
		fmt.Fprintf(w, "cost: %.4f\n", out.Cost)
	}
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, renderer.Legend())
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	fmt.Fprint(w, renderer.TextGrid(s))
	fmt.Fprintln(w, "")

	// --- Path ---
	fmt.Fprintln(w, "--- Path ---")
	for i, c := range s.Path {
		fmt.Fprintf(w, "  %d: row: %d col: %d\n", i, c.Row, c.Col)
	}

	return nil
}
