package devtools

import (
	"fmt"
	"sort"
	"strings"

	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/state"
)

// devMaps are hand-drawn grids for reproducing search behavior by eye.
// Every map keeps (0,0) and the bottom-right corner open.
var devMaps = map[string][]string{
	"open": {
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
	},
	"wall": {
		"....#.....",
		"....#.....",
		"....#.....",
		"....#.....",
		"..........",
	},
	"enclosed": {
		"..........",
		"......###.",
		"......#..#",
		"......#.#.",
		"......##..",
	},
	"serpentine": {
		"..........",
		"#########.",
		"..........",
		".#########",
		"..........",
	},
	"trap": {
		"..........",
		".######...",
		"......#...",
		".######...",
		"..........",
	},
}

// DevMapNames returns the available developer map names in sorted order
func DevMapNames() []string {
	names := make([]string, 0, len(devMaps))
	for name := range devMaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DevMap returns the named developer grid. A unique case-insensitive prefix is accepted.
func DevMap(name string) (*world.Grid, error) {
	if lines, ok := devMaps[name]; ok {
		return world.ParseGrid(lines)
	}

	var matches []string
	for _, candidate := range DevMapNames() {
		if strings.HasPrefix(strings.ToLower(candidate), strings.ToLower(name)) {
			matches = append(matches, candidate)
		}
	}
	if len(matches) != 1 {
		return nil, fmt.Errorf("unknown dev map %q (have %v)", name, DevMapNames())
	}
	return world.ParseGrid(devMaps[matches[0]])
}

// SwitchToDevMap replaces the session grid with a developer map and moves the
// endpoints to its top-left and bottom-right corners
func SwitchToDevMap(s *state.Session, name string) error {
	grid, err := DevMap(name)
	if err != nil {
		return err
	}
	s.SetGrid(grid)
	s.Source = world.At(0, 0)
	s.Destination = world.At(grid.Rows()-1, grid.Cols()-1)
	s.Generator = "dev:" + name
	s.ClearMessages()
	s.AddMessage(fmt.Sprintf("Switched to dev map %q", name))
	return nil
}
