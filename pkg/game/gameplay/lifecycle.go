// Package gameplay drives a session: generating grids and running searches over them.
package gameplay

import (
	"fmt"

	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/config"
	"gridpath/pkg/game/generator"
	"gridpath/pkg/game/messages"
	"gridpath/pkg/game/state"
)

// BuildSession creates a session from cfg and generates its first grid
func BuildSession(cfg *config.Config) (*state.Session, generator.GridGenerator, error) {
	gen, err := generator.New(cfg.Grid.Generator, cfg.Grid.Seed, cfg.Grid.BlockedRatio)
	if err != nil {
		return nil, nil, fmt.Errorf("build session: %w", err)
	}

	s := state.NewSession(world.NewGrid(cfg.Grid.Rows, cfg.Grid.Cols), cfg.SourceCoord(), cfg.DestinationCoord())
	s.Seed = cfg.Grid.Seed

	Reset(s, gen)
	return s, gen, nil
}

// Reset replaces the session grid with a freshly generated one of the same size.
// Source and destination are kept open.
func Reset(s *state.Session, gen generator.GridGenerator) {
	rows, cols := s.Grid.Rows(), s.Grid.Cols()
	s.SetGrid(gen.Generate(rows, cols, s.Source, s.Destination))
	s.Generator = gen.Name()
	s.Generation++

	s.ClearMessages()
	logMessage(s, messages.GridReset, s.Generation, rows, cols, s.Generator, s.Seed)
}

// logMessage translates key and appends it to the session log
func logMessage(s *state.Session, key string, vars ...interface{}) {
	s.AddMessage(messages.Get(key, vars...))
}
