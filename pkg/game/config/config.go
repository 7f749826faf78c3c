// Package config loads the YAML settings for a grid session.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/generator"
)

// Config is the full session configuration.
//
// Zero values are replaced by defaults in Load, so a file only needs the
// keys it wants to change. A missing destination is resolved against the
// grid size when it is read, so resizing the grid moves it along.
type Config struct {
	Grid        GridConfig    `yaml:"grid"`
	Source      *Point        `yaml:"source"`
	Destination *Point        `yaml:"destination"`
	Render      RenderConfig  `yaml:"render"`
	Export      ExportConfig  `yaml:"export"`
	Metrics     MetricsConfig `yaml:"metrics"`
	Locale      LocaleConfig  `yaml:"locale"`
}

// GridConfig controls the size and generation of the occupancy grid
type GridConfig struct {
	Rows         int     `yaml:"rows"`
	Cols         int     `yaml:"cols"`
	BlockedRatio float64 `yaml:"blocked_ratio"`
	Seed         int64   `yaml:"seed"`
	Generator    string  `yaml:"generator"`
}

// Point is a (row, col) pair in the config file
type Point struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Coord converts the point to a grid coordinate
func (p Point) Coord() world.Coord {
	return world.At(p.Row, p.Col)
}

// RenderConfig controls terminal drawing
type RenderConfig struct {
	DelayMS int  `yaml:"delay_ms"`
	NoColor bool `yaml:"no_color"`
}

// ExportConfig names optional output files written after a solve
type ExportConfig struct {
	PNG   string `yaml:"png"`
	Scale int    `yaml:"scale"`
	Dump  string `yaml:"dump"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// LocaleConfig selects the message catalog language
type LocaleConfig struct {
	Lang string `yaml:"lang"`
}

// Defaults
const (
	DefaultScale = 16
	DefaultLang  = "en_GB"
)

// Default returns a configuration with every default applied
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads, fills and validates the config at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data, fills defaults and validates
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Grid.Rows == 0 {
		c.Grid.Rows = world.DefaultRows
	}
	if c.Grid.Cols == 0 {
		c.Grid.Cols = world.DefaultCols
	}
	if c.Grid.BlockedRatio == 0 {
		c.Grid.BlockedRatio = generator.DefaultBlockedRatio
	}
	if c.Grid.Generator == "" {
		c.Grid.Generator = generator.NameNoise
	}
	if c.Source == nil {
		c.Source = &Point{}
	}
	if c.Export.Scale == 0 {
		c.Export.Scale = DefaultScale
	}
	if c.Locale.Lang == "" {
		c.Locale.Lang = DefaultLang
	}
}

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid setting")

// Validate checks the configuration values are usable
func (c *Config) Validate() error {
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Grid.Rows, c.Grid.Cols)
	}
	if c.Grid.BlockedRatio < 0 || c.Grid.BlockedRatio >= 1 {
		return fmt.Errorf("%w: blocked_ratio must be in [0, 1), got %.2f", ErrInvalid, c.Grid.BlockedRatio)
	}
	if _, err := generator.New(c.Grid.Generator, 0, 0); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Render.DelayMS < 0 {
		return fmt.Errorf("%w: delay_ms must not be negative, got %d", ErrInvalid, c.Render.DelayMS)
	}
	if c.Export.Scale < 1 {
		return fmt.Errorf("%w: export scale must be positive, got %d", ErrInvalid, c.Export.Scale)
	}
	// Endpoints outside the grid are allowed; the search rejects them with a message
	return nil
}

// SourceCoord returns the configured source cell
func (c *Config) SourceCoord() world.Coord {
	return c.Source.Coord()
}

// DestinationCoord returns the configured destination cell, or the
// bottom-right corner of the grid when none is set
func (c *Config) DestinationCoord() world.Coord {
	if c.Destination == nil {
		return world.At(c.Grid.Rows-1, c.Grid.Cols-1)
	}
	return c.Destination.Coord()
}
