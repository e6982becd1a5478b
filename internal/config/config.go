package config

import (
	"encoding/json"
	"fmt"

	"github.com/OCharnyshevich/heightmap/pkg/world/gen"
	"github.com/OCharnyshevich/heightmap/pkg/world/heightmap"
)

// Config holds a full scenario: how to generate the map and what the
// renderer should do with it.
type Config struct {
	Generation    heightmap.Config `json:"generation"`
	Visualization Visualization    `json:"visualization"`

	// Runtime settings, never read from scenario files.
	Scenario string `json:"-"` // go-getter source of the scenario file
	DataDir  string `json:"-"` // directory run artifacts are written to
	LogLevel string `json:"-"`
}

// Visualization is passed through untouched to the renderer, apart from the
// palette length check in Validate.
type Visualization struct {
	Strategy string     `json:"strategy,omitempty"` // "rect" or "hex"
	Colors   [][3]uint8 `json:"colors,omitempty"`   // one RGB triple per tile class
	Filename string     `json:"filename,omitempty"`
	SideLenX int        `json:"sidelen_x,omitempty"`
	SideLenY int        `json:"sidelen_y,omitempty"`
	EdgeLen  int        `json:"edgelen,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Generation: heightmap.Config{
			Strategy:   gen.StrategyLinearFault,
			Iterations: 200,
			Thresholds: []float64{0.3, 0.5, 0.7, 0.9},
			Width:      64,
			Height:     64,
			Erosion:    2,
		},
		DataDir:  "data",
		LogLevel: "info",
	}
}

// Parse decodes a scenario file on top of DefaultConfig.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["strategy"] {
		cfg.Generation.Strategy = fromFile.Generation.Strategy
	}
	if !explicitFlags["seed"] {
		cfg.Generation.Seed = fromFile.Generation.Seed
	}
	if !explicitFlags["iterations"] {
		cfg.Generation.Iterations = fromFile.Generation.Iterations
	}
	if !explicitFlags["thresholds"] {
		cfg.Generation.Thresholds = fromFile.Generation.Thresholds
	}
	if !explicitFlags["width"] {
		cfg.Generation.Width = fromFile.Generation.Width
	}
	if !explicitFlags["height"] {
		cfg.Generation.Height = fromFile.Generation.Height
	}
	if !explicitFlags["erosion"] {
		cfg.Generation.Erosion = fromFile.Generation.Erosion
	}
	if !explicitFlags["workers"] {
		cfg.Generation.Workers = fromFile.Generation.Workers
	}
	cfg.Visualization = fromFile.Visualization
}

// Validate checks the generation parameters against reg and that a palette,
// when given, has one color per tile class. Errors are *heightmap.ConfigError.
func (c *Config) Validate(reg *gen.Registry) error {
	if err := c.Generation.Validate(reg); err != nil {
		return err
	}
	if n := len(c.Visualization.Colors); n > 0 && n != c.Generation.ClassCount() {
		return &heightmap.ConfigError{
			Field: "visualization.colors",
			Err:   fmt.Errorf("got %d colors for %d tile classes", n, c.Generation.ClassCount()),
		}
	}
	return nil
}
