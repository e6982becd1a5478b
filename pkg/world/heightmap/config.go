package heightmap

import (
	"strings"

	"github.com/OCharnyshevich/heightmap/pkg/world/classify"
	"github.com/OCharnyshevich/heightmap/pkg/world/gen"
)

// Config holds the parameters of one generation run.
type Config struct {
	Strategy   string    `json:"strategy"`   // registry name, e.g. "linear-fault" or "random"
	Seed       int64     `json:"seed"`
	Iterations int       `json:"iterations"` // faults for linear-fault, octaves for simplex
	Thresholds []float64 `json:"thresholds"` // strictly increasing, each in (0,1)
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Erosion    int       `json:"erosion"` // smoothing passes, 0 = none
	Workers    int       `json:"workers,omitempty"`
}

// ClassCount returns the number of tile classes the config produces.
func (c *Config) ClassCount() int {
	return classify.ClassCount(c.Thresholds)
}

// Validate checks c against reg. The returned error is always a *ConfigError.
func (c *Config) Validate(reg *gen.Registry) error {
	if _, ok := reg.Lookup(c.Strategy); !ok {
		return configErrorf("strategy", "unknown strategy %q (known: %s)", c.Strategy, strings.Join(reg.Names(), ", "))
	}
	if c.Width < 1 {
		return configErrorf("width", "must be at least 1, got %d", c.Width)
	}
	if c.Height < 1 {
		return configErrorf("height", "must be at least 1, got %d", c.Height)
	}
	if c.Iterations < 0 {
		return configErrorf("iterations", "must be non-negative, got %d", c.Iterations)
	}
	if c.Erosion < 0 {
		return configErrorf("erosion", "must be non-negative, got %d", c.Erosion)
	}
	if c.Workers < 0 {
		return configErrorf("workers", "must be non-negative, got %d", c.Workers)
	}
	if err := classify.ValidateThresholds(c.Thresholds); err != nil {
		return &ConfigError{Field: "thresholds", Err: err}
	}
	return nil
}
