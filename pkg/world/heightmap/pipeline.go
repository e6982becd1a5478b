// Package heightmap runs the full generation pipeline: raw heightmap
// synthesis, optional erosion, then percentile classification.
package heightmap

import (
	"log/slog"
	"time"

	"github.com/OCharnyshevich/heightmap/pkg/world/classify"
	"github.com/OCharnyshevich/heightmap/pkg/world/erosion"
	"github.com/OCharnyshevich/heightmap/pkg/world/gen"
	"github.com/OCharnyshevich/heightmap/pkg/world/grid"
)

// Result is the classified map handed to renderers.
// Every value in Tiles lies in [0, ClassCount).
type Result struct {
	Tiles      *grid.Grid[int]
	Width      int
	Height     int
	ClassCount int
}

// Pipeline generates classified heightmaps using the strategies of a registry.
type Pipeline struct {
	registry *gen.Registry
	log      *slog.Logger
}

// New creates a Pipeline. A nil log discards pipeline logging.
func New(reg *gen.Registry, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{registry: reg, log: log}
}

// Elevations validates cfg, generates the raw heightmap and applies erosion.
// The returned grid is owned by the caller.
func (p *Pipeline) Elevations(cfg Config) (*grid.Grid[float64], error) {
	if err := cfg.Validate(p.registry); err != nil {
		return nil, err
	}

	ctor, _ := p.registry.Lookup(cfg.Strategy)
	generator := ctor(cfg.Iterations)

	start := time.Now()
	hm := generator.GenerateRaw(cfg.Width, cfg.Height, gen.NewSource(cfg.Seed))
	p.log.Debug("raw heightmap generated",
		"strategy", generator.Name(),
		"width", cfg.Width,
		"height", cfg.Height,
		"iterations", cfg.Iterations,
		"elapsed", time.Since(start),
	)

	if cfg.Erosion > 0 {
		start = time.Now()
		erosion.Smoother{Workers: cfg.Workers}.Apply(hm, cfg.Erosion)
		p.log.Debug("erosion applied", "passes", cfg.Erosion, "workers", cfg.Workers, "elapsed", time.Since(start))
	}
	return hm, nil
}

// Run executes the whole pipeline for cfg.
func (p *Pipeline) Run(cfg Config) (*Result, error) {
	hm, err := p.Elevations(cfg)
	if err != nil {
		return nil, err
	}

	tiles, err := classify.Classify(hm, cfg.Thresholds)
	if err != nil {
		// Thresholds were validated above.
		return nil, &ConfigError{Field: "thresholds", Err: err}
	}

	res := &Result{
		Tiles:      tiles,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ClassCount: cfg.ClassCount(),
	}
	p.log.Debug("heightmap classified", "classes", res.ClassCount, "histogram", classify.Histogram(tiles, res.ClassCount))
	return res, nil
}
