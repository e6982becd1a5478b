package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/heightmap/pkg/world/gen"
	"github.com/OCharnyshevich/heightmap/pkg/world/heightmap"
)

const scenarioJSON = `{
  "generation": {
    "strategy": "random",
    "seed": 42,
    "thresholds": [0.25, 0.75],
    "width": 40,
    "height": 30,
    "erosion": 3
  },
  "visualization": {
    "strategy": "hex",
    "edgelen": 6,
    "filename": "map.png",
    "colors": [[0, 0, 255], [0, 200, 0], [120, 120, 120]]
  }
}`

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate(gen.DefaultRegistry()))
}

func TestParseScenario(t *testing.T) {
	cfg, err := Parse([]byte(scenarioJSON))
	require.NoError(t, err)

	g := cfg.Generation
	assert.Equal(t, "random", g.Strategy)
	assert.Equal(t, int64(42), g.Seed)
	assert.Equal(t, []float64{0.25, 0.75}, g.Thresholds)
	assert.Equal(t, 40, g.Width)
	assert.Equal(t, 30, g.Height)
	assert.Equal(t, 3, g.Erosion)
	// Omitted fields keep their defaults.
	assert.Equal(t, DefaultConfig().Generation.Iterations, g.Iterations)

	v := cfg.Visualization
	assert.Equal(t, "hex", v.Strategy)
	assert.Equal(t, 6, v.EdgeLen)
	assert.Equal(t, [3]uint8{0, 200, 0}, v.Colors[1])

	assert.NoError(t, cfg.Validate(gen.DefaultRegistry()))
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse([]byte(`{"generation": {"width": "wide"}}`))
	assert.Error(t, err)
}

func TestMergeKeepsExplicitFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generation.Seed = 7
	cfg.Generation.Width = 99

	fromFile, err := Parse([]byte(scenarioJSON))
	require.NoError(t, err)

	Merge(cfg, fromFile, map[string]bool{"seed": true, "width": true})

	assert.Equal(t, int64(7), cfg.Generation.Seed)
	assert.Equal(t, 99, cfg.Generation.Width)
	assert.Equal(t, "random", cfg.Generation.Strategy)
	assert.Equal(t, 30, cfg.Generation.Height)
	assert.Equal(t, "hex", cfg.Visualization.Strategy)
}

func TestValidatePaletteLength(t *testing.T) {
	cfg, err := Parse([]byte(scenarioJSON))
	require.NoError(t, err)
	cfg.Visualization.Colors = cfg.Visualization.Colors[:2]

	err = cfg.Validate(gen.DefaultRegistry())
	require.Error(t, err)

	var cerr *heightmap.ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "visualization.colors", cerr.Field)
}

func TestValidateGenerationFirst(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generation.Thresholds = []float64{0.9, 0.1}

	err := cfg.Validate(gen.DefaultRegistry())

	var cerr *heightmap.ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "thresholds", cerr.Field)
}
