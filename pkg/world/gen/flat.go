package gen

import "github.com/OCharnyshevich/heightmap/pkg/world/grid"

// Flat generates an all-zero heightmap. It draws nothing from the source.
type Flat struct{}

// NewFlat creates a Flat generator.
func NewFlat() *Flat {
	return &Flat{}
}

func (g *Flat) Name() string { return StrategyFlat }

func (g *Flat) GenerateRaw(width, height int, _ *Source) *grid.Grid[float64] {
	return grid.New[float64](width, height)
}
