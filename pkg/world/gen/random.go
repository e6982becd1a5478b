package gen

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/OCharnyshevich/heightmap/pkg/world/grid"
)

// Random assigns every cell an independent uniform value in [0, 1).
// There is no spatial correlation; erosion is expected to smooth it.
type Random struct{}

// NewRandom creates a Random generator.
func NewRandom() *Random {
	return &Random{}
}

func (g *Random) Name() string { return StrategyRandom }

func (g *Random) GenerateRaw(width, height int, src *Source) *grid.Grid[float64] {
	hm := grid.New[float64](width, height)
	dist := distuv.Uniform{Min: 0, Max: 1, Src: src}
	for i := range hm.Cells {
		hm.Cells[i] = dist.Rand()
	}
	return hm
}
