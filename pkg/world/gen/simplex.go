package gen

import "github.com/OCharnyshevich/heightmap/pkg/world/grid"

const (
	simplexPersistence = 0.5
	// simplexFeatures is roughly how many hills span the longer map side.
	simplexFeatures = 4.0
)

// Simplex fills the map with layered simplex noise. Octaves is taken from
// the run's iteration count and is clamped to at least one.
type Simplex struct {
	Octaves int
}

// NewSimplex creates a Simplex generator with the given octave count.
func NewSimplex(octaves int) *Simplex {
	return &Simplex{Octaves: max(octaves, 1)}
}

func (g *Simplex) Name() string { return StrategySimplex }

func (g *Simplex) GenerateRaw(width, height int, src *Source) *grid.Grid[float64] {
	noise := newSimplexNoise(src)
	// Random offset so that maps from different seeds do not share the origin.
	ox := src.Float64() * 256
	oy := src.Float64() * 256
	scale := simplexFeatures / float64(max(width, height))

	hm := grid.New[float64](width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			hm.Set(x, y, noise.OctaveNoise2D(ox+float64(x)*scale, oy+float64(y)*scale, g.Octaves, simplexPersistence))
		}
	}
	return hm
}
