package gen

import "github.com/OCharnyshevich/heightmap/pkg/world/grid"

// LinearFault builds terrain by repeatedly cutting the map with a random
// straight line and raising every cell on one side of it by one unit.
type LinearFault struct {
	Iterations int
}

// NewLinearFault creates a LinearFault generator running the given number of faults.
func NewLinearFault(iterations int) *LinearFault {
	return &LinearFault{Iterations: iterations}
}

func (g *LinearFault) Name() string { return StrategyLinearFault }

func (g *LinearFault) GenerateRaw(width, height int, src *Source) *grid.Grid[float64] {
	hm := grid.New[float64](width, height)

	for range g.Iterations {
		f := randomFault(width, height, src)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if f.raises(float64(x), float64(y)) {
					hm.Cells[hm.Index(x, y)]++
				}
			}
		}
	}
	return hm
}

// fault is a line through two distinct points plus the side that gets raised.
type fault struct {
	x1, y1, x2, y2 float64
	side           int // 0: <, 1: <=, 2: >, 3: >=
}

// randomFault draws two distinct points inside the map, redrawing the second
// while it coincides with the first, then picks the raised side.
func randomFault(width, height int, src *Source) fault {
	w, h := float64(width), float64(height)
	f := fault{x1: src.Float64() * w, y1: src.Float64() * h}
	for {
		f.x2 = src.Float64() * w
		f.y2 = src.Float64() * h
		if f.x2 != f.x1 || f.y2 != f.y1 {
			break
		}
	}
	f.side = src.IntN(4)
	return f
}

// raises reports whether the cell at (cx, cy) lies on the raised side.
func (f fault) raises(cx, cy float64) bool {
	cross := (f.x2-f.x1)*(cy-f.y1) - (f.y2-f.y1)*(cx-f.x1)
	switch f.side {
	case 0:
		return cross < 0
	case 1:
		return cross <= 0
	case 2:
		return cross > 0
	default:
		return cross >= 0
	}
}
