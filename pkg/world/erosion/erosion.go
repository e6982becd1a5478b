// Package erosion smooths raw heightmaps by repeated neighbour averaging.
package erosion

import (
	"golang.org/x/sync/errgroup"

	"github.com/OCharnyshevich/heightmap/pkg/world/grid"
)

const (
	centreWeight    = 2.0
	neighbourWeight = 1.0
)

// Smoother applies erosion passes to an elevation grid.
// Each cell becomes the weighted mean of itself (weight 2) and its in-bounds
// 8-connected neighbours (weight 1). Every pass reads a snapshot of the
// previous pass, so the result does not depend on scan order or Workers.
type Smoother struct {
	// Workers is the number of row bands smoothed concurrently per pass.
	// Values below 2 smooth on the calling goroutine.
	Workers int
}

// Smooth runs passes erosion passes on g on the calling goroutine.
func Smooth(g *grid.Grid[float64], passes int) {
	Smoother{}.Apply(g, passes)
}

// Apply runs passes erosion passes on g in place. passes <= 0 leaves g untouched.
func (s Smoother) Apply(g *grid.Grid[float64], passes int) {
	if passes <= 0 {
		return
	}

	snapshot := g.Clone()
	bands := rowBands(g.Height, s.Workers)

	for i := range passes {
		if i > 0 {
			copy(snapshot.Cells, g.Cells)
		}

		if len(bands) == 1 {
			smoothRows(g, snapshot, 0, g.Height)
			continue
		}

		var eg errgroup.Group
		eg.SetLimit(len(bands))
		for _, b := range bands {
			eg.Go(func() error {
				smoothRows(g, snapshot, b[0], b[1])
				return nil
			})
		}
		// Bands never fail; Wait is the pass barrier.
		_ = eg.Wait()
	}
}

// smoothRows writes the smoothed values of rows [y0, y1) into g,
// reading only from prev.
func smoothRows(g, prev *grid.Grid[float64], y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < g.Width; x++ {
			sum := prev.At(x, y) * centreWeight
			weight := centreWeight
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if (dx == 0 && dy == 0) || !prev.InBounds(nx, ny) {
						continue
					}
					sum += prev.At(nx, ny) * neighbourWeight
					weight += neighbourWeight
				}
			}
			g.Set(x, y, sum/weight)
		}
	}
}

// rowBands splits height rows into at most workers contiguous [start, end) bands.
func rowBands(height, workers int) [][2]int {
	n := min(max(workers, 1), height)
	bands := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		bands = append(bands, [2]int{i * height / n, (i + 1) * height / n})
	}
	return bands
}
