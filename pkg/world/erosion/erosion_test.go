package erosion

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/OCharnyshevich/heightmap/pkg/world/gen"
	"github.com/OCharnyshevich/heightmap/pkg/world/grid"
)

func TestZeroPassesIsIdentity(t *testing.T) {
	g := gen.NewRandom().GenerateRaw(9, 7, gen.NewSource(1))
	want := g.Clone()

	Smooth(g, 0)

	if diff := cmp.Diff(want.Cells, g.Cells); diff != "" {
		t.Fatalf("zero passes changed the grid (-want +got):\n%s", diff)
	}
}

func TestSinglePassRow(t *testing.T) {
	g := grid.FromRows([][]float64{{0, 3, 6}})
	require.NotNil(t, g)

	Smooth(g, 1)

	// (2*0+3)/3, (0+2*3+6)/4, (3+2*6)/3
	assert.Equal(t, []float64{1, 3, 5}, g.Cells)
}

func TestSinglePassCorner(t *testing.T) {
	g := grid.FromRows([][]float64{
		{8, 0},
		{0, 0},
	})

	Smooth(g, 1)

	// Every cell sees the whole 2x2 grid; the corner counts double for itself.
	assert.InDelta(t, 16.0/5.0, g.At(0, 0), 1e-12)
	assert.InDelta(t, 8.0/5.0, g.At(1, 0), 1e-12)
	assert.InDelta(t, 8.0/5.0, g.At(0, 1), 1e-12)
	assert.InDelta(t, 8.0/5.0, g.At(1, 1), 1e-12)
}

func TestPassesReadSnapshot(t *testing.T) {
	// If a pass read partially updated values the result would be asymmetric.
	g := grid.FromRows([][]float64{{0, 0, 9, 0, 0}})

	Smooth(g, 1)

	assert.Equal(t, g.At(1, 0), g.At(3, 0))
	assert.Equal(t, g.At(0, 0), g.At(4, 0))
}

func TestConstantGridIsFixedPoint(t *testing.T) {
	g := grid.New[float64](6, 4)
	for i := range g.Cells {
		g.Cells[i] = 2.5
	}

	Smooth(g, 5)

	for i, v := range g.Cells {
		if math.Abs(v-2.5) > 1e-12 {
			t.Fatalf("cell %d = %f, want 2.5", i, v)
		}
	}
}

func TestSingleCellUnchanged(t *testing.T) {
	g := grid.FromRows([][]float64{{-4}})
	Smooth(g, 3)
	assert.Equal(t, -4.0, g.Cells[0])
}

func TestVarianceDecreases(t *testing.T) {
	g := gen.NewRandom().GenerateRaw(40, 40, gen.NewSource(7))
	_, before := stat.MeanVariance(g.Cells, nil)

	Smooth(g, 3)

	_, after := stat.MeanVariance(g.Cells, nil)
	assert.Less(t, after, before/4)
}

func TestApplyKeepsIdentity(t *testing.T) {
	g := gen.NewRandom().GenerateRaw(5, 5, gen.NewSource(3))
	cells := g.Cells

	Smooth(g, 2)

	assert.Same(t, &cells[0], &g.Cells[0], "erosion must update the grid in place")
}

func TestWorkersMatchSequential(t *testing.T) {
	for _, workers := range []int{2, 3, 8, 64} {
		seq := gen.NewRandom().GenerateRaw(23, 17, gen.NewSource(99))
		par := seq.Clone()

		Smooth(seq, 4)
		Smoother{Workers: workers}.Apply(par, 4)

		if diff := cmp.Diff(seq.Cells, par.Cells); diff != "" {
			t.Fatalf("workers=%d differs from sequential (-seq +par):\n%s", workers, diff)
		}
	}
}

func TestRowBands(t *testing.T) {
	tests := []struct {
		height, workers int
		want            [][2]int
	}{
		{5, 0, [][2]int{{0, 5}}},
		{5, 1, [][2]int{{0, 5}}},
		{5, 2, [][2]int{{0, 2}, {2, 5}}},
		{2, 4, [][2]int{{0, 1}, {1, 2}}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rowBands(tt.height, tt.workers), "height=%d workers=%d", tt.height, tt.workers)
	}
}

func TestRowBandsBoundedByWorkers(t *testing.T) {
	for height := 1; height <= 20; height++ {
		for workers := 0; workers <= 10; workers++ {
			bands := rowBands(height, workers)
			require.LessOrEqual(t, len(bands), max(workers, 1), "height=%d workers=%d", height, workers)

			next := 0
			for _, b := range bands {
				require.Equal(t, next, b[0], "height=%d workers=%d", height, workers)
				require.Less(t, b[0], b[1], "height=%d workers=%d", height, workers)
				next = b[1]
			}
			require.Equal(t, height, next, "height=%d workers=%d", height, workers)
		}
	}
}
