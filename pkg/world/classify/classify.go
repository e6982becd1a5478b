// Package classify buckets continuous elevations into tile classes by
// population percentile rather than by absolute height.
//
// Boundaries use the nearest-rank rule: for n cells and threshold p the
// boundary is the ceil(p*n)-th smallest elevation. A cell belongs to class j
// when exactly j boundaries lie strictly below its elevation, so cells with
// equal elevation always share a class.
package classify

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/OCharnyshevich/heightmap/pkg/world/grid"
)

// ValidateThresholds checks that thresholds are strictly increasing and lie
// inside the open interval (0, 1). An empty list is valid.
func ValidateThresholds(thresholds []float64) error {
	for i, t := range thresholds {
		if !(t > 0 && t < 1) {
			return fmt.Errorf("threshold %d is %v, must be within (0,1)", i, t)
		}
		if i > 0 && t <= thresholds[i-1] {
			return fmt.Errorf("threshold %d is %v, must be greater than %v", i, t, thresholds[i-1])
		}
	}
	return nil
}

// ClassCount returns the number of classes produced by thresholds.
func ClassCount(thresholds []float64) int {
	return len(thresholds) + 1
}

// rankEpsilon absorbs rounding in p*n so that products such as 0.07*100
// (7.000000000000001) still select rank 7.
const rankEpsilon = 1e-9

// Boundaries returns the elevation at each threshold percentile of sorted,
// which must be in ascending order and non-empty.
func Boundaries(sorted, thresholds []float64) []float64 {
	n := len(sorted)
	bounds := make([]float64, len(thresholds))
	for i, p := range thresholds {
		bounds[i] = sorted[nearestRank(p, n)-1]
	}
	return bounds
}

// nearestRank returns ceil(p*n) clamped to [1, n].
func nearestRank(p float64, n int) int {
	k := int(math.Ceil(p*float64(n) - rankEpsilon))
	return min(max(k, 1), n)
}

// Classify maps every cell of g to its percentile class. g is not modified.
func Classify(g *grid.Grid[float64], thresholds []float64) (*grid.Grid[int], error) {
	if err := ValidateThresholds(thresholds); err != nil {
		return nil, err
	}

	tiles := grid.New[int](g.Width, g.Height)
	if len(thresholds) == 0 || len(g.Cells) == 0 {
		return tiles, nil
	}

	sorted := slices.Clone(g.Cells)
	slices.Sort(sorted)
	bounds := Boundaries(sorted, thresholds)

	for i, v := range g.Cells {
		tiles.Cells[i] = sort.SearchFloat64s(bounds, v)
	}
	return tiles, nil
}

// Histogram counts the cells of tiles in each of classCount classes.
// Values outside [0, classCount) are ignored.
func Histogram(tiles *grid.Grid[int], classCount int) []int {
	counts := make([]int, classCount)
	for _, c := range tiles.Cells {
		if c >= 0 && c < classCount {
			counts[c]++
		}
	}
	return counts
}
