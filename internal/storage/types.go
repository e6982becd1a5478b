package storage

import (
	"time"

	"github.com/OCharnyshevich/heightmap/internal/config"
	"github.com/OCharnyshevich/heightmap/pkg/world/grid"
	"github.com/OCharnyshevich/heightmap/pkg/world/heightmap"
)

// RunData is the serializable artifact of one pipeline run, the hand-off
// format for renderers.
type RunData struct {
	ID            string               `json:"id"`
	CreatedAt     time.Time            `json:"created_at"`
	Generation    heightmap.Config     `json:"generation"`
	Visualization config.Visualization `json:"visualization"`
	Width         int                  `json:"width"`
	Height        int                  `json:"height"`
	ClassCount    int                  `json:"class_count"`
	Histogram     []int                `json:"histogram"`
	Tiles         [][]int              `json:"tiles"` // tiles[y][x]
}

// Grid rebuilds the classified grid from the stored rows.
func (d *RunData) Grid() *grid.Grid[int] {
	return grid.FromRows(d.Tiles)
}
