package grid

// Grid is a fixed-size 2D array stored row-major.
// Index = y*Width + x.
type Grid[T any] struct {
	Width  int
	Height int
	Cells  []T
}

// New creates a zero-valued Grid of the given dimensions.
// width and height must be at least 1.
func New[T any](width, height int) *Grid[T] {
	return &Grid[T]{
		Width:  width,
		Height: height,
		Cells:  make([]T, width*height),
	}
}

// Index returns the offset of (x, y) in Cells.
func (g *Grid[T]) Index(x, y int) int {
	return y*g.Width + x
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the value stored at (x, y).
func (g *Grid[T]) At(x, y int) T {
	return g.Cells[g.Index(x, y)]
}

// Set stores v at (x, y).
func (g *Grid[T]) Set(x, y int, v T) {
	g.Cells[g.Index(x, y)] = v
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{Width: g.Width, Height: g.Height, Cells: make([]T, len(g.Cells))}
	copy(c.Cells, g.Cells)
	return c
}

// Rows returns the grid as a slice of rows. The rows share storage with Cells.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.Height)
	for y := range rows {
		rows[y] = g.Cells[y*g.Width : (y+1)*g.Width : (y+1)*g.Width]
	}
	return rows
}

// FromRows builds a grid from equally sized rows. It returns nil if rows is
// empty or ragged.
func FromRows[T any](rows [][]T) *Grid[T] {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	g := New[T](len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.Width {
			return nil
		}
		copy(g.Cells[y*g.Width:], row)
	}
	return g
}
