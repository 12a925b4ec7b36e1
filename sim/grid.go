package sim

// Grid is the static tile map for a level. Cells are stored row-major,
// one int code per tile: 0 is empty, any nonzero code is solid (the code
// also selects a render color in the shell).
//
// The grid is fixed for the lifetime of a level and is never mutated
// while the simulation runs.
type Grid struct {
	width  int
	height int
	cells  []int
}

// NewGrid builds a grid from row-major cell codes. len(cells) must equal
// width*height; the caller (world construction) validates that.
func NewGrid(width, height int, cells []int) *Grid {
	return &Grid{width: width, height: height, cells: cells}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// CodeAt returns the tile code at (tx, ty). Out-of-range lookups return 0.
// Boundary policy: map edges are open, so an entity that walks past the
// last solid column simply falls off the level. Keep this consistent with
// SolidAt.
func (g *Grid) CodeAt(tx, ty int) int {
	if tx < 0 || tx >= g.width || ty < 0 || ty >= g.height {
		return 0
	}
	return g.cells[tx+g.width*ty]
}

// SolidAt reports whether the tile at (tx, ty) blocks movement.
func (g *Grid) SolidAt(tx, ty int) bool {
	return g.CodeAt(tx, ty) != 0
}
