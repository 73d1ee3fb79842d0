package qrstyle

// ModuleGrid is an immutable N×N bitmap of QR modules, true means dark.
type ModuleGrid struct {
	size  int
	cells []bool
}

// NewModuleGrid copies rows into a grid. rows must be square and non-empty.
func NewModuleGrid(rows [][]bool) (*ModuleGrid, error) {
	n := len(rows)
	if n == 0 {
		return nil, invalidf("empty module grid")
	}

	g := newModuleGrid(n)
	for row, cols := range rows {
		if len(cols) != n {
			return nil, invalidf("module grid row(%d) has %d cells, want %d", row, len(cols), n)
		}
		copy(g.cells[row*n:], cols)
	}

	return g, nil
}

func newModuleGrid(size int) *ModuleGrid {
	return &ModuleGrid{
		size:  size,
		cells: make([]bool, size*size),
	}
}

func (g *ModuleGrid) set(row, col int, dark bool) {
	g.cells[row*g.size+col] = dark
}

// Size returns N, the number of modules on a side.
func (g *ModuleGrid) Size() int {
	return g.size
}

// Dark reports whether the module at (row, col) is dark. Positions outside
// the grid are light.
func (g *ModuleGrid) Dark(row, col int) bool {
	if row < 0 || col < 0 || row >= g.size || col >= g.size {
		return false
	}
	return g.cells[row*g.size+col]
}
