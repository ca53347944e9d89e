package wfc

import "fmt"

// MinSize is the smallest grid with at least one interior cell
const MinSize = 3

// Grid is the flat, row-major lattice of cells owned by a single generation run
type Grid struct {
	Rows, Columns int
	Cells         []*Cell
}

// NewGrid builds the initial lattice. Border cells are collapsed to Empty;
// interior cells start with every placeable terrain as an option.
func NewGrid(rows, columns int) (*Grid, error) {
	if rows != columns {
		return nil, fmt.Errorf("%w: grid must be square, got %dx%d", ErrInvalidSize, columns, rows)
	}
	if rows < MinSize {
		return nil, fmt.Errorf("%w: %dx%d is smaller than %dx%d", ErrInvalidSize, columns, rows, MinSize, MinSize)
	}

	g := &Grid{
		Rows:    rows,
		Columns: columns,
		Cells:   make([]*Cell, 0, rows*columns),
	}

	for row := 0; row < rows; row++ {
		for column := 0; column < columns; column++ {
			var cell *Cell
			if g.IsBorder(column, row) {
				cell = newCell(column, row, Empty)
				cell.collapse(Empty)
			} else {
				cell = newCell(column, row, PlaceableTerrain()...)
			}
			g.Cells = append(g.Cells, cell)
		}
	}

	return g, nil
}

// InBounds reports whether (x, y) lies inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Columns && y >= 0 && y < g.Rows
}

// IsBorder reports whether (x, y) is on the outermost ring
func (g *Grid) IsBorder(x, y int) bool {
	return y == 0 || y == g.Rows-1 || x == 0 || x == g.Columns-1
}

// Index returns the row-major index of (x, y)
func (g *Grid) Index(x, y int) int {
	return y*g.Columns + x
}

// At returns the cell at column x, row y
func (g *Grid) At(x, y int) (*Cell, bool) {
	if !g.InBounds(x, y) {
		return nil, false
	}
	return g.Cells[g.Index(x, y)], true
}

// Neighbor returns the cell one step from c in direction dir
func (g *Grid) Neighbor(c *Cell, dir Direction) (*Cell, bool) {
	dx, dy := dir.Offset()
	return g.At(c.X+dx, c.Y+dy)
}

// Unresolved returns the number of cells not yet collapsed
func (g *Grid) Unresolved() int {
	count := 0
	for _, c := range g.Cells {
		if !c.Collapsed {
			count++
		}
	}
	return count
}

// Terrain returns the resolved terrain at (x, y). ok is false for
// out-of-range or unresolved cells, whose state is undefined.
func (g *Grid) Terrain(x, y int) (Terrain, bool) {
	c, ok := g.At(x, y)
	if !ok || !c.Collapsed {
		return Empty, false
	}
	return c.State, true
}

// TerrainsOr returns every cell's terrain in row-major order, substituting
// fallback for unresolved cells
func (g *Grid) TerrainsOr(fallback Terrain) []Terrain {
	out := make([]Terrain, len(g.Cells))
	for i, c := range g.Cells {
		if c.Collapsed {
			out[i] = c.State
		} else {
			out[i] = fallback
		}
	}
	return out
}

// Count returns how many collapsed cells hold t
func (g *Grid) Count(t Terrain) int {
	count := 0
	for _, c := range g.Cells {
		if c.Collapsed && c.State == t {
			count++
		}
	}
	return count
}
