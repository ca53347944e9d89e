package wfc

import (
	"github.com/zyedidia/generic/mapset"
)

// Cell represents a single position in the grid during solving
type Cell struct {
	X, Y      int                 // Column and row
	State     Terrain             // The assigned terrain (if collapsed)
	Collapsed bool                // Whether this cell has been assigned
	Options   mapset.Set[Terrain] // Which terrains are still possible
}

func newCell(x, y int, options ...Terrain) *Cell {
	c := &Cell{
		X:       x,
		Y:       y,
		State:   Empty,
		Options: mapset.New[Terrain](),
	}
	for _, t := range options {
		c.Options.Put(t)
	}
	return c
}

// Entropy returns the number of possible states
func (c *Cell) Entropy() int {
	return c.Options.Size()
}

// OptionList returns the remaining options in enum order, so that a seeded
// pick from it is reproducible
func (c *Cell) OptionList() []Terrain {
	return sortedTerrain(c.Options)
}

// Allows reports whether t is still an option for the cell
func (c *Cell) Allows(t Terrain) bool {
	return c.Options.Has(t)
}

// narrow removes every option not in allowed and returns how many were removed
func (c *Cell) narrow(allowed mapset.Set[Terrain]) int {
	var drop []Terrain
	c.Options.Each(func(t Terrain) {
		if !allowed.Has(t) {
			drop = append(drop, t)
		}
	})
	for _, t := range drop {
		c.Options.Remove(t)
	}
	return len(drop)
}

// collapse fixes the cell to t
func (c *Cell) collapse(t Terrain) {
	c.State = t
	c.Collapsed = true
}
