package wfc

import (
	"sort"
	"testing"

	"github.com/zyedidia/generic/mapset"
)

// scriptedRand always returns pick modulo n
type scriptedRand struct {
	pick int
}

func (r scriptedRand) Intn(n int) int {
	return r.pick % n
}

// permissiveRules lets every placeable terrain sit next to every other
func permissiveRules() *Rules {
	all := PlaceableTerrain()
	return NewRules(
		Uniform(Grass, all...),
		Uniform(Water, all...),
		Uniform(Mountain, all...),
		Uniform(Forest, all...),
		Uniform(Empty, all...),
	)
}

func setOptions(c *Cell, options ...Terrain) {
	c.Options = mapset.New[Terrain]()
	for _, t := range options {
		c.Options.Put(t)
	}
}

func sameTerrain(got, want []Terrain) bool {
	a := append([]Terrain(nil), got...)
	b := append([]Terrain(nil), want...)
	sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func mustGrid(t *testing.T, size int) *Grid {
	t.Helper()
	g, err := NewGrid(size, size)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) failed: %v", size, size, err)
	}
	return g
}

func checkBorder(t *testing.T, g *Grid) {
	t.Helper()
	for _, c := range g.Cells {
		if !g.IsBorder(c.X, c.Y) {
			continue
		}
		if !c.Collapsed || c.State != Empty {
			t.Errorf("border cell (%d,%d) = %s collapsed=%v, want empty collapsed", c.X, c.Y, c.State, c.Collapsed)
		}
	}
}
