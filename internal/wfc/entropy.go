package wfc

// Intner is the slice of *rand.Rand the solver needs. Tests may supply a
// scripted source.
type Intner interface {
	Intn(n int) int
}

// PickLowestEntropy returns an uncollapsed cell with the fewest options,
// chosen uniformly among ties. ok is false once every cell is collapsed.
func PickLowestEntropy(g *Grid, rnd Intner) (*Cell, bool) {
	var candidates []*Cell
	lowest := -1

	for _, c := range g.Cells {
		if c.Collapsed {
			continue
		}
		e := c.Entropy()
		switch {
		case lowest == -1 || e < lowest:
			lowest = e
			candidates = append(candidates[:0], c)
		case e == lowest:
			candidates = append(candidates, c)
		}
	}

	if len(candidates) == 0 {
		return nil, false
	}
	return candidates[rnd.Intn(len(candidates))], true
}
