package wfc

import "testing"

func TestTerrainString(t *testing.T) {
	tests := []struct {
		terrain Terrain
		want    string
	}{
		{Grass, "grass"},
		{Water, "water"},
		{Mountain, "mountain"},
		{Forest, "forest"},
		{Empty, "empty"},
		{Terrain(42), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.terrain.String(); got != tc.want {
			t.Errorf("Terrain(%d).String() = %q, want %q", int(tc.terrain), got, tc.want)
		}
	}
}

func TestParseTerrain(t *testing.T) {
	for _, terrain := range AllTerrain() {
		got, err := ParseTerrain(terrain.String())
		if err != nil {
			t.Errorf("ParseTerrain(%q) failed: %v", terrain.String(), err)
			continue
		}
		if got != terrain {
			t.Errorf("ParseTerrain(%q) = %s, want %s", terrain.String(), got, terrain)
		}
	}

	if got, err := ParseTerrain("  Forest "); err != nil || got != Forest {
		t.Errorf("ParseTerrain(\"  Forest \") = %s, %v; want forest", got, err)
	}

	if _, err := ParseTerrain("lava"); err == nil {
		t.Error("ParseTerrain(\"lava\") should fail")
	}
}

func TestTerrainPlaceable(t *testing.T) {
	for _, terrain := range PlaceableTerrain() {
		if !terrain.Placeable() {
			t.Errorf("%s should be placeable", terrain)
		}
	}
	if Empty.Placeable() {
		t.Error("empty should not be placeable")
	}
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir      Direction
		opposite Direction
	}{
		{North, South},
		{NorthEast, SouthWest},
		{East, West},
		{SouthEast, NorthWest},
		{South, North},
		{SouthWest, NorthEast},
		{West, East},
		{NorthWest, SouthEast},
	}

	for _, tc := range tests {
		if got := tc.dir.Opposite(); got != tc.opposite {
			t.Errorf("%s.Opposite() = %s, want %s", tc.dir, got, tc.opposite)
		}
	}
}

func TestDirectionOffsetsCancel(t *testing.T) {
	seen := make(map[[2]int]bool)
	for _, dir := range AllDirections() {
		dx, dy := dir.Offset()
		ox, oy := dir.Opposite().Offset()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%s and its opposite do not cancel: (%d,%d) + (%d,%d)", dir, dx, dy, ox, oy)
		}
		if dx == 0 && dy == 0 {
			t.Errorf("%s has a zero offset", dir)
		}
		seen[[2]int{dx, dy}] = true
	}
	if len(seen) != 8 {
		t.Errorf("got %d distinct offsets, want 8", len(seen))
	}
}
