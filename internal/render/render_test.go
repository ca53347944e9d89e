package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ColfrozenlIquid/wave-function-collapse/internal/wfc"
)

func TestSpriteIndex(t *testing.T) {
	tests := []struct {
		terrain wfc.Terrain
		index   int
	}{
		{wfc.Forest, 2},
		{wfc.Grass, 0},
		{wfc.Water, 1},
		{wfc.Mountain, 3},
		{wfc.Empty, 4},
	}

	for _, tc := range tests {
		if got := SpriteIndex(tc.terrain); got != tc.index {
			t.Errorf("SpriteIndex(%s) = %d, want %d", tc.terrain, got, tc.index)
		}
	}
}

func TestTilePosition(t *testing.T) {
	x, y := TilePosition(3, 5, 16, DefaultOrigin)
	if x != -152 || y != -120 {
		t.Errorf("TilePosition(3, 5) = (%v, %v), want (-152, -120)", x, y)
	}
}

func solvedGrid(t *testing.T) *wfc.Grid {
	t.Helper()
	g, err := wfc.NewGrid(4, 4)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	solver := wfc.NewSolver(g, wfc.DefaultRules(), 1)
	solver.MaxIterations = 1
	if _, err := solver.SolveFrom(1, 1); err != nil {
		t.Fatalf("SolveFrom failed: %v", err)
	}
	return g
}

func TestPlacementsSkipUnresolved(t *testing.T) {
	g := solvedGrid(t)

	placements := Placements(g, 16, 0)
	// 12 border cells, the start cell and one more collapse
	if len(placements) != 14 {
		t.Fatalf("len(Placements) = %d, want 14", len(placements))
	}

	for _, p := range placements {
		want, ok := g.Terrain(p.Column, p.Row)
		if !ok {
			t.Errorf("placement for unresolved cell (%d,%d)", p.Column, p.Row)
			continue
		}
		if p.Sprite != SpriteIndex(want) {
			t.Errorf("(%d,%d) sprite = %d, want %d", p.Column, p.Row, p.Sprite, SpriteIndex(want))
		}
		if p.X != float64(p.Column*16) || p.Y != float64(p.Row*16) {
			t.Errorf("(%d,%d) placed at (%v, %v)", p.Column, p.Row, p.X, p.Y)
		}
	}
}

func TestTextPlain(t *testing.T) {
	g := solvedGrid(t)

	var buf bytes.Buffer
	if err := Text(&buf, g, Options{}); err != nil {
		t.Fatalf("Text failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	if lines[0] != "...." || lines[3] != "...." {
		t.Errorf("border rows = %q, %q; want ....", lines[0], lines[3])
	}
	if lines[1][1] != 'G' {
		t.Errorf("start cell glyph = %q, want G", lines[1][1])
	}
	if got := strings.Count(buf.String(), string(Unresolved)); got != 2 {
		t.Errorf("unresolved glyphs = %d, want 2", got)
	}
}

func TestTextLegend(t *testing.T) {
	g := solvedGrid(t)

	var buf bytes.Buffer
	if err := Text(&buf, g, Options{Legend: true}); err != nil {
		t.Fatalf("Text failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Legend:", "G  grass", "W  water", "M  mountain", "F  forest", ".  empty", "?  unresolved"} {
		if !strings.Contains(output, want) {
			t.Errorf("legend missing %q:\n%s", want, output)
		}
	}
}

func TestTextColorKeepsGlyphs(t *testing.T) {
	g := solvedGrid(t)

	var buf bytes.Buffer
	if err := Text(&buf, g, Options{Color: true}); err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if !strings.Contains(buf.String(), "G") {
		t.Errorf("coloured output lost the start glyph: %q", buf.String())
	}
}

func TestSummary(t *testing.T) {
	g := solvedGrid(t)

	summary := Summary(g)
	if !strings.Contains(summary, "unresolved=2") {
		t.Errorf("Summary() = %q, want unresolved=2", summary)
	}
	if !strings.Contains(summary, "grass=") {
		t.Errorf("Summary() = %q, want a grass count", summary)
	}
}
