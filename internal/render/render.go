// Package render turns a finished terrain grid into something a person can
// look at. The solver knows nothing about it.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/ColfrozenlIquid/wave-function-collapse/internal/wfc"
)

// DefaultOrigin offsets tile positions so a 30x30 map of 16px tiles sits
// around the screen centre
const DefaultOrigin = -200.0

// Unresolved is the glyph printed for a cell the solver never reached
const Unresolved = '?'

// SpriteIndex returns the sprite sheet index for a terrain
func SpriteIndex(t wfc.Terrain) int {
	switch t {
	case wfc.Grass:
		return 0
	case wfc.Water:
		return 1
	case wfc.Forest:
		return 2
	case wfc.Mountain:
		return 3
	default:
		return 4
	}
}

// TilePosition returns the screen position of the tile at (column, row)
func TilePosition(column, row, tileSize int, origin float64) (x, y float64) {
	return float64(column*tileSize) + origin, float64(row*tileSize) + origin
}

// Placement is one sprite to draw
type Placement struct {
	Column, Row int
	Sprite      int
	X, Y        float64
}

// Placements lists a sprite for every resolved cell in row-major order.
// Unresolved cells have no defined terrain and are skipped.
func Placements(g *wfc.Grid, tileSize int, origin float64) []Placement {
	out := make([]Placement, 0, len(g.Cells))
	for _, c := range g.Cells {
		t, ok := g.Terrain(c.X, c.Y)
		if !ok {
			continue
		}
		x, y := TilePosition(c.X, c.Y, tileSize, origin)
		out = append(out, Placement{
			Column: c.X,
			Row:    c.Y,
			Sprite: SpriteIndex(t),
			X:      x,
			Y:      y,
		})
	}
	return out
}

// Glyph returns the single-character symbol for a terrain
func Glyph(t wfc.Terrain) rune {
	switch t {
	case wfc.Grass:
		return 'G'
	case wfc.Water:
		return 'W'
	case wfc.Mountain:
		return 'M'
	case wfc.Forest:
		return 'F'
	default:
		return '.'
	}
}

var styles = map[wfc.Terrain]color.Style{
	wfc.Grass:    {color.FgLightGreen},
	wfc.Water:    {color.FgBlue, color.OpBold},
	wfc.Mountain: {color.FgWhite, color.OpBold},
	wfc.Forest:   {color.FgGreen},
	wfc.Empty:    {color.FgGray},
}

var unresolvedStyle = color.Style{color.FgRed, color.OpBold}

// Options controls text rendering
type Options struct {
	Color  bool // Wrap glyphs in ANSI colours
	Legend bool // Append a glyph key
}

// Text writes the grid as rows of glyphs
func Text(w io.Writer, g *wfc.Grid, opts Options) error {
	var output strings.Builder

	for row := 0; row < g.Rows; row++ {
		for column := 0; column < g.Columns; column++ {
			output.WriteString(cellGlyph(g, column, row, opts.Color))
		}
		output.WriteString("\n")
	}

	if opts.Legend {
		output.WriteString(legend(opts.Color))
	}

	_, err := io.WriteString(w, output.String())
	return err
}

func cellGlyph(g *wfc.Grid, x, y int, colored bool) string {
	t, ok := g.Terrain(x, y)
	if !ok {
		if colored {
			return unresolvedStyle.Sprint(string(Unresolved))
		}
		return string(Unresolved)
	}
	glyph := string(Glyph(t))
	if colored {
		return styles[t].Sprint(glyph)
	}
	return glyph
}

func legend(colored bool) string {
	var b strings.Builder
	b.WriteString("\nLegend:\n")
	for _, t := range wfc.AllTerrain() {
		glyph := string(Glyph(t))
		if colored {
			glyph = styles[t].Sprint(glyph)
		}
		fmt.Fprintf(&b, "  %s  %s\n", glyph, t)
	}
	unresolved := string(Unresolved)
	if colored {
		unresolved = unresolvedStyle.Sprint(unresolved)
	}
	fmt.Fprintf(&b, "  %s  unresolved\n", unresolved)
	return b.String()
}

// Summary counts the cells of each terrain, skipping the border
func Summary(g *wfc.Grid) string {
	var parts []string
	for _, t := range wfc.PlaceableTerrain() {
		parts = append(parts, fmt.Sprintf("%s=%d", t, g.Count(t)))
	}
	parts = append(parts, fmt.Sprintf("unresolved=%d", g.Unresolved()))
	return strings.Join(parts, " ")
}
