package wfc

import (
	"fmt"
	"strings"
)

// Terrain represents the state a cell can collapse to
type Terrain int

const (
	Grass    Terrain = iota // Open grassland
	Water                   // Lakes and rivers
	Mountain                // Impassable high ground
	Forest                  // Woodland
	Empty                   // Outside the playable area (border only)
)

// String returns the string representation of a Terrain
func (t Terrain) String() string {
	switch t {
	case Grass:
		return "grass"
	case Water:
		return "water"
	case Mountain:
		return "mountain"
	case Forest:
		return "forest"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// Placeable reports whether the terrain may appear inside the playable area
func (t Terrain) Placeable() bool {
	return t >= Grass && t <= Forest
}

// ParseTerrain converts a name such as "grass" back into a Terrain
func ParseTerrain(name string) (Terrain, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "grass":
		return Grass, nil
	case "water":
		return Water, nil
	case "mountain":
		return Mountain, nil
	case "forest":
		return Forest, nil
	case "empty":
		return Empty, nil
	}
	return Empty, fmt.Errorf("wfc: unknown terrain %q", name)
}

// AllTerrain returns every terrain, including the Empty sentinel
func AllTerrain() []Terrain {
	return []Terrain{Grass, Water, Mountain, Forest, Empty}
}

// PlaceableTerrain returns the four terrains an interior cell starts with
func PlaceableTerrain() []Terrain {
	return []Terrain{Grass, Mountain, Water, Forest}
}
