package wfc

// Direction represents one of the eight compass neighbours of a cell
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// String returns the string representation of a Direction
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case NorthEast:
		return "northeast"
	case East:
		return "east"
	case SouthEast:
		return "southeast"
	case South:
		return "south"
	case SouthWest:
		return "southwest"
	case West:
		return "west"
	case NorthWest:
		return "northwest"
	default:
		return "unknown"
	}
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if d < North || d > NorthWest {
		return d
	}
	return (d + 4) % 8
}

// Offset returns the column and row delta for one step in the direction.
// Rows grow southwards.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case NorthEast:
		return 1, -1
	case East:
		return 1, 0
	case SouthEast:
		return 1, 1
	case South:
		return 0, 1
	case SouthWest:
		return -1, 1
	case West:
		return -1, 0
	case NorthWest:
		return -1, -1
	}
	return 0, 0
}

// AllDirections returns all eight directions
func AllDirections() []Direction {
	return []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}
