package othello

import (
	"fmt"
	"strings"
)

// ParseField converts two-character algebraic notation (e.g. "g6") to a
// Coordinate: column letter a-h followed by row digit 1-8, case-insensitive.
func ParseField(field string) (Coordinate, error) {
	field = strings.ToLower(strings.TrimSpace(field))

	if len(field) != 2 {
		return Coordinate{}, fmt.Errorf("field must be 2 characters long, got %q", field)
	}

	col := int(field[0] - 'a')
	row := int(field[1] - '1')

	coord := Coordinate{Row: row, Col: col}
	if !coord.InBounds() {
		return Coordinate{}, fmt.Errorf("field %q is not on the board", field)
	}

	return coord, nil
}

// ParseColor converts a color name to Black or White.
func ParseColor(s string) (Cell, error) {
	switch strings.ToLower(s) {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	default:
		return Empty, fmt.Errorf("invalid color: %q", s)
	}
}

// Field returns the algebraic notation for the coordinate, e.g. "g6".
// The coordinate must be on the board.
func (c Coordinate) Field() string {
	return fmt.Sprintf("%c%d", 'a'+byte(c.Col), c.Row+1)
}
