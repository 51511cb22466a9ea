package othello

import "fmt"

// ASCIIArtLines returns the ascii art lines for the board. Coordinates in
// marked are shown as candidate dots, typically the current legal moves.
func (b Board) ASCIIArtLines(marked []Coordinate) []string {
	markedSet := make(map[Coordinate]bool, len(marked))
	for _, coord := range marked {
		markedSet[coord] = true
	}

	lines := make([]string, BoardSize+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for row := 0; row < BoardSize; row++ {
		line := fmt.Sprintf("%d ", row+1)

		for col := 0; col < BoardSize; col++ {
			coord := Coordinate{Row: row, Col: col}

			switch {
			case b.Get(coord) == Black:
				line += "● "
			case b.Get(coord) == White:
				line += "○ "
			case markedSet[coord]:
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[BoardSize+1] = "+-----------------+"

	return lines
}
