package othello

// directions are the 8 unit vectors used for line scanning.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// flipsInDirection returns the length of the run of opponent discs that would
// be flipped when color plays on coord and scans in direction (dr, dc).
// The run must be contiguous and bookended by an existing disc of color;
// 0 means the direction contributes nothing.
func (b Board) flipsInDirection(color Cell, coord Coordinate, dr, dc int) int {
	run := 0
	for s := 1; ; s++ {
		cur := Coordinate{Row: coord.Row + dr*s, Col: coord.Col + dc*s}
		if !cur.InBounds() {
			return 0
		}

		switch b.Get(cur) {
		case color.Opponent():
			run++
		case color:
			return run
		default:
			// Empty breaks the line
			return 0
		}
	}
}

// IsLegalMove checks if placing color on coord is a legal move: the square is
// empty and at least one direction yields a bookended run of opponent discs.
// The coordinate must be on the board; bounds checking is the caller's job.
func (b Board) IsLegalMove(color Cell, coord Coordinate) bool {
	if b.Get(coord) != Empty {
		return false
	}

	for _, dir := range directions {
		if b.flipsInDirection(color, coord, dir[0], dir[1]) > 0 {
			return true
		}
	}

	return false
}

// LegalMoves returns all legal moves for color in row-major order. An empty
// result means color must pass.
func (b Board) LegalMoves(color Cell) []Coordinate {
	moves := make([]Coordinate, 0)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			coord := Coordinate{Row: row, Col: col}
			if b.IsLegalMove(color, coord) {
				moves = append(moves, coord)
			}
		}
	}
	return moves
}

// HasMoves checks if color has at least one legal move.
func (b Board) HasMoves(color Cell) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.IsLegalMove(color, Coordinate{Row: row, Col: col}) {
				return true
			}
		}
	}
	return false
}

// DoMove places color on coord and flips every bookended run of opponent
// discs. It returns the flipped coordinates, which span all valid directions.
// The move is re-validated: ErrIllegalMove is returned and the board left
// untouched when coord is occupied or no direction flips.
func (b *Board) DoMove(color Cell, coord Coordinate) ([]Coordinate, error) {
	if b.Get(coord) != Empty {
		return nil, ErrIllegalMove
	}

	flipped := make([]Coordinate, 0)
	for _, dir := range directions {
		run := b.flipsInDirection(color, coord, dir[0], dir[1])
		for s := 1; s <= run; s++ {
			flipped = append(flipped, Coordinate{
				Row: coord.Row + dir[0]*s,
				Col: coord.Col + dir[1]*s,
			})
		}
	}

	if len(flipped) == 0 {
		return nil, ErrIllegalMove
	}

	b.cells[coord.Row][coord.Col] = color
	for _, f := range flipped {
		b.cells[f.Row][f.Col] = color
	}

	return flipped, nil
}
