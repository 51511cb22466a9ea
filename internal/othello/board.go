// Package othello implements the rules of Othello/Reversi: move legality,
// flip propagation and the turn state machine. It performs no I/O.
package othello

import (
	"fmt"
	"strings"
)

// BoardSize is the edge length of the grid.
const BoardSize = 8

// Cell is the state of a single board square. Black and White double as
// player colors.
type Cell int8

const (
	Empty Cell = 0
	Black Cell = 1
	White Cell = -1
)

// Opponent returns the other color. Calling it on Empty is meaningless.
func (c Cell) Opponent() Cell {
	return -c
}

// String returns the lowercase color name.
func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Coordinate is a (row, col) pair, each in [0, BoardSize).
type Coordinate struct {
	Row int
	Col int
}

// InBounds checks if the coordinate is on the board.
func (c Coordinate) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// Counts holds the number of discs per cell state.
type Counts struct {
	Black int `json:"black"`
	White int `json:"white"`
	Empty int `json:"empty"`
}

// Occupied returns the number of occupied squares.
func (c Counts) Occupied() int {
	return c.Black + c.White
}

// Count returns the count for the given cell state.
func (c Counts) Count(cell Cell) int {
	switch cell {
	case Black:
		return c.Black
	case White:
		return c.White
	default:
		return c.Empty
	}
}

// Board represents an Othello board as an 8x8 grid of cells.
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

// NewBoardStart creates a new board with the starting position.
func NewBoardStart() Board {
	var b Board
	mid := BoardSize / 2
	b.cells[mid-1][mid-1] = White
	b.cells[mid][mid] = White
	b.cells[mid-1][mid] = Black
	b.cells[mid][mid-1] = Black
	return b
}

// NewBoardEmpty creates a new board without any discs.
func NewBoardEmpty() Board {
	return Board{}
}

// NewBoardFromString creates a board from a string representation as produced
// by String: 64 characters from the set {'.', 'B', 'W'} in row-major order.
// Whitespace is ignored, so rows may be separated by newlines.
func NewBoardFromString(s string) (Board, error) {
	squares := strings.Join(strings.Fields(s), "")
	if len(squares) != BoardSize*BoardSize {
		return Board{}, fmt.Errorf("board string must contain %d squares, got %d", BoardSize*BoardSize, len(squares))
	}

	var b Board
	for i := 0; i < len(squares); i++ {
		coord := Coordinate{Row: i / BoardSize, Col: i % BoardSize}
		switch squares[i] {
		case '.':
			// Empty is the zero value
		case 'B':
			b.cells[coord.Row][coord.Col] = Black
		case 'W':
			b.cells[coord.Row][coord.Col] = White
		default:
			return Board{}, fmt.Errorf("invalid square %q at %s", squares[i], coord.Field())
		}
	}

	return b, nil
}

// Get returns the cell state at the given coordinate, which must be on the board.
func (b Board) Get(coord Coordinate) Cell {
	return b.cells[coord.Row][coord.Col]
}

// Counts counts the discs and empty squares on the board.
func (b Board) Counts() Counts {
	var counts Counts
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch b.cells[row][col] {
			case Black:
				counts.Black++
			case White:
				counts.White++
			default:
				counts.Empty++
			}
		}
	}
	return counts
}

// IsFull checks if every square is occupied.
func (b Board) IsFull() bool {
	return b.Counts().Empty == 0
}

// Equal checks if two boards are equal.
func (b Board) Equal(other Board) bool {
	return b.cells == other.cells
}

// String returns the string representation of the board, parseable by
// NewBoardFromString.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch b.cells[row][col] {
			case Black:
				sb.WriteByte('B')
			case White:
				sb.WriteByte('W')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
