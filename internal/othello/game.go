package othello

import "errors"

// Status is the lifecycle state of a game session.
type Status string

const (
	StatusOngoing  Status = "ongoing"
	StatusFinished Status = "finished"
)

var (
	// ErrCoordinateOutOfRange is returned for a proposed coordinate outside
	// the grid. The board and turn are unchanged.
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")

	// ErrIllegalMove is returned when the proposed square is occupied or
	// flips no opposing line. The board and turn are unchanged.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameFinished is returned when a move is proposed after game over.
	ErrGameFinished = errors.New("game is already finished")
)

// Result is the outcome of a finished game.
type Result struct {
	// Winner is the color with the strictly greater disc count, or Empty
	// on a tie.
	Winner Cell
	Counts Counts
}

// Tie checks if the game ended with equal disc counts.
func (r Result) Tie() bool {
	return r.Winner == Empty
}

// Outcome describes an applied move and everything that followed it.
type Outcome struct {
	Move    Coordinate
	Flipped []Coordinate

	// Passes lists the colors whose turn was skipped after the move because
	// they had no legal move, in order.
	Passes []Cell

	Counts Counts
}

// Game is a single Othello session: a board plus turn and lifecycle state.
// It is not safe for concurrent use; each session owns its board exclusively.
type Game struct {
	board  Board
	turn   Cell
	status Status
	result *Result
}

// NewGame creates a game with the standard opening board, black to move.
func NewGame() *Game {
	return NewGameWithBoard(NewBoardStart(), Black)
}

// NewGameWithBoard creates a game from an arbitrary board with the given
// color to move. Forced passes and game over are settled immediately, so the
// returned game is either finished or awaiting a move from a color that has
// at least one.
func NewGameWithBoard(board Board, turn Cell) *Game {
	g := &Game{
		board:  board,
		turn:   turn,
		status: StatusOngoing,
	}
	g.settle()
	return g
}

// Board returns a snapshot of the current board.
func (g *Game) Board() Board {
	return g.board
}

// Turn returns the color to move. Meaningless once the game is finished.
func (g *Game) Turn() Cell {
	return g.turn
}

// Status returns the lifecycle state of the game.
func (g *Game) Status() Status {
	return g.status
}

// Result returns the final result, or nil while the game is ongoing.
func (g *Game) Result() *Result {
	if g.result == nil {
		return nil
	}
	result := *g.result
	return &result
}

// Counts returns the current disc counts.
func (g *Game) Counts() Counts {
	return g.board.Counts()
}

// LegalMoves returns the legal moves for the color to move, in row-major
// order. The result is empty once the game is finished.
func (g *Game) LegalMoves() []Coordinate {
	if g.status == StatusFinished {
		return nil
	}
	return g.board.LegalMoves(g.turn)
}

// ProposeMove applies a move for the color to move. On success the turn
// advances, skipping any color without a legal move, and game over is
// detected. On error the board and turn are unchanged and the same color
// stays to move.
func (g *Game) ProposeMove(coord Coordinate) (*Outcome, error) {
	if g.status == StatusFinished {
		return nil, ErrGameFinished
	}

	if !coord.InBounds() {
		return nil, ErrCoordinateOutOfRange
	}

	if !g.board.IsLegalMove(g.turn, coord) {
		return nil, ErrIllegalMove
	}

	flipped, err := g.board.DoMove(g.turn, coord)
	if err != nil {
		return nil, err
	}

	g.turn = g.turn.Opponent()
	passes := g.settle()

	return &Outcome{
		Move:    coord,
		Flipped: flipped,
		Passes:  passes,
		Counts:  g.board.Counts(),
	}, nil
}

// settle advances past forced passes and detects game over. Game over is
// checked before each pass, so a double-pass terminates instead of
// alternating forever. Returns the colors that passed, in order.
func (g *Game) settle() []Cell {
	var passes []Cell

	for {
		if g.board.IsFull() {
			g.finish()
			return passes
		}

		if g.board.HasMoves(g.turn) {
			return passes
		}

		if !g.board.HasMoves(g.turn.Opponent()) {
			// Neither color can move
			g.finish()
			return passes
		}

		passes = append(passes, g.turn)
		g.turn = g.turn.Opponent()
	}
}

func (g *Game) finish() {
	counts := g.board.Counts()

	winner := Empty
	if counts.Black > counts.White {
		winner = Black
	} else if counts.White > counts.Black {
		winner = White
	}

	g.status = StatusFinished
	g.result = &Result{
		Winner: winner,
		Counts: counts,
	}
}
