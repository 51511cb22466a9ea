// Package shell implements the interactive read-loop for local two-player
// games. It owns parsing, rendering and prompting; the rules live in the
// othello package.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/reversilab/reversi/internal/othello"
)

// Shell drives one game session over a line-based reader and writer.
type Shell struct {
	game *othello.Game
	in   *bufio.Scanner
	out  io.Writer
}

// New creates a shell for a fresh game.
func New(r io.Reader, w io.Writer) *Shell {
	return NewWithGame(othello.NewGame(), r, w)
}

// NewWithGame creates a shell for an existing game session.
func NewWithGame(game *othello.Game, r io.Reader, w io.Writer) *Shell {
	return &Shell{
		game: game,
		in:   bufio.NewScanner(r),
		out:  w,
	}
}

// Run loops until the game is over or the input is exhausted. Invalid input
// and illegal moves re-prompt the same player.
func (s *Shell) Run() error {
	for s.game.Status() == othello.StatusOngoing {
		s.printBoard()

		fmt.Fprintf(s.out, "Enter move for %s (e.g. d3): ", s.game.Turn())
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}

		coord, err := othello.ParseField(s.in.Text())
		if err != nil {
			fmt.Fprintf(s.out, "Invalid move: %v\n", err)
			continue
		}

		outcome, err := s.game.ProposeMove(coord)
		if errors.Is(err, othello.ErrIllegalMove) || errors.Is(err, othello.ErrCoordinateOutOfRange) {
			fmt.Fprintf(s.out, "Invalid move: %v\n", err)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to apply move: %w", err)
		}

		for _, color := range outcome.Passes {
			fmt.Fprintf(s.out, "No legal move for %s, turn passes\n", color)
		}
	}

	s.printResult()
	return nil
}

func (s *Shell) printBoard() {
	counts := s.game.Counts()
	fmt.Fprintf(s.out, "Score: black %d, white %d, empty %d\n", counts.Black, counts.White, counts.Empty)

	for _, line := range s.game.Board().ASCIIArtLines(s.game.LegalMoves()) {
		fmt.Fprintln(s.out, line)
	}
}

func (s *Shell) printResult() {
	result := s.game.Result()
	if result == nil {
		return
	}

	for _, line := range s.game.Board().ASCIIArtLines(nil) {
		fmt.Fprintln(s.out, line)
	}

	counts := result.Counts
	fmt.Fprintf(s.out, "Final score: black %d, white %d\n", counts.Black, counts.White)

	if result.Tie() {
		fmt.Fprintln(s.out, "The game is a tie")
		return
	}

	fmt.Fprintf(s.out, "%s wins\n", result.Winner)
}
