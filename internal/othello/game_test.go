package othello //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// shortestGame is the quickest possible win for black, wiping white off the
// board in nine moves.
var shortestGame = []string{"e6", "f4", "e3", "f6", "g5", "d6", "e7", "f5", "c5"}

func TestNewGame(t *testing.T) {
	game := NewGame()

	require.Equal(t, StatusOngoing, game.Status())
	require.Equal(t, Black, game.Turn())
	require.Nil(t, game.Result())
	require.True(t, game.Board().Equal(NewBoardStart()))
	require.ElementsMatch(t, mustParseFields(t, "d3", "c4", "f5", "e6"), game.LegalMoves())
}

func TestProposeMoveAdvancesTurn(t *testing.T) {
	game := NewGame()

	outcome, err := game.ProposeMove(mustParseFields(t, "d3")[0])
	require.NoError(t, err)
	require.Empty(t, outcome.Passes)
	require.Equal(t, White, game.Turn())
	require.Equal(t, Counts{Black: 4, White: 1, Empty: 59}, outcome.Counts)
}

func TestProposeMoveOutOfRange(t *testing.T) {
	game := NewGame()

	outcome, err := game.ProposeMove(Coordinate{Row: 8, Col: 0})
	require.ErrorIs(t, err, ErrCoordinateOutOfRange)
	require.Nil(t, outcome)

	// Board and turn unchanged, same color stays to move
	require.Equal(t, Black, game.Turn())
	require.True(t, game.Board().Equal(NewBoardStart()))
}

func TestProposeMoveIllegal(t *testing.T) {
	game := NewGame()

	tests := []struct {
		name  string
		field string
	}{
		{"occupied square", "d4"},
		{"no flips", "a1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			outcome, err := game.ProposeMove(mustParseFields(t, test.field)[0])
			require.ErrorIs(t, err, ErrIllegalMove)
			require.Nil(t, outcome)
			require.Equal(t, Black, game.Turn())
			require.True(t, game.Board().Equal(NewBoardStart()))
		})
	}
}

func TestForcedPass(t *testing.T) {
	board, err := NewBoardFromString(whiteStuckBoard)
	require.NoError(t, err)

	// White is to move but has no legal move: the turn passes to black
	// without consuming input.
	game := NewGameWithBoard(board, White)

	require.Equal(t, StatusOngoing, game.Status())
	require.Equal(t, Black, game.Turn())
	require.NotEmpty(t, game.LegalMoves())
}

func TestRoundTripPlacedDisc(t *testing.T) {
	game := NewGame()

	for _, field := range []string{"d3", "c5"} {
		coord := mustParseFields(t, field)[0]
		require.True(t, game.Board().IsLegalMove(game.Turn(), coord))

		mover := game.Turn()
		_, err := game.ProposeMove(coord)
		require.NoError(t, err)
		require.Equal(t, mover, game.Board().Get(coord))
	}
}

func TestShortestGame(t *testing.T) {
	game := NewGame()

	for i, field := range shortestGame {
		require.Equal(t, StatusOngoing, game.Status(), "game ended early at move %d", i)

		outcome, err := game.ProposeMove(mustParseFields(t, field)[0])
		require.NoError(t, err, "move %d (%s)", i, field)
		require.NotEmpty(t, outcome.Flipped)
	}

	// Black wiped white out: neither color can move, the game is over even
	// though the board is far from full.
	require.Equal(t, StatusFinished, game.Status())

	result := game.Result()
	require.NotNil(t, result)
	require.Equal(t, Black, result.Winner)
	require.False(t, result.Tie())
	require.Equal(t, Counts{Black: 13, White: 0, Empty: 51}, result.Counts)

	require.Empty(t, game.LegalMoves())

	// No further moves are accepted
	_, err := game.ProposeMove(mustParseFields(t, "a1")[0])
	require.ErrorIs(t, err, ErrGameFinished)
}

func TestFullBoardScoring(t *testing.T) {
	tests := []struct {
		name       string
		board      string
		wantWinner Cell
		wantTie    bool
	}{
		{
			name: "tie",
			board: "BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB" +
				"WWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWW",
			wantWinner: Empty,
			wantTie:    true,
		},
		{
			name: "black wins",
			board: "BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB" +
				"WWWWWWWWWWWWWWWWWWWWWWWWWWWWWW",
			wantWinner: Black,
		},
		{
			name: "white wins",
			board: "BBBBBBBBBBBBBBBBBBBBBBBBBBBBBB" +
				"WWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWWW",
			wantWinner: White,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board, err := NewBoardFromString(test.board)
			require.NoError(t, err)

			game := NewGameWithBoard(board, Black)
			require.Equal(t, StatusFinished, game.Status())

			result := game.Result()
			require.NotNil(t, result)
			require.Equal(t, test.wantWinner, result.Winner)
			require.Equal(t, test.wantTie, result.Tie())
			require.Equal(t, 64, result.Counts.Occupied())
		})
	}
}

func TestPassReportedInOutcome(t *testing.T) {
	// After black takes the top row, white's remaining discs on row 3 give
	// it no reply: the turn passes straight back to black.
	board, err := NewBoardFromString(`
		BWW.....
		........
		BWW.....
		........
		........
		........
		........
		........
	`)
	require.NoError(t, err)

	game := NewGameWithBoard(board, Black)
	require.Equal(t, Black, game.Turn())

	outcome, err := game.ProposeMove(mustParseFields(t, "d1")[0])
	require.NoError(t, err)
	require.ElementsMatch(t, mustParseFields(t, "b1", "c1"), outcome.Flipped)

	require.Equal(t, []Cell{White}, outcome.Passes)
	require.Equal(t, StatusOngoing, game.Status())
	require.Equal(t, Black, game.Turn())
	require.ElementsMatch(t, mustParseFields(t, "d3"), game.LegalMoves())
}
