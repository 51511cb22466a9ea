// Package models contains the payload types of the HTTP and websocket APIs.
package models

import "github.com/reversilab/reversi/internal/othello"

// MoveRequest proposes a move in algebraic notation, e.g. "g6".
type MoveRequest struct {
	Field string `json:"field"`
}

// MoveOutcome describes an applied move.
type MoveOutcome struct {
	Field string `json:"field"`

	// Flipped lists the discs taken over by the move, in algebraic notation.
	Flipped []string `json:"flipped"`

	// Passes lists the colors whose turn was skipped after the move.
	Passes []string `json:"passes,omitempty"`
}

// GameState is a snapshot of a game session.
type GameState struct {
	ID         string         `json:"id"`
	Board      string         `json:"board"`
	BoardLines []string       `json:"board_lines"`
	Turn       string         `json:"turn,omitempty"`
	LegalMoves []string       `json:"legal_moves"`
	Counts     othello.Counts `json:"counts"`
	Status     string         `json:"status"`
	Winner     *string        `json:"winner,omitempty"`

	// Outcome is set on responses to a move.
	Outcome *MoveOutcome `json:"outcome,omitempty"`
}

// NewGameState builds a snapshot from a game session.
func NewGameState(id string, game *othello.Game) GameState {
	legalMoves := game.LegalMoves()

	state := GameState{
		ID:         id,
		Board:      game.Board().String(),
		BoardLines: game.Board().ASCIIArtLines(legalMoves),
		LegalMoves: fieldNames(legalMoves),
		Counts:     game.Counts(),
		Status:     string(game.Status()),
	}

	if result := game.Result(); result != nil {
		if !result.Tie() {
			winner := result.Winner.String()
			state.Winner = &winner
		}
	} else {
		state.Turn = game.Turn().String()
	}

	return state
}

// WithOutcome attaches a move outcome to the snapshot.
func (s GameState) WithOutcome(outcome *othello.Outcome) GameState {
	passes := make([]string, len(outcome.Passes))
	for i, color := range outcome.Passes {
		passes[i] = color.String()
	}

	s.Outcome = &MoveOutcome{
		Field:   outcome.Move.Field(),
		Flipped: fieldNames(outcome.Flipped),
		Passes:  passes,
	}
	return s
}

func fieldNames(coords []othello.Coordinate) []string {
	fields := make([]string, len(coords))
	for i, coord := range coords {
		fields[i] = coord.Field()
	}
	return fields
}
