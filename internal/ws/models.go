package ws

import "encoding/json"

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID   int `json:"id"`
	Data any `json:"data"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

type MoveRequest struct {
	GameID string `json:"game_id"`
	Field  string `json:"field"`
}

// ErrorResponse reports a recoverable condition, such as an illegal move.
// The connection stays open and the client may retry.
type ErrorResponse struct {
	Error string `json:"error"`
}
