package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"

	"github.com/reversilab/reversi/internal/models"
	"github.com/reversilab/reversi/internal/othello"
	"github.com/reversilab/reversi/internal/repository"
	"github.com/reversilab/reversi/internal/services"
)

const requestTimeout = 2 * time.Second

type Handler struct {
	services *services.Services
	ws       *websocket.Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws *websocket.Conn, services *services.Services) *Handler {
	return &Handler{services: services, ws: ws}
}

func (h *Handler) readMessage() ([]byte, error) {
	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	return msg, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case "create":
		return h.handleCreate(req)
	case "state":
		return h.handleState(req)
	case "move":
		return h.handleMove(req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// processMessage parses and dispatches a single text message. Anything wrong
// with the message itself becomes an ErrorResponse, so only transport
// failures close the connection.
func (h *Handler) processMessage(msg []byte) *Outgoing {
	var req Incoming
	if err := json.Unmarshal(msg, &req); err != nil {
		return &Outgoing{Data: ErrorResponse{Error: fmt.Sprintf("invalid message: %v", err)}}
	}

	respData, err := h.handleMessage(&req)
	if err != nil {
		return &Outgoing{ID: req.ID, Data: ErrorResponse{Error: err.Error()}}
	}

	return respData
}

// Handle handles the websocket connection.
func (h *Handler) Handle() error {
	for {
		msg, err := h.readMessage()
		if err != nil {
			return err
		}

		if err = h.writeMessage(h.processMessage(msg)); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) handleCreate(req *Incoming) (*Outgoing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	repo := repository.NewSessionRepositoryFromServices(h.services)

	id, game, err := repo.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return &Outgoing{ID: req.ID, Data: models.NewGameState(id, game)}, nil
}

func (h *Handler) handleState(req *Incoming) (*Outgoing, error) {
	var reqData StateRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws state request unmarshal error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	repo := repository.NewSessionRepositoryFromServices(h.services)

	game, err := repo.Get(ctx, reqData.GameID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return &Outgoing{ID: req.ID, Data: ErrorResponse{Error: err.Error()}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	return &Outgoing{ID: req.ID, Data: models.NewGameState(reqData.GameID, game)}, nil
}

func (h *Handler) handleMove(req *Incoming) (*Outgoing, error) {
	var reqData MoveRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws move request unmarshal error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	coord, err := othello.ParseField(reqData.Field)
	if err != nil {
		return &Outgoing{ID: req.ID, Data: ErrorResponse{Error: err.Error()}}, nil
	}

	repo := repository.NewSessionRepositoryFromServices(h.services)

	// Update serializes concurrent moves on the same session.
	var outcome *othello.Outcome
	game, err := repo.Update(ctx, reqData.GameID, func(game *othello.Game) error {
		var moveErr error
		outcome, moveErr = game.ProposeMove(coord)
		return moveErr
	})
	if err != nil {
		// Unknown ids and recoverable play conditions go back to the
		// client, the connection stays open for a retry.
		return &Outgoing{ID: req.ID, Data: ErrorResponse{Error: err.Error()}}, nil
	}

	if game.Status() == othello.StatusFinished {
		if result := game.Result(); result != nil {
			statsRepo := repository.NewStatsRepositoryFromServices(h.services)
			if err := statsRepo.RecordResult(ctx, *result); err != nil {
				slog.Error("Failed to record game result", "game", reqData.GameID, "error", err)
			}
		}
	}

	state := models.NewGameState(reqData.GameID, game).WithOutcome(outcome)
	return &Outgoing{ID: req.ID, Data: state}, nil
}
