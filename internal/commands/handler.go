package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
)

// Publisher provides the ability to publish messages to subjects
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Args carries the optional arguments a command may take. Which
// fields are required depends on the command.
type Args struct {
	Item      string `json:"item,omitempty"`
	Direction string `json:"direction,omitempty"`
	Target    string `json:"target,omitempty"`
}

// Handler executes player commands against the game state and turns
// engine results into narrated, hint-annotated CommandResults. Every
// executed command also emits an event on the message bus so the
// session relay can forward it to other participants.
type Handler struct {
	state *game.GameState
	pub   Publisher
}

func NewHandler(state *game.GameState, pub Publisher) *Handler {
	return &Handler{
		state: state,
		pub:   pub,
	}
}

// Exec dispatches a named command. It never returns an error: invalid
// input and failed preconditions are game outcomes, reported through
// the result's error code and hint.
func (h *Handler) Exec(ctx context.Context, playerId string, command string, args Args) *game.CommandResult {
	if playerId == "" {
		return failure(command, game.ErrorCodeInvalidInput, "A player id is required.")
	}

	var res *game.CommandResult
	command = strings.ToLower(command)
	switch command {
	case "look":
		res = h.Look(ctx, storage.Identifier(playerId))
	case "examine":
		if args.Item == "" {
			res = failure(command, game.ErrorCodeInvalidInput, "Examine what?")
			break
		}
		res = h.Examine(ctx, storage.Identifier(playerId), storage.Identifier(args.Item))
	case "move":
		if args.Direction == "" {
			res = failure(command, game.ErrorCodeInvalidInput, "Move where?")
			break
		}
		res = h.Move(ctx, storage.Identifier(playerId), strings.ToLower(args.Direction))
	case "take":
		if args.Item == "" {
			res = failure(command, game.ErrorCodeInvalidInput, "Take what?")
			break
		}
		res = h.Take(ctx, storage.Identifier(playerId), storage.Identifier(args.Item))
	case "use":
		if args.Item == "" || args.Target == "" {
			res = failure(command, game.ErrorCodeInvalidInput, "Use what on what?")
			break
		}
		res = h.Use(ctx, storage.Identifier(playerId), storage.Identifier(args.Item), storage.Identifier(args.Target))
	default:
		res = failure(command, game.ErrorCodeInvalidInput, fmt.Sprintf("Unknown command: %s", command))
	}

	h.publishEvent(ctx, playerId, command, res)
	return res
}

func (h *Handler) publishEvent(ctx context.Context, playerId, command string, res *game.CommandResult) {
	if h.pub == nil {
		return
	}

	data, err := marshalEvent(playerId, command, res)
	if err != nil {
		slog.WarnContext(ctx, "marshalling command event", "player", playerId, "error", err)
		return
	}

	for _, subject := range []string{fmt.Sprintf("player-%s", playerId), "events"} {
		if err := h.pub.Publish(subject, data); err != nil {
			slog.WarnContext(ctx, "publishing command event", "subject", subject, "error", err)
		}
	}
}
