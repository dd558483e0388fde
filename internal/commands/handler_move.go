package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
)

// Move follows an exit from the player's current location and answers
// with a look-equivalent result for the destination. A direction with
// no exit fails without touching the session.
func (h *Handler) Move(ctx context.Context, playerId storage.Identifier, direction string) *game.CommandResult {
	view, err := h.state.Move(playerId, direction)
	if err != nil {
		return failureFromErr("move", err)
	}

	return &game.CommandResult{
		Success:   true,
		Location:  &view.Location,
		Items:     view.Items,
		Narration: narrateLook(view),
		Hint:      lookHint(view),
	}
}
