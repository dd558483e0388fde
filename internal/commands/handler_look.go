package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
)

// Look describes the player's current location: name, description,
// the items present and the available exits. Looking marks the
// location discovered.
func (h *Handler) Look(ctx context.Context, playerId storage.Identifier) *game.CommandResult {
	view, err := h.state.Look(playerId)
	if err != nil {
		return failureFromErr("look", err)
	}

	return &game.CommandResult{
		Success:   true,
		Location:  &view.Location,
		Items:     view.Items,
		Narration: narrateLook(view),
		Hint:      lookHint(view),
	}
}
