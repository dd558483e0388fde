package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
)

// Examine reveals an item's full examine text. The item must be
// visible: present at the player's location or carried. An item that
// exists elsewhere in the world is reported as out of reach, not as
// unknown.
func (h *Handler) Examine(ctx context.Context, playerId, itemId storage.Identifier) *game.CommandResult {
	item, err := h.state.Examine(playerId, itemId)
	if err != nil {
		return failureFromErr("examine", err)
	}

	return &game.CommandResult{
		Success:   true,
		Items:     []game.ItemSummary{*item},
		Narration: display.Wrap(item.Description),
		Hint:      examineHint(item),
	}
}
