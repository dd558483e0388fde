package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
)

// Take moves a takeable item from the current location into the
// player's inventory. Absent, non-takeable and already-carried items
// fail with no state change.
func (h *Handler) Take(ctx context.Context, playerId, itemId storage.Identifier) *game.CommandResult {
	item, err := h.state.Take(playerId, itemId)
	if err != nil {
		return failureFromErr("take", err)
	}

	return &game.CommandResult{
		Success:   true,
		Items:     []game.ItemSummary{*item},
		Narration: fmt.Sprintf("You take the %s.", item.Name),
		Hint:      takeHint(item),
	}
}
