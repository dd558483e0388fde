package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
)

// Use applies an item to a target. What happens is entirely content
// data; the handler only enforces that both are visible and reports
// the outcome the content defines.
func (h *Handler) Use(ctx context.Context, playerId, itemId, targetId storage.Identifier) *game.CommandResult {
	outcome, err := h.state.Use(playerId, itemId, targetId)
	if err != nil {
		return failureFromErr("use", err)
	}

	res := &game.CommandResult{
		Success:   true,
		Narration: narrateUse(outcome),
		Hint:      useHint(outcome),
	}
	if outcome.Yield != nil {
		res.Items = []game.ItemSummary{*outcome.Yield}
	}
	return res
}
