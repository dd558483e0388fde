package commands

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/game"
)

// Hints are advisory nudges. Every result carries one; callers depend
// on the field being non-empty, so every path below ends in a
// concrete string.

const defaultHint = "Try 'look' to get your bearings."

var errorHints = map[game.ErrorCode]string{
	game.ErrorCodeNotFound:    "Try 'look' to see what is around you.",
	game.ErrorCodeNotVisible:  "Look around first, or check your inventory.",
	game.ErrorCodeNotTakeable: "Not everything can be carried. Try examining it instead.",
	game.ErrorCodeNoSuchExit:  "Try 'look' to see which exits are available.",
	game.ErrorCodeNoEffect:    "Maybe it works on something else. Examine things for clues.",
}

var usageHints = map[string]string{
	"examine": "Usage: examine <item>.",
	"move":    "Usage: move <direction>.",
	"take":    "Usage: take <item>.",
	"use":     "Usage: use <item> <target>.",
}

func hintForError(command string, code game.ErrorCode) string {
	if code == game.ErrorCodeInvalidInput {
		if hint, ok := usageHints[command]; ok {
			return hint
		}
		return defaultHint
	}
	if hint, ok := errorHints[code]; ok {
		return hint
	}
	return defaultHint
}

// lookHint nudges toward the most interesting thing in view: a
// takeable item, then any item, then an exit.
func lookHint(view *game.LookView) string {
	for _, item := range view.Items {
		if item.Takeable {
			return fmt.Sprintf("The %s looks useful - try taking it.", item.Name)
		}
	}
	if len(view.Items) > 0 {
		return fmt.Sprintf("Try examining the %s.", view.Items[0].Name)
	}
	if len(view.Exits) > 0 {
		return fmt.Sprintf("You could head %s.", view.Exits[0])
	}
	return defaultHint
}

func examineHint(item *game.ItemSummary) string {
	if item.Takeable {
		return fmt.Sprintf("The %s might be worth carrying.", item.Name)
	}
	return "Every detail matters. Keep exploring."
}

func takeHint(item *game.ItemSummary) string {
	return fmt.Sprintf("Perhaps the %s can be used on something you've seen.", item.Name)
}

func useHint(outcome *game.UseOutcome) string {
	if outcome.Yield != nil {
		return fmt.Sprintf("Examine the %s to learn more about it.", outcome.Yield.Name)
	}
	return "Look around - something may have changed."
}
