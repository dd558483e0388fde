package commands

import (
	"errors"

	"github.com/pixil98/go-adventure/internal/game"
)

// failure builds a failed result with a corrective hint attached.
func failure(command string, code game.ErrorCode, message string) *game.CommandResult {
	return &game.CommandResult{
		Success: false,
		Error:   code,
		Message: message,
		Hint:    hintForError(command, code),
	}
}

// failureFromErr translates an engine error into a failed result.
func failureFromErr(command string, err error) *game.CommandResult {
	code, message := classify(err)
	return failure(command, code, message)
}

func classify(err error) (game.ErrorCode, string) {
	switch {
	case errors.Is(err, game.ErrItemNotFound):
		return game.ErrorCodeNotFound, "You don't see anything like that."
	case errors.Is(err, game.ErrLocationNotFound):
		return game.ErrorCodeNotFound, "That place doesn't exist."
	case errors.Is(err, game.ErrPlayerNotFound):
		return game.ErrorCodeNotFound, "Unknown player."
	case errors.Is(err, game.ErrItemNotVisible):
		return game.ErrorCodeNotVisible, "That isn't within reach."
	case errors.Is(err, game.ErrItemNotTakeable):
		return game.ErrorCodeNotTakeable, "You can't take that."
	case errors.Is(err, game.ErrNoSuchExit):
		return game.ErrorCodeNoSuchExit, "You can't go that way."
	case errors.Is(err, game.ErrNoEffect):
		return game.ErrorCodeNoEffect, "Nothing happens."
	default:
		return game.ErrorCodeInvalidInput, err.Error()
	}
}
