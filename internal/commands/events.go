package commands

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pixil98/go-adventure/internal/game"
)

// Event is the message emitted for every executed command. The hosted
// session relay consumes these to keep other participants informed.
type Event struct {
	Id        string         `json:"id"`
	Player    string         `json:"player"`
	Command   string         `json:"command"`
	Success   bool           `json:"success"`
	Narration string         `json:"narration,omitempty"`
	Error     game.ErrorCode `json:"error,omitempty"`
}

func marshalEvent(playerId, command string, res *game.CommandResult) ([]byte, error) {
	return json.Marshal(Event{
		Id:        uuid.NewString(),
		Player:    playerId,
		Command:   command,
		Success:   res.Success,
		Narration: res.Narration,
		Error:     res.Error,
	})
}
