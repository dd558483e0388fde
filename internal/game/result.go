package game

// ErrorCode is the machine-readable reason attached to a failed
// command. Failed commands are game outcomes, not faults; the
// player's session is always left unmodified.
type ErrorCode string

const (
	ErrorCodeNotFound     ErrorCode = "not_found"
	ErrorCodeNotVisible   ErrorCode = "not_visible"
	ErrorCodeNotTakeable  ErrorCode = "not_takeable"
	ErrorCodeNoSuchExit   ErrorCode = "no_such_exit"
	ErrorCodeNoEffect     ErrorCode = "no_effect"
	ErrorCodeInvalidInput ErrorCode = "invalid_input"
)

// LocationSummary is the display form of a location in a result.
type LocationSummary struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ItemSummary is the display form of an item in a result. For examine
// results Description carries the item's full examine text.
type ItemSummary struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Takeable    bool   `json:"takeable,omitempty"`
}

// CommandResult is what every command returns to the caller. Hint is
// always non-empty, success or failure.
type CommandResult struct {
	Success   bool             `json:"success"`
	Location  *LocationSummary `json:"location,omitempty"`
	Items     []ItemSummary    `json:"items,omitempty"`
	Error     ErrorCode        `json:"error,omitempty"`
	Message   string           `json:"message,omitempty"`
	Narration string           `json:"narration,omitempty"`
	Hint      string           `json:"hint"`
}
