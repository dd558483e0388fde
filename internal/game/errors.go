package game

import "errors"

var (
	ErrPlayerNotFound   = errors.New("player not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrItemNotVisible   = errors.New("item is not visible from here")
	ErrItemNotTakeable  = errors.New("item cannot be taken")
	ErrNoSuchExit       = errors.New("no exit in that direction")
	ErrNoEffect         = errors.New("those cannot be used together")
)
