package game

import "errors"

// Game errors are returned as values from transitions, never panicked; a
// failed transition leaves the game unchanged.
var (
	ErrInvalidPlayer  = errors.New("invalid player")
	ErrInvalidMove    = errors.New("invalid move")
	ErrPlayerNotFound = errors.New("player not found")
)
