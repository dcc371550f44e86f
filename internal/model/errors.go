package model

import "errors"

// Common errors used across the application. All are per-request failures:
// shared state is validated before it is mutated, so a returned error never
// leaves a match or board partially updated.
var (
	// Match errors
	ErrMatchNotFound = errors.New("match not found")
	ErrUnknownPlayer = errors.New("player is not part of this match")

	// Turn errors
	ErrInvalidMove   = errors.New("move is out of bounds")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrNotYourTurn   = errors.New("not this player's turn")
	ErrMatchFinished = errors.New("match is already finished")
)
