package model

import "errors"

// Common errors used across the application
var (
	// Strategy errors
	ErrNoLegalMoves   = errors.New("no legal moves supplied")
	ErrCardAccounted  = errors.New("card is already accounted for")
	ErrUnknownVariant = errors.New("unknown strategy variant")

	// Engine errors
	ErrIllegalMove = errors.New("move is not legal in this position")
	ErrGameOver    = errors.New("game is already over")
	ErrNotYourTurn = errors.New("not this player's turn")

	// Storage errors
	ErrMatchRecordNotFound = errors.New("match record not found")
)
