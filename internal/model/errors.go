package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Coordinate errors
	ErrOutOfBounds       = errors.New("coordinate out of bounds")
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// Move errors
	ErrIllegalMove  = errors.New("illegal move")
	ErrTileOccupied = fmt.Errorf("%w: tile is already occupied", ErrIllegalMove)
	ErrNoCapture    = fmt.Errorf("%w: no capture in any direction", ErrIllegalMove)

	// Game state errors
	ErrGameOver      = errors.New("game is over")
	ErrNotStarted    = errors.New("game has not started")
	ErrNotPlayerTurn = errors.New("not this player's turn")

	// Strategy errors
	ErrNoMove          = errors.New("no move available for this strategy")
	ErrUnknownStrategy = errors.New("unknown strategy")

	// Configuration errors
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrUnknownBoardKind = errors.New("unknown board kind")
	ErrInvalidSnapshot  = errors.New("snapshot does not match board")
)
