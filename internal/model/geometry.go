package model

import (
	"fmt"
	"strings"
)

// BoardKind names a board geometry
type BoardKind string

const (
	BoardKindHex    BoardKind = "hex"
	BoardKindSquare BoardKind = "square"
)

// ParseBoardKind converts user input into a BoardKind
func ParseBoardKind(s string) (BoardKind, error) {
	switch BoardKind(strings.ToLower(strings.TrimSpace(s))) {
	case BoardKindHex:
		return BoardKindHex, nil
	case BoardKindSquare:
		return BoardKindSquare, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBoardKind, s)
	}
}

// DefaultSideLength returns the side length used when none is configured
func (k BoardKind) DefaultSideLength() int {
	if k == BoardKindSquare {
		return 8
	}
	return 6
}

// Placement is a tile owned by a player at a coordinate
type Placement struct {
	At     Coordinate
	Player Player
}

// Geometry defines the shape of a board: which array positions are playable,
// the axes along which captures happen, its corners, and its starting layout.
// Directions and Corners are fixed for the lifetime of a geometry.
type Geometry interface {
	Kind() BoardKind
	// SideLength is the length of one edge of the board, in tiles
	SideLength() int
	// Size is the dimension of the square array backing the board
	Size() int
	InBounds(c Coordinate) bool
	// Directions returns the capture direction vectors in their fixed order
	Directions() []Coordinate
	Corners() []Coordinate
	// Seed returns the tiles placed before the first move
	Seed() []Placement
}
