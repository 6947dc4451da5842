package board

import (
	"fmt"

	"github.com/mcoot/reversi-go/internal/model"
)

// Board edge limits accepted by either geometry
const (
	MinSideLength = 2
	MaxSideLength = 64
)

func checkSideLength(kind model.BoardKind, sideLength int) error {
	if sideLength < MinSideLength {
		return fmt.Errorf("%w: %s side length %d is below %d", model.ErrInvalidBoardSize, kind, sideLength, MinSideLength)
	}
	if sideLength > MaxSideLength {
		return fmt.Errorf("%w: %s side length %d is above %d", model.ErrInvalidBoardSize, kind, sideLength, MaxSideLength)
	}
	return nil
}

// New creates the geometry for a board kind
func New(kind model.BoardKind, sideLength int) (model.Geometry, error) {
	switch kind {
	case model.BoardKindHex:
		return NewHex(sideLength)
	case model.BoardKindSquare:
		return NewSquare(sideLength)
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownBoardKind, kind)
	}
}

// IsCornerNeighbor returns true if c is one step from any corner along the
// geometry's direction vectors
func IsCornerNeighbor(g model.Geometry, c model.Coordinate) bool {
	corners := g.Corners()
	for _, d := range g.Directions() {
		nb := c.Add(d)
		for _, corner := range corners {
			if nb == corner {
				return true
			}
		}
	}
	return false
}

func cloneCoordinates(in []model.Coordinate) []model.Coordinate {
	out := make([]model.Coordinate, len(in))
	copy(out, in)
	return out
}
