package board

import (
	"fmt"

	"github.com/mcoot/reversi-go/internal/model"
)

// squareDirections run clockwise starting from north
var squareDirections = []model.Coordinate{
	{Col: 0, Row: -1},
	{Col: 1, Row: -1},
	{Col: 1, Row: 0},
	{Col: 1, Row: 1},
	{Col: 0, Row: 1},
	{Col: -1, Row: 1},
	{Col: -1, Row: 0},
	{Col: -1, Row: -1},
}

// Square is a classic Othello board, capturing along 4 axes (8 directions)
type Square struct {
	side int
}

var _ model.Geometry = (*Square)(nil)

// NewSquare creates a square geometry. The side length must be even.
func NewSquare(sideLength int) (*Square, error) {
	if err := checkSideLength(model.BoardKindSquare, sideLength); err != nil {
		return nil, err
	}
	if sideLength%2 != 0 {
		return nil, fmt.Errorf("%w: square side length %d is odd", model.ErrInvalidBoardSize, sideLength)
	}
	return &Square{side: sideLength}, nil
}

func (s *Square) Kind() model.BoardKind {
	return model.BoardKindSquare
}

func (s *Square) SideLength() int {
	return s.side
}

func (s *Square) Size() int {
	return s.side
}

func (s *Square) InBounds(c model.Coordinate) bool {
	return c.Col >= 0 && c.Col < s.side && c.Row >= 0 && c.Row < s.side
}

func (s *Square) Directions() []model.Coordinate {
	return cloneCoordinates(squareDirections)
}

func (s *Square) Corners() []model.Coordinate {
	last := s.side - 1
	return []model.Coordinate{
		{Col: 0, Row: 0},       // top left
		{Col: last, Row: 0},    // top right
		{Col: 0, Row: last},    // bottom left
		{Col: last, Row: last}, // bottom right
	}
}

// Seed is the standard 2x2 center cross
func (s *Square) Seed() []model.Placement {
	m := s.side/2 - 1
	return []model.Placement{
		{At: model.Coordinate{Col: m, Row: m}, Player: model.Black},
		{At: model.Coordinate{Col: m + 1, Row: m}, Player: model.White},
		{At: model.Coordinate{Col: m + 1, Row: m + 1}, Player: model.Black},
		{At: model.Coordinate{Col: m, Row: m + 1}, Player: model.White},
	}
}
