package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate identifies a tile on the board.
// Hexagonal rows are offset, so Col runs diagonally from top left to bottom right.
type Coordinate struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// At is shorthand for Coordinate{Col: col, Row: row}
func At(col, row int) Coordinate {
	return Coordinate{Col: col, Row: row}
}

// Add returns the coordinate offset by d
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{Col: c.Col + d.Col, Row: c.Row + d.Row}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Less orders coordinates top-then-left: by row, then by column
func (c Coordinate) Less(other Coordinate) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// ParseCoordinate reads "c,r", "(c,r)" or "c r"
func ParseCoordinate(s string) (Coordinate, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimSuffix(strings.TrimPrefix(trimmed, "("), ")")

	parts := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}

	col, err := strconv.Atoi(parts[0])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: column %q", ErrInvalidCoordinate, parts[0])
	}
	row, err := strconv.Atoi(parts[1])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: row %q", ErrInvalidCoordinate, parts[1])
	}
	return At(col, row), nil
}
