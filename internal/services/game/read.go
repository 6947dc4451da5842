package game

import (
	"fmt"

	"github.com/mcoot/reversi-go/internal/model"
)

func (e *Engine) Geometry() model.Geometry {
	return e.geometry
}

// Size returns the dimension of the array backing the board
func (e *Engine) Size() int {
	return e.geometry.Size()
}

func (e *Engine) InBounds(c model.Coordinate) bool {
	return e.geometry.InBounds(c)
}

// TileAt returns the owner of the tile at c, None if it is empty
func (e *Engine) TileAt(c model.Coordinate) (model.Player, error) {
	if !e.geometry.InBounds(c) {
		return model.None, fmt.Errorf("%w: %s", model.ErrOutOfBounds, c)
	}
	return e.tiles[c.Col][c.Row], nil
}

// Turn returns the player to move
func (e *Engine) Turn() model.Player {
	return e.turn
}

func (e *Engine) IsGameOver() bool {
	return e.over
}

// LastActionWasPass reports whether the previous action was a pass
func (e *Engine) LastActionWasPass() bool {
	return e.passed
}

func (e *Engine) Corners() []model.Coordinate {
	return e.geometry.Corners()
}

func (e *Engine) Directions() []model.Coordinate {
	return e.geometry.Directions()
}

// Score counts every tile on the board
func (e *Engine) Score() model.Score {
	var s model.Score
	for _, col := range e.tiles {
		for _, t := range col {
			switch t {
			case model.Black:
				s.Black++
			case model.White:
				s.White++
			}
		}
	}
	return s
}

func (e *Engine) BlackScore() int {
	return e.Score().Black
}

func (e *Engine) WhiteScore() int {
	return e.Score().White
}

// IsLegal returns true if the mover could play at c. It never fails; any
// disqualifying condition, including a finished game, yields false.
func (e *Engine) IsLegal(c model.Coordinate) bool {
	return e.validateMove(e.turn, c) == nil
}

// AnyValidMoves scans the whole board for a legal move
func (e *Engine) AnyValidMoves() bool {
	if e.over {
		return false
	}
	size := e.geometry.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if e.IsLegal(model.At(c, r)) {
				return true
			}
		}
	}
	return false
}

// LegalMoves lists every legal move for the mover, top-then-left
func (e *Engine) LegalMoves() []model.Coordinate {
	if e.over {
		return nil
	}
	var moves []model.Coordinate
	size := e.geometry.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if coord := model.At(c, r); e.IsLegal(coord) {
				moves = append(moves, coord)
			}
		}
	}
	return moves
}

// PotentialScore returns how many opponent tiles a move at c would capture.
// The move is checked first and rejected with the same errors as Move; the
// count comes from applying the move to a private clone.
func (e *Engine) PotentialScore(c model.Coordinate) (int, error) {
	if err := e.validateMove(e.turn, c); err != nil {
		return 0, err
	}

	opponent := e.turn.Opponent()
	before := e.count(opponent)

	hypothetical := e.Clone()
	if err := hypothetical.Move(c); err != nil {
		return 0, err
	}
	after := hypothetical.count(opponent)

	if before > after {
		return before - after, nil
	}
	return after - before, nil
}

func (e *Engine) count(p model.Player) int {
	if p == model.Black {
		return e.Score().Black
	}
	return e.Score().White
}
