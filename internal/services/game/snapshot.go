package game

import (
	"fmt"

	"github.com/mcoot/reversi-go/internal/model"
)

// Clone returns an independent copy of the engine's state with no listeners
// and no logging. Mutating the clone never affects e.
func (e *Engine) Clone() *Engine {
	return &Engine{
		geometry:   e.geometry,
		directions: e.directions,
		tiles:      cloneTiles(e.tiles),
		turn:       e.turn,
		passed:     e.passed,
		over:       e.over,
		logger:     discardLogger(),
	}
}

// Snapshot returns a detached copy of the board and turn state
func (e *Engine) Snapshot() model.Snapshot {
	return model.Snapshot{
		Kind:       e.geometry.Kind(),
		SideLength: e.geometry.SideLength(),
		Tiles:      cloneTiles(e.tiles),
		Turn:       e.turn,
		Passed:     e.passed,
		Over:       e.over,
	}
}

// Restore replaces the engine's state with a snapshot taken from a board of
// the same geometry. Listeners are not notified.
func (e *Engine) Restore(s model.Snapshot) error {
	if s.Kind != e.geometry.Kind() || s.SideLength != e.geometry.SideLength() {
		return fmt.Errorf("%w: snapshot is %s/%d, board is %s/%d",
			model.ErrInvalidSnapshot, s.Kind, s.SideLength, e.geometry.Kind(), e.geometry.SideLength())
	}
	size := e.geometry.Size()
	if len(s.Tiles) != size {
		return fmt.Errorf("%w: expected %d columns, got %d", model.ErrInvalidSnapshot, size, len(s.Tiles))
	}
	for c, col := range s.Tiles {
		if len(col) != size {
			return fmt.Errorf("%w: column %d has %d rows, expected %d", model.ErrInvalidSnapshot, c, len(col), size)
		}
		for r, t := range col {
			if t != model.None && t != model.Black && t != model.White {
				return fmt.Errorf("%w: unknown tile value %d at %s", model.ErrInvalidSnapshot, int(t), model.At(c, r))
			}
			if t != model.None && !e.geometry.InBounds(model.At(c, r)) {
				return fmt.Errorf("%w: tile outside the board at %s", model.ErrInvalidSnapshot, model.At(c, r))
			}
		}
	}
	if s.Turn != model.Black && s.Turn != model.White {
		return fmt.Errorf("%w: turn must be black or white", model.ErrInvalidSnapshot)
	}

	e.tiles = cloneTiles(s.Tiles)
	e.turn = s.Turn
	e.passed = s.Passed
	e.over = s.Over
	return nil
}

func cloneTiles(tiles [][]model.Player) [][]model.Player {
	out := make([][]model.Player, len(tiles))
	for i, col := range tiles {
		out[i] = make([]model.Player, len(col))
		copy(out[i], col)
	}
	return out
}
