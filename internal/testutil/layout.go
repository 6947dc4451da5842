package testutil

import (
	"fmt"
	"strings"

	"github.com/mcoot/reversi-go/internal/model"
)

// Layout builds a snapshot from rows drawn the way the text view draws them:
// X for black, O for white, _ for empty, one character per in-bounds tile,
// whitespace ignored. Rows must cover the whole board.
func Layout(g model.Geometry, turn model.Player, rows ...string) (model.Snapshot, error) {
	size := g.Size()
	if len(rows) != size {
		return model.Snapshot{}, fmt.Errorf("layout has %d rows, board has %d", len(rows), size)
	}

	tiles := make([][]model.Player, size)
	for c := range tiles {
		tiles[c] = make([]model.Player, size)
	}

	for r, row := range rows {
		symbols := strings.Join(strings.Fields(row), "")
		i := 0
		for c := 0; c < size; c++ {
			if !g.InBounds(model.At(c, r)) {
				continue
			}
			if i >= len(symbols) {
				return model.Snapshot{}, fmt.Errorf("row %d is too short", r)
			}
			switch symbols[i] {
			case 'X':
				tiles[c][r] = model.Black
			case 'O':
				tiles[c][r] = model.White
			case '_':
			default:
				return model.Snapshot{}, fmt.Errorf("row %d: unexpected symbol %q", r, symbols[i])
			}
			i++
		}
		if i != len(symbols) {
			return model.Snapshot{}, fmt.Errorf("row %d is too long", r)
		}
	}

	return model.Snapshot{
		Kind:       g.Kind(),
		SideLength: g.SideLength(),
		Tiles:      tiles,
		Turn:       turn,
	}, nil
}
