package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/reversi-go/internal/model"
)

// RenderBoard draws the board one row per line: X for black, O for white and
// _ for empty. Hex rows are indented so the hexagon lines up, with tiles
// separated by spaces; square rows are drawn unspaced.
func RenderBoard(w io.Writer, game model.ReadOnlyGame) error {
	var sb strings.Builder

	switch game.Geometry().Kind() {
	case model.BoardKindHex:
		renderHex(&sb, game)
	default:
		renderSquare(&sb, game)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func renderHex(sb *strings.Builder, game model.ReadOnlyGame) {
	size := game.Size()
	mid := (size - 1) / 2

	for r := 0; r < size; r++ {
		indent := r - mid
		if indent < 0 {
			indent = -indent
		}
		sb.WriteString(strings.Repeat(" ", indent))

		first := true
		for c := 0; c < size; c++ {
			at := model.At(c, r)
			if !game.InBounds(at) {
				continue
			}
			if !first {
				sb.WriteByte(' ')
			}
			first = false
			sb.WriteString(tileSymbol(game, at))
		}
		sb.WriteByte('\n')
	}
}

func renderSquare(sb *strings.Builder, game model.ReadOnlyGame) {
	size := game.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			sb.WriteString(tileSymbol(game, model.At(c, r)))
		}
		sb.WriteByte('\n')
	}
}

func tileSymbol(game model.ReadOnlyGame, at model.Coordinate) string {
	owner, err := game.TileAt(at)
	if err != nil {
		return " "
	}
	return owner.Symbol()
}

// FormatMoves joins coordinates as "(c,r) (c,r) ..."
func FormatMoves(moves []model.Coordinate) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// FormatScore renders a score as "black 5 - white 2"
func FormatScore(score model.Score) string {
	return fmt.Sprintf("black %d - white %d", score.Black, score.White)
}
