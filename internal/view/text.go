package view

import (
	"errors"
	"fmt"
	"io"

	"github.com/mcoot/reversi-go/internal/model"
	"github.com/mcoot/reversi-go/internal/services/match"
)

var _ match.View = (*Text)(nil)

// Text is a terminal view of a match, writing plain text to an io.Writer
type Text struct {
	out io.Writer
	// ShowMoves lists the legal moves under the board
	ShowMoves bool
}

// NewText creates a Text view writing to out
func NewText(out io.Writer) *Text {
	return &Text{out: out, ShowMoves: true}
}

// Render draws the board and whose turn it is
func (t *Text) Render(game model.ReadOnlyGame) {
	_ = RenderBoard(t.out, game)

	turn := game.Turn()
	fmt.Fprintf(t.out, "%s (%s) to move, %s\n", turn, turn.Symbol(), FormatScore(game.Score()))

	if !t.ShowMoves {
		return
	}
	moves := game.LegalMoves()
	if len(moves) == 0 {
		fmt.Fprintln(t.out, "No legal moves, you must pass")
		return
	}
	fmt.Fprintf(t.out, "Legal moves: %s\n", FormatMoves(moves))
}

// InvalidMove reports why a move was rejected
func (t *Text) InvalidMove(err error) {
	switch {
	case errors.Is(err, model.ErrOutOfBounds):
		fmt.Fprintln(t.out, "Invalid move: that tile is not on the board")
	case errors.Is(err, model.ErrTileOccupied):
		fmt.Fprintln(t.out, "Invalid move: that tile is already taken")
	case errors.Is(err, model.ErrNoCapture):
		fmt.Fprintln(t.out, "Invalid move: it would not capture anything")
	default:
		fmt.Fprintf(t.out, "Invalid move: %s\n", err)
	}
}

func (t *Text) NotYourTurn() {
	fmt.Fprintln(t.out, "Not your turn yet!")
}

// GameOver prints the final score
func (t *Text) GameOver(summary model.MatchSummary) {
	fmt.Fprintf(t.out, "Game over: %s\n", FormatScore(summary.Score))
	if summary.Winner == model.None {
		fmt.Fprintln(t.out, "It's a tie!")
		return
	}
	fmt.Fprintf(t.out, "Winner: %s\n", summary.Winner)
}
