package match

import "github.com/mcoot/reversi-go/internal/model"

// View is what the controller reports to
type View interface {
	// Render shows the current board, called whenever a human is to move
	Render(game model.ReadOnlyGame)
	// InvalidMove reports a rejected human move. The game is unchanged.
	InvalidMove(err error)
	// NotYourTurn reports human input while a machine is to move
	NotYourTurn()
	GameOver(summary model.MatchSummary)
}

// NopView ignores everything, for matches nobody is watching
type NopView struct{}

func (NopView) Render(model.ReadOnlyGame)   {}
func (NopView) InvalidMove(error)           {}
func (NopView) NotYourTurn()                {}
func (NopView) GameOver(model.MatchSummary) {}
