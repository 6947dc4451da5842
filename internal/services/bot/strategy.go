package bot

import (
	"fmt"

	"github.com/mcoot/reversi-go/internal/model"
)

// Strategy chooses a move for the player to move. It may decline by
// returning false, either because no legal move exists or because none of
// the legal moves satisfy its policy. Strategies only read the game.
type Strategy interface {
	ChooseMove(game model.ReadOnlyGame) (model.Coordinate, bool)
}

// Ranker is a strategy that can also order every move it would consider,
// best first
type Ranker interface {
	Strategy
	RankMoves(game model.ReadOnlyGame) []model.Coordinate
}

// CommittedStrategy must produce a move, or fail with model.ErrNoMove
type CommittedStrategy interface {
	ChooseMove(game model.ReadOnlyGame) (model.Coordinate, error)
}

// StrategyFunc adapts a function to the Strategy interface
type StrategyFunc func(game model.ReadOnlyGame) (model.Coordinate, bool)

func (f StrategyFunc) ChooseMove(game model.ReadOnlyGame) (model.Coordinate, bool) {
	return f(game)
}

// infallible turns a declined move into model.ErrNoMove
type infallible struct {
	inner Strategy
}

// Infallible wraps a strategy for callers that need a committed answer
func Infallible(s Strategy) CommittedStrategy {
	return &infallible{inner: s}
}

func (s *infallible) ChooseMove(game model.ReadOnlyGame) (model.Coordinate, error) {
	move, ok := s.inner.ChooseMove(game)
	if !ok {
		return model.Coordinate{}, fmt.Errorf("%w for %s", model.ErrNoMove, game.Turn())
	}
	return move, nil
}
