package bot

import "github.com/mcoot/reversi-go/internal/model"

// firstOf tries each strategy in order and returns the first move found
type firstOf struct {
	strategies []Strategy
}

// FirstOfTwo tries first, falling back to second only if first declines
func FirstOfTwo(first, second Strategy) Strategy {
	return &firstOf{strategies: []Strategy{first, second}}
}

// FirstOf tries strategies in order until one produces a move. Later
// strategies are not evaluated once one succeeds.
func FirstOf(strategies ...Strategy) Strategy {
	return &firstOf{strategies: strategies}
}

func (f *firstOf) ChooseMove(game model.ReadOnlyGame) (model.Coordinate, bool) {
	for _, s := range f.strategies {
		if move, ok := s.ChooseMove(game); ok {
			return move, true
		}
	}
	return model.Coordinate{}, false
}
