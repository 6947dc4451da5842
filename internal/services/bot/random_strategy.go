package bot

import (
	"github.com/mcoot/reversi-go/internal/dependencies/random"
	"github.com/mcoot/reversi-go/internal/model"
)

// RandomStrategy picks uniformly among the legal moves
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseMove picks a random legal move, declining if there are none
func (s *RandomStrategy) ChooseMove(game model.ReadOnlyGame) (model.Coordinate, bool) {
	moves := game.LegalMoves()
	if len(moves) == 0 {
		return model.Coordinate{}, false
	}
	return moves[s.random.Intn(len(moves))], true
}
