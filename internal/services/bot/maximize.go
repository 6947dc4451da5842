package bot

import (
	"slices"

	"github.com/mcoot/reversi-go/internal/model"
)

// MaximizeCaptures plays the move capturing the most opponent tiles, breaking
// ties by the topmost row and then the leftmost column
type MaximizeCaptures struct{}

var _ Ranker = MaximizeCaptures{}

func (MaximizeCaptures) ChooseMove(game model.ReadOnlyGame) (model.Coordinate, bool) {
	ranked := MaximizeCaptures{}.RankMoves(game)
	if len(ranked) == 0 {
		return model.Coordinate{}, false
	}
	return ranked[0], true
}

// RankMoves returns every legal move, most captures first
func (MaximizeCaptures) RankMoves(game model.ReadOnlyGame) []model.Coordinate {
	type candidate struct {
		at       model.Coordinate
		captures int
	}

	var candidates []candidate
	size := game.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			at := model.At(c, r)
			if !game.InBounds(at) || !game.IsLegal(at) {
				continue
			}
			captures, err := game.PotentialScore(at)
			if err != nil {
				continue
			}
			candidates = append(candidates, candidate{at: at, captures: captures})
		}
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		if a.captures != b.captures {
			return b.captures - a.captures
		}
		if a.at.Row != b.at.Row {
			return a.at.Row - b.at.Row
		}
		return a.at.Col - b.at.Col
	})

	ranked := make([]model.Coordinate, len(candidates))
	for i, cand := range candidates {
		ranked[i] = cand.at
	}
	return ranked
}
