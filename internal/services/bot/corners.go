package bot

import (
	"github.com/mcoot/reversi-go/internal/model"
	"github.com/mcoot/reversi-go/internal/services/board"
)

// PreferCorners plays the first legal corner, in the geometry's corner order
type PreferCorners struct{}

func (PreferCorners) ChooseMove(game model.ReadOnlyGame) (model.Coordinate, bool) {
	for _, corner := range game.Corners() {
		if game.IsLegal(corner) {
			return corner, true
		}
	}
	return model.Coordinate{}, false
}

// AvoidCornerNeighbors takes the MaximizeCaptures ranking and plays the best
// move that does not sit next to a corner. It declines if every ranked move
// touches a corner.
type AvoidCornerNeighbors struct{}

var _ Ranker = AvoidCornerNeighbors{}

func (a AvoidCornerNeighbors) ChooseMove(game model.ReadOnlyGame) (model.Coordinate, bool) {
	ranked := a.RankMoves(game)
	if len(ranked) == 0 {
		return model.Coordinate{}, false
	}
	return ranked[0], true
}

// RankMoves is the MaximizeCaptures ranking without corner neighbours
func (AvoidCornerNeighbors) RankMoves(game model.ReadOnlyGame) []model.Coordinate {
	var ranked []model.Coordinate
	geometry := game.Geometry()
	for _, at := range (MaximizeCaptures{}).RankMoves(game) {
		if !board.IsCornerNeighbor(geometry, at) {
			ranked = append(ranked, at)
		}
	}
	return ranked
}
