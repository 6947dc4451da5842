package bot

import (
	"fmt"

	"github.com/mcoot/reversi-go/internal/dependencies/random"
	"github.com/mcoot/reversi-go/internal/model"
)

// Build returns the machine strategy registered under name
func Build(name string, rnd random.Random) (Strategy, error) {
	switch name {
	case model.StrategySimple:
		return MaximizeCaptures{}, nil
	case model.StrategyIntermediate:
		return AvoidCornerNeighbors{}, nil
	case model.StrategyAdvanced:
		return FirstOfTwo(PreferCorners{}, AvoidCornerNeighbors{}), nil
	case model.StrategyRandom:
		return NewRandomStrategy(rnd), nil
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownStrategy, name)
	}
}
