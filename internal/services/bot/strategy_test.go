package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/reversi-go/internal/dependencies/mocks"
	"github.com/mcoot/reversi-go/internal/model"
	"github.com/mcoot/reversi-go/internal/services/board"
	"github.com/mcoot/reversi-go/internal/services/bot"
	"github.com/mcoot/reversi-go/internal/services/game"
	"github.com/mcoot/reversi-go/internal/testutil"
)

type StrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	hex        *game.Engine
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.hex = s.newEngine(model.BoardKindHex, 4)
}

func (s *StrategySuite) newEngine(kind model.BoardKind, side int) *game.Engine {
	g, err := board.New(kind, side)
	s.Require().NoError(err)
	return game.NewEngine(g, testutil.NopLogger())
}

func (s *StrategySuite) layout(kind model.BoardKind, side int, rows ...string) *game.Engine {
	e := s.newEngine(kind, side)
	snap, err := testutil.Layout(e.Geometry(), model.Black, rows...)
	s.Require().NoError(err)
	s.Require().NoError(e.Restore(snap))
	return e
}

// cornerTrap has a two-tile capture next to a corner at (0,1) and a one-tile
// capture in open space at (2,3)
func (s *StrategySuite) cornerTrap() *game.Engine {
	return s.layout(model.BoardKindSquare, 8,
		"________",
		"_OOX____",
		"________",
		"___OX___",
		"________",
		"________",
		"________",
		"________",
	)
}

func (s *StrategySuite) finished(e *game.Engine) *game.Engine {
	s.Require().NoError(e.Pass())
	s.Require().NoError(e.Pass())
	return e
}

// MaximizeCaptures tests

func (s *StrategySuite) TestMaximizeCapturesTieBreaksTopThenLeft() {
	ranked := bot.MaximizeCaptures{}.RankMoves(s.hex)

	s.Equal([]model.Coordinate{
		model.At(4, 1),
		model.At(2, 2), model.At(5, 2),
		model.At(1, 4), model.At(4, 4),
		model.At(2, 5),
	}, ranked)

	move, ok := bot.MaximizeCaptures{}.ChooseMove(s.hex)
	s.True(ok)
	s.Equal(model.At(4, 1), move)
}

func (s *StrategySuite) TestMaximizeCapturesOrdersByCaptureCount() {
	e := s.cornerTrap()

	ranked := bot.MaximizeCaptures{}.RankMoves(e)

	s.Equal([]model.Coordinate{model.At(0, 1), model.At(2, 3)}, ranked)
}

func (s *StrategySuite) TestMaximizeCapturesRankingIsDeterministic() {
	e := s.newEngine(model.BoardKindSquare, 8)

	first := bot.MaximizeCaptures{}.RankMoves(e)
	second := bot.MaximizeCaptures{}.RankMoves(e)

	s.NotEmpty(first)
	s.Equal(first, second)
}

func (s *StrategySuite) TestMaximizeCapturesDoesNotMutate() {
	before := s.hex.Snapshot()

	_, _ = bot.MaximizeCaptures{}.ChooseMove(s.hex)
	_, _ = bot.AvoidCornerNeighbors{}.ChooseMove(s.hex)
	_, _ = bot.PreferCorners{}.ChooseMove(s.hex)

	s.Equal(before, s.hex.Snapshot())
}

func (s *StrategySuite) TestMaximizeCapturesDeclinesWhenGameOver() {
	e := s.finished(s.hex)

	_, ok := bot.MaximizeCaptures{}.ChooseMove(e)
	s.False(ok)
	s.Empty(bot.MaximizeCaptures{}.RankMoves(e))
}

func (s *StrategySuite) TestMaximizeCapturesDeclinesWithoutMoves() {
	e := s.layout(model.BoardKindSquare, 4,
		"XXXX",
		"XXXX",
		"XXXX",
		"XXX_",
	)

	_, ok := bot.MaximizeCaptures{}.ChooseMove(e)
	s.False(ok)
}

// PreferCorners tests

func (s *StrategySuite) TestPreferCornersDeclinesWithoutLegalCorner() {
	_, ok := bot.PreferCorners{}.ChooseMove(s.hex)
	s.False(ok)
}

func (s *StrategySuite) TestPreferCornersTakesLegalCorner() {
	e := s.layout(model.BoardKindSquare, 4,
		"_OOX",
		"____",
		"_O__",
		"X___",
	)

	move, ok := bot.PreferCorners{}.ChooseMove(e)
	s.True(ok)
	s.Equal(model.At(0, 0), move)
}

func (s *StrategySuite) TestFirstOfTwoFallsThroughToMaximize() {
	strategy := bot.FirstOfTwo(bot.PreferCorners{}, bot.MaximizeCaptures{})

	move, ok := strategy.ChooseMove(s.hex)

	s.True(ok)
	s.Equal(model.At(4, 1), move)
}

// AvoidCornerNeighbors tests

func (s *StrategySuite) TestAvoidCornerNeighborsSkipsBestMoveNextToCorner() {
	e := s.cornerTrap()

	move, ok := bot.AvoidCornerNeighbors{}.ChooseMove(e)

	s.True(ok)
	s.Equal(model.At(2, 3), move)
	s.Equal([]model.Coordinate{model.At(2, 3)}, bot.AvoidCornerNeighbors{}.RankMoves(e))
}

func (s *StrategySuite) TestAvoidCornerNeighborsDeclinesWhenEveryMoveTouchesCorner() {
	// Every opening move on a 4x4 board is next to a corner
	e := s.newEngine(model.BoardKindSquare, 4)
	s.True(e.AnyValidMoves())

	_, ok := bot.AvoidCornerNeighbors{}.ChooseMove(e)
	s.False(ok)
}

func (s *StrategySuite) TestAvoidCornerNeighborsOnHexOpening() {
	move, ok := bot.AvoidCornerNeighbors{}.ChooseMove(s.hex)
	s.True(ok)
	s.Equal(model.At(4, 1), move)
}

// Combinator tests

func (s *StrategySuite) TestFirstOfShortCircuits() {
	calls := map[string]int{}
	counting := func(name string, move model.Coordinate, ok bool) bot.Strategy {
		return bot.StrategyFunc(func(model.ReadOnlyGame) (model.Coordinate, bool) {
			calls[name]++
			return move, ok
		})
	}

	strategy := bot.FirstOf(
		counting("a", model.Coordinate{}, false),
		counting("b", model.At(1, 2), true),
		counting("c", model.At(3, 4), true),
	)

	move, ok := strategy.ChooseMove(s.hex)

	s.True(ok)
	s.Equal(model.At(1, 2), move)
	s.Equal(map[string]int{"a": 1, "b": 1}, calls)
}

func (s *StrategySuite) TestFirstOfTwoSkipsSecondWhenFirstSucceeds() {
	secondCalled := false
	second := bot.StrategyFunc(func(model.ReadOnlyGame) (model.Coordinate, bool) {
		secondCalled = true
		return model.Coordinate{}, false
	})

	move, ok := bot.FirstOfTwo(bot.MaximizeCaptures{}, second).ChooseMove(s.hex)

	s.True(ok)
	s.Equal(model.At(4, 1), move)
	s.False(secondCalled)
}

func (s *StrategySuite) TestFirstOfDeclinesWhenAllDecline() {
	_, ok := bot.FirstOf(bot.PreferCorners{}, bot.AvoidCornerNeighbors{}).ChooseMove(s.newEngine(model.BoardKindSquare, 4))
	s.False(ok)

	_, ok = bot.FirstOf().ChooseMove(s.hex)
	s.False(ok)
}

// Infallible tests

func (s *StrategySuite) TestInfallibleReturnsMove() {
	move, err := bot.Infallible(bot.MaximizeCaptures{}).ChooseMove(s.hex)
	s.Require().NoError(err)
	s.Equal(model.At(4, 1), move)
}

func (s *StrategySuite) TestInfallibleFailsWithNoMove() {
	_, err := bot.Infallible(bot.PreferCorners{}).ChooseMove(s.hex)
	s.ErrorIs(err, model.ErrNoMove)

	_, err = bot.Infallible(bot.MaximizeCaptures{}).ChooseMove(s.finished(s.newEngine(model.BoardKindHex, 4)))
	s.ErrorIs(err, model.ErrNoMove)
}

// RandomStrategy tests

func (s *StrategySuite) TestRandomStrategyPicksQueuedIndex() {
	s.mockRandom.QueueIntn(2)

	move, ok := bot.NewRandomStrategy(s.mockRandom).ChooseMove(s.hex)

	s.True(ok)
	s.Equal(model.At(5, 2), move)
}

func (s *StrategySuite) TestRandomStrategyDeclinesWhenGameOver() {
	_, ok := bot.NewRandomStrategy(s.mockRandom).ChooseMove(s.finished(s.hex))
	s.False(ok)
}

// Build tests

func (s *StrategySuite) TestBuildKnownStrategies() {
	for _, name := range model.ValidMachineStrategies() {
		strategy, err := bot.Build(name, s.mockRandom)
		s.Require().NoError(err, name)
		s.NotNil(strategy)
	}
}

func (s *StrategySuite) TestBuildUnknownStrategy() {
	_, err := bot.Build("grandmaster", s.mockRandom)
	s.ErrorIs(err, model.ErrUnknownStrategy)

	_, err = bot.Build(model.StrategyHuman, s.mockRandom)
	s.ErrorIs(err, model.ErrUnknownStrategy)
}

func (s *StrategySuite) TestAdvancedPrefersCornerThenAvoidsNeighbors() {
	advanced, err := bot.Build(model.StrategyAdvanced, s.mockRandom)
	s.Require().NoError(err)

	move, ok := advanced.ChooseMove(s.cornerTrap())
	s.True(ok)
	s.Equal(model.At(2, 3), move)

	corner := s.layout(model.BoardKindSquare, 4,
		"_OOX",
		"____",
		"_O__",
		"X___",
	)
	move, ok = advanced.ChooseMove(corner)
	s.True(ok)
	s.Equal(model.At(0, 0), move)
}
