package factory

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/reversi-go/internal/model"
	"github.com/mcoot/reversi-go/internal/view"
)

type IntegrationSuite struct {
	suite.Suite
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) newTestApp(cfg Config) *TestApp {
	app, err := NewTestApp(cfg)
	s.Require().NoError(err)
	return app
}

// Test: Defaults give a hex board of side 6 with two human seats
func (s *IntegrationSuite) TestDefaults() {
	app := s.newTestApp(Config{})

	s.Equal(model.BoardKindHex, app.Geometry.Kind())
	s.Equal(6, app.Geometry.SideLength())
	s.Equal(11, app.Game.Size())
	s.False(app.Controller.Seat(model.Black).IsMachine())
	s.False(app.Controller.Seat(model.White).IsMachine())
}

// Test: Complete machine vs machine match on each board
func (s *IntegrationSuite) TestMachineMatchesComplete() {
	for _, kind := range []model.BoardKind{model.BoardKindHex, model.BoardKindSquare} {
		app := s.newTestApp(Config{
			Board: kind,
			Black: model.StrategySimple,
			White: model.StrategyAdvanced,
		})

		s.Require().NoError(app.Controller.Start())

		summary := app.Controller.Summary()
		s.True(summary.Finished, kind)
		s.Equal(kind, summary.Board)
		s.Equal(len(app.Geometry.Seed())+summary.Moves, summary.Score.Total(), kind)
		s.True(app.Game.IsGameOver(), kind)
		s.False(app.Game.AnyValidMoves(), kind)
	}
}

// Test: Random seats draw from the injected source
func (s *IntegrationSuite) TestRandomSeatsUseInjectedRandom() {
	app := s.newTestApp(Config{
		Board:      model.BoardKindSquare,
		SideLength: 4,
		Black:      model.StrategyRandom,
		White:      model.StrategyRandom,
	})

	s.Require().NoError(app.Controller.Start())

	s.True(app.Controller.IsFinished())
	s.NotEmpty(app.MockRandom.Bounds)
	s.Equal(4, app.MockRandom.Bounds[0]) // four opening moves on a 4x4 board
}

// Test: A fixed seed replays the same match
func (s *IntegrationSuite) TestSeededMatchesAreReproducible() {
	seed := uint64(42)
	play := func() model.MatchSummary {
		app, err := New(Config{
			Board: model.BoardKindHex,
			Black: model.StrategyRandom,
			White: model.StrategyRandom,
			Seed:  &seed,
		})
		s.Require().NoError(err)
		s.Require().NoError(app.Controller.Start())
		return app.Controller.Summary()
	}

	first := play()
	second := play()

	s.True(first.Finished)
	s.Equal(first.Score, second.Score)
	s.Equal(first.Moves, second.Moves)
	s.Equal(first.Passes, second.Passes)
}

// Test: Human plays against a machine through the text view
func (s *IntegrationSuite) TestHumanAgainstMachine() {
	out := &bytes.Buffer{}
	app := s.newTestApp(Config{
		Board:      model.BoardKindHex,
		SideLength: 4,
		White:      model.StrategySimple,
		View:       view.NewText(out),
	})

	s.Require().NoError(app.Controller.Start())
	s.Contains(out.String(), "black (X) to move")

	err := app.Controller.RequestMove(model.At(3, 3))
	s.ErrorIs(err, model.ErrNoCapture)
	s.Contains(out.String(), "Invalid move: it would not capture anything")

	s.Require().NoError(app.Controller.RequestMove(model.At(4, 1)))
	s.Equal(model.Black, app.Game.Turn())
	s.Equal(2, app.Controller.Summary().Moves)
}

// Test: Configuration errors
func (s *IntegrationSuite) TestInvalidConfig() {
	_, err := NewTestApp(Config{Black: "grandmaster"})
	s.ErrorIs(err, model.ErrUnknownStrategy)

	_, err = NewTestApp(Config{White: "grandmaster"})
	s.ErrorIs(err, model.ErrUnknownStrategy)

	_, err = NewTestApp(Config{Board: model.BoardKindSquare, SideLength: 7})
	s.ErrorIs(err, model.ErrInvalidBoardSize)

	_, err = NewTestApp(Config{Board: "triangle"})
	s.ErrorIs(err, model.ErrUnknownBoardKind)
}
