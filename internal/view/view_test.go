package view

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/reversi-go/internal/model"
	"github.com/mcoot/reversi-go/internal/services/board"
	"github.com/mcoot/reversi-go/internal/services/game"
	"github.com/mcoot/reversi-go/internal/testutil"
)

type ViewSuite struct {
	suite.Suite
	out *bytes.Buffer
}

func TestViewSuite(t *testing.T) {
	suite.Run(t, new(ViewSuite))
}

func (s *ViewSuite) SetupTest() {
	s.out = &bytes.Buffer{}
}

func (s *ViewSuite) newEngine(kind model.BoardKind, side int) *game.Engine {
	g, err := board.New(kind, side)
	s.Require().NoError(err)
	return game.NewEngine(g, testutil.NopLogger())
}

// RenderBoard tests

func (s *ViewSuite) TestRenderHexOpening() {
	s.Require().NoError(RenderBoard(s.out, s.newEngine(model.BoardKindHex, 4)))

	s.Equal(
		"   _ _ _ _\n"+
			"  _ _ _ _ _\n"+
			" _ _ X O _ _\n"+
			"_ _ O _ X _ _\n"+
			" _ _ X O _ _\n"+
			"  _ _ _ _ _\n"+
			"   _ _ _ _\n",
		s.out.String())
}

func (s *ViewSuite) TestRenderHexAfterMove() {
	e := s.newEngine(model.BoardKindHex, 4)
	s.Require().NoError(e.Move(model.At(2, 2)))

	s.Require().NoError(RenderBoard(s.out, e))

	s.Equal(
		"   _ _ _ _\n"+
			"  _ _ _ _ _\n"+
			" _ X X O _ _\n"+
			"_ _ X _ X _ _\n"+
			" _ _ X O _ _\n"+
			"  _ _ _ _ _\n"+
			"   _ _ _ _\n",
		s.out.String())
}

func (s *ViewSuite) TestRenderSquareOpening() {
	s.Require().NoError(RenderBoard(s.out, s.newEngine(model.BoardKindSquare, 4)))

	s.Equal("____\n_XO_\n_OX_\n____\n", s.out.String())
}

func (s *ViewSuite) TestRenderReportsWriteError() {
	err := RenderBoard(failingWriter{}, s.newEngine(model.BoardKindSquare, 4))
	s.Error(err)
}

func (s *ViewSuite) TestFormatters() {
	s.Equal("(4,1) (2,2)", FormatMoves([]model.Coordinate{model.At(4, 1), model.At(2, 2)}))
	s.Equal("", FormatMoves(nil))
	s.Equal("black 5 - white 2", FormatScore(model.Score{Black: 5, White: 2}))
}

// Text view tests

func (s *ViewSuite) TestTextRenderListsMoves() {
	NewText(s.out).Render(s.newEngine(model.BoardKindHex, 4))

	s.Contains(s.out.String(), "black (X) to move, black 3 - white 3\n")
	s.Contains(s.out.String(), "Legal moves: (4,1) (2,2) (5,2) (1,4) (4,4) (2,5)\n")
}

func (s *ViewSuite) TestTextRenderWithoutMoves() {
	e := s.newEngine(model.BoardKindSquare, 4)
	snap, err := testutil.Layout(e.Geometry(), model.Black,
		"XXXX",
		"XXXX",
		"XXXX",
		"XXX_",
	)
	s.Require().NoError(err)
	s.Require().NoError(e.Restore(snap))

	NewText(s.out).Render(e)

	s.Contains(s.out.String(), "No legal moves, you must pass\n")
}

func (s *ViewSuite) TestTextRenderHidesMoves() {
	text := NewText(s.out)
	text.ShowMoves = false

	text.Render(s.newEngine(model.BoardKindHex, 4))

	s.NotContains(s.out.String(), "Legal moves")
}

func (s *ViewSuite) TestTextInvalidMoveMessages() {
	text := NewText(s.out)

	text.InvalidMove(model.ErrOutOfBounds)
	text.InvalidMove(model.ErrTileOccupied)
	text.InvalidMove(model.ErrNoCapture)
	text.InvalidMove(model.ErrGameOver)

	s.Equal(
		"Invalid move: that tile is not on the board\n"+
			"Invalid move: that tile is already taken\n"+
			"Invalid move: it would not capture anything\n"+
			fmt.Sprintf("Invalid move: %s\n", model.ErrGameOver),
		s.out.String())
}

func (s *ViewSuite) TestTextNotYourTurn() {
	NewText(s.out).NotYourTurn()
	s.Equal("Not your turn yet!\n", s.out.String())
}

func (s *ViewSuite) TestTextGameOver() {
	text := NewText(s.out)

	text.GameOver(model.MatchSummary{Score: model.Score{Black: 10, White: 4}, Winner: model.Black})
	s.Equal("Game over: black 10 - white 4\nWinner: black\n", s.out.String())

	s.out.Reset()
	text.GameOver(model.MatchSummary{Score: model.Score{Black: 3, White: 3}, Winner: model.None})
	s.Equal("Game over: black 3 - white 3\nIt's a tie!\n", s.out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, fmt.Errorf("disk full")
}
