package game

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/mcoot/reversi-go/internal/model"
)

// Engine owns a board and its turn state, and is the only thing that mutates
// them. It is single-threaded: every call runs to completion, and listeners
// are called synchronously on the mutator's stack.
type Engine struct {
	geometry   model.Geometry
	directions []model.Coordinate
	tiles      [][]model.Player // tiles[col][row]
	turn       model.Player
	passed     bool
	over       bool
	listeners  []model.TurnListener
	logger     *slog.Logger
}

var _ model.Game = (*Engine)(nil)

// NewEngine creates an engine with the geometry's starting layout. Black moves first.
func NewEngine(geometry model.Geometry, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = discardLogger()
	}
	e := &Engine{
		geometry:   geometry,
		directions: geometry.Directions(),
		tiles:      newTiles(geometry.Size()),
		turn:       model.Black,
		logger:     logger.With(slog.String("component", "engine")),
	}
	for _, p := range geometry.Seed() {
		e.tiles[p.At.Col][p.At.Row] = p.Player
	}
	return e
}

func newTiles(size int) [][]model.Player {
	tiles := make([][]model.Player, size)
	for i := range tiles {
		tiles[i] = make([]model.Player, size)
	}
	return tiles
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Start tells listeners the game has begun and whose turn it is
func (e *Engine) Start() {
	e.logger.Info("game started",
		slog.String("board", string(e.geometry.Kind())),
		slog.Int("side_length", e.geometry.SideLength()),
	)
	e.notify()
}

// AddListener registers a turn listener. Listeners are called in registration order.
func (e *Engine) AddListener(l model.TurnListener) {
	e.listeners = append(e.listeners, l)
}

// Move places the mover's tile at c and captures every bounded run of
// opponent tiles. Nothing changes if the move is rejected.
func (e *Engine) Move(c model.Coordinate) error {
	if err := e.validateMove(e.turn, c); err != nil {
		return err
	}

	mover := e.turn
	flipped := 0
	for _, d := range e.directions {
		flipped += e.flipDirection(mover, c, d)
	}
	e.tiles[c.Col][c.Row] = mover
	e.passed = false
	e.turn = mover.Opponent()

	e.logger.Debug("move applied",
		slog.String("player", mover.String()),
		slog.String("at", c.String()),
		slog.Int("flipped", flipped),
	)

	e.notify()
	return nil
}

// Pass gives the turn to the opponent. A second consecutive pass ends the game.
func (e *Engine) Pass() error {
	if e.over {
		return model.ErrGameOver
	}

	if e.passed {
		e.over = true
		score := e.Score()
		e.logger.Info("game over",
			slog.Int("black_score", score.Black),
			slog.Int("white_score", score.White),
			slog.String("winner", score.Leader().String()),
		)
		e.notify()
		return nil
	}

	e.logger.Debug("turn passed", slog.String("player", e.turn.String()))
	e.passed = true
	e.turn = e.turn.Opponent()
	e.notify()
	return nil
}

// notify fans out to the listeners registered before the call. Listeners may
// re-enter Move or Pass.
func (e *Engine) notify() {
	listeners := slices.Clone(e.listeners)
	next := e.turn
	for _, l := range listeners {
		l(next)
	}
}

// validateMove checks bounds, occupancy and capture for player moving at c
func (e *Engine) validateMove(player model.Player, c model.Coordinate) error {
	if e.over {
		return model.ErrGameOver
	}
	if !e.geometry.InBounds(c) {
		return fmt.Errorf("%w: %s", model.ErrOutOfBounds, c)
	}
	if e.tiles[c.Col][c.Row] != model.None {
		return fmt.Errorf("%w at %s", model.ErrTileOccupied, c)
	}
	for _, d := range e.directions {
		if e.captureLength(player, c, d) > 0 {
			return nil
		}
	}
	return fmt.Errorf("%w at %s", model.ErrNoCapture, c)
}

// captureLength walks outward from c along d and returns how many opponent
// tiles sit between c and the nearest tile owned by player, or 0 if the run
// is not bounded by one of player's tiles before an empty tile or the edge.
func (e *Engine) captureLength(player model.Player, c, d model.Coordinate) int {
	run := 0
	for cur := c.Add(d); e.geometry.InBounds(cur); cur = cur.Add(d) {
		switch e.tiles[cur.Col][cur.Row] {
		case model.None:
			return 0
		case player:
			return run
		default:
			run++
		}
	}
	return 0
}

// flipDirection flips the run captured along d, returning how many tiles flipped
func (e *Engine) flipDirection(player model.Player, c, d model.Coordinate) int {
	n := e.captureLength(player, c, d)
	cur := c
	for i := 0; i < n; i++ {
		cur = cur.Add(d)
		e.tiles[cur.Col][cur.Row] = player
	}
	return n
}
