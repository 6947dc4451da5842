package match

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/reversi-go/internal/dependencies/clock"
	"github.com/mcoot/reversi-go/internal/model"
)

// MaxMachineActions is a safety limit on machine moves and passes in one match
const MaxMachineActions = 10000

// ErrTooManyActions is recorded if machines exceed MaxMachineActions
var ErrTooManyActions = errors.New("machine action limit reached")

// Controller wires a game to its two seats and a view. It listens for turn
// changes and lets machine seats move immediately, re-entering the game on
// the same call stack; human moves arrive through RequestMove and RequestPass.
type Controller struct {
	game   model.Game
	seats  map[model.Player]Seat
	view   View
	clock  clock.Clock
	logger *slog.Logger

	started        bool
	finished       bool
	startedAt      time.Time
	finishedAt     time.Time
	moves          int
	passes         int
	machineActions int
	err            error
}

// NewController creates a controller. Nothing happens until Start.
func NewController(
	game model.Game,
	black, white Seat,
	view View,
	clk clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		game: game,
		seats: map[model.Player]Seat{
			model.Black: black,
			model.White: white,
		},
		view:   view,
		clock:  clk,
		logger: logger.With(slog.String("component", "match-controller")),
	}
}

// Start subscribes to the game and emits the opening turn notification. If
// both seats are machines the whole match has been played when Start returns.
func (c *Controller) Start() error {
	if c.started {
		return nil
	}
	c.started = true
	c.startedAt = c.clock.Now()

	c.logger.Info("match started",
		slog.String("black", c.seats[model.Black].Name),
		slog.String("white", c.seats[model.White].Name),
	)

	c.game.AddListener(c.onTurn)
	c.game.Start()
	return c.err
}

// Err returns the first error a machine seat ran into, if any
func (c *Controller) Err() error {
	return c.err
}

// Game returns the read capability of the controlled game
func (c *Controller) Game() model.ReadOnlyGame {
	return c.game
}

// Seat returns the seat playing p
func (c *Controller) Seat(p model.Player) Seat {
	return c.seats[p]
}

// IsFinished returns true once the game has ended
func (c *Controller) IsFinished() bool {
	return c.finished
}

// RequestMove plays a human move for the player to move
func (c *Controller) RequestMove(at model.Coordinate) error {
	if err := c.checkHumanTurn(); err != nil {
		return err
	}

	c.moves++
	if err := c.game.Move(at); err != nil {
		c.moves--
		c.logger.Debug("human move rejected",
			slog.String("at", at.String()),
			slog.String("error", err.Error()),
		)
		c.view.InvalidMove(err)
		return err
	}
	return nil
}

// RequestPass passes for the human to move
func (c *Controller) RequestPass() error {
	if err := c.checkHumanTurn(); err != nil {
		return err
	}

	c.passes++
	if err := c.game.Pass(); err != nil {
		c.passes--
		return err
	}
	return nil
}

func (c *Controller) checkHumanTurn() error {
	if !c.started {
		return model.ErrNotStarted
	}
	if c.game.IsGameOver() {
		return model.ErrGameOver
	}
	if c.seats[c.game.Turn()].IsMachine() {
		c.view.NotYourTurn()
		return model.ErrNotPlayerTurn
	}
	return nil
}

// onTurn is the game's turn listener
func (c *Controller) onTurn(next model.Player) {
	if c.game.IsGameOver() {
		c.finish()
		return
	}

	seat := c.seats[next]
	if !seat.IsMachine() {
		c.view.Render(c.game)
		return
	}
	if c.err != nil {
		return
	}
	c.playMachine(next, seat)
}

func (c *Controller) playMachine(player model.Player, seat Seat) {
	if c.machineActions >= MaxMachineActions {
		c.fail(fmt.Errorf("%w: %d", ErrTooManyActions, MaxMachineActions))
		return
	}
	c.machineActions++

	move, err := seat.strategy.ChooseMove(c.game)
	if errors.Is(err, model.ErrNoMove) {
		c.logger.Debug("machine passes",
			slog.String("player", player.String()),
			slog.String("strategy", seat.Name),
		)
		c.passes++
		if err := c.game.Pass(); err != nil {
			c.fail(err)
		}
		return
	}
	if err != nil {
		c.fail(err)
		return
	}

	c.moves++
	if err := c.game.Move(move); err != nil {
		c.moves--
		c.fail(fmt.Errorf("%s strategy chose %s: %w", seat.Name, move, err))
	}
}

func (c *Controller) fail(err error) {
	if c.err == nil {
		c.err = err
	}
	c.logger.Error("machine seat failed", slog.String("error", err.Error()))
}

func (c *Controller) finish() {
	if c.finished {
		return
	}
	c.finished = true
	c.finishedAt = c.clock.Now()

	summary := c.Summary()
	c.logger.Info("match finished",
		slog.Int("black_score", summary.Score.Black),
		slog.Int("white_score", summary.Score.White),
		slog.String("winner", summary.Winner.String()),
		slog.Int("moves", summary.Moves),
		slog.Int("passes", summary.Passes),
	)
	c.view.GameOver(summary)
}

// Summary describes the match so far
func (c *Controller) Summary() model.MatchSummary {
	geometry := c.game.Geometry()
	score := c.game.Score()
	summary := model.MatchSummary{
		Board:      geometry.Kind(),
		SideLength: geometry.SideLength(),
		Black:      c.seats[model.Black].Name,
		White:      c.seats[model.White].Name,
		Score:      score,
		Winner:     score.Leader(),
		Moves:      c.moves,
		Passes:     c.passes,
		Finished:   c.finished,
		StartedAt:  c.startedAt,
	}
	if c.finished {
		summary.FinishedAt = c.finishedAt
		summary.Duration = c.finishedAt.Sub(c.startedAt)
	} else if c.started {
		summary.Duration = c.clock.Since(c.startedAt)
	}
	return summary
}
