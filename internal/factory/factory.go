package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/reversi-go/internal/dependencies/clock"
	"github.com/mcoot/reversi-go/internal/dependencies/random"
	"github.com/mcoot/reversi-go/internal/model"
	"github.com/mcoot/reversi-go/internal/services/board"
	"github.com/mcoot/reversi-go/internal/services/bot"
	"github.com/mcoot/reversi-go/internal/services/game"
	"github.com/mcoot/reversi-go/internal/services/match"
)

// App contains all wired components of one match
type App struct {
	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Geometry   model.Geometry
	Game       *game.Engine
	Controller *match.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Board selects the geometry. If empty, defaults to hex
	Board model.BoardKind
	// SideLength of the board. If zero, the board kind's default is used
	SideLength int
	// Black and White are seat strategy names. If empty, the seat is human
	Black string
	White string
	// Seed makes machine randomness reproducible (optional)
	// If nil, randomness comes from crypto/rand
	Seed *uint64
	// Random overrides Seed with an existing source (optional)
	// Used to share one seeded stream across a run of matches
	Random random.Random
	// Clock is used for match timestamps (optional)
	// If nil, the system clock is used
	Clock clock.Clock
	// View receives match updates (optional)
	// If nil, updates are dropped
	View match.View
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new match with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create external dependencies
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	rnd := cfg.Random
	if rnd == nil {
		if cfg.Seed != nil {
			rnd = random.NewSeeded(*cfg.Seed)
		} else {
			rnd = random.New()
		}
	}

	return newWithDependencies(cfg, clk, rnd, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(cfg Config, clk clock.Clock, rnd random.Random, logger *slog.Logger) (*App, error) {
	kind := cfg.Board
	if kind == "" {
		kind = model.BoardKindHex
	}
	side := cfg.SideLength
	if side == 0 {
		side = kind.DefaultSideLength()
	}

	geometry, err := board.New(kind, side)
	if err != nil {
		return nil, err
	}

	black, err := buildSeat(cfg.Black, rnd)
	if err != nil {
		return nil, fmt.Errorf("black seat: %w", err)
	}
	white, err := buildSeat(cfg.White, rnd)
	if err != nil {
		return nil, fmt.Errorf("white seat: %w", err)
	}

	view := cfg.View
	if view == nil {
		view = match.NopView{}
	}

	engine := game.NewEngine(geometry, logger)
	controller := match.NewController(engine, black, white, view, clk, logger)

	return &App{
		Clock:      clk,
		Random:     rnd,
		Geometry:   geometry,
		Game:       engine,
		Controller: controller,
	}, nil
}

// buildSeat resolves a strategy name to a seat
func buildSeat(name string, rnd random.Random) (match.Seat, error) {
	if name == "" || name == model.StrategyHuman {
		return match.HumanSeat(), nil
	}
	strategy, err := bot.Build(name, rnd)
	if err != nil {
		return match.Seat{}, err
	}
	return match.MachineSeat(name, bot.Infallible(strategy)), nil
}
