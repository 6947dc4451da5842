package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/reversi-go/internal/factory"
	"github.com/mcoot/reversi-go/internal/model"
	"github.com/mcoot/reversi-go/internal/services/bot"
	"github.com/mcoot/reversi-go/internal/services/game"
	"github.com/mcoot/reversi-go/internal/view"
)

func newHintCmd() *cobra.Command {
	var (
		moves    string
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "hint",
		Short: "Ask a strategy for a move after replaying a game",
		Long: `hint replays a sequence of moves from the opening position and asks a
strategy what the player to move should do.

Moves are space separated "col,row" pairs; "pass" passes the turn.`,
		Example: `  reversi hint --board hex --size 4 --moves "4,1 5,0" --strategy simple`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			factoryCfg, err := cfg.FactoryConfig(model.StrategyHuman, model.StrategyHuman, logger)
			if err != nil {
				return err
			}
			app, err := factory.New(factoryCfg)
			if err != nil {
				return err
			}

			chosen, err := bot.Build(strategy, app.Random)
			if err != nil {
				return err
			}

			if err := replay(app.Game, moves); err != nil {
				return err
			}

			result, err := buildHint(app.Game, strategy, chosen)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&moves, "moves", "", `Moves to replay, e.g. "4,1 pass 5,0"`)
	cmd.Flags().StringVar(&strategy, "strategy", model.StrategyAdvanced, "Strategy to ask")

	return cmd
}

// replay applies each move or pass in order, stopping at the first failure
func replay(g *game.Engine, moves string) error {
	for i, token := range strings.Fields(moves) {
		if strings.EqualFold(token, "pass") {
			if err := g.Pass(); err != nil {
				return fmt.Errorf("action %d (pass): %w", i+1, err)
			}
			continue
		}

		at, err := model.ParseCoordinate(token)
		if err != nil {
			return fmt.Errorf("action %d: %w", i+1, err)
		}
		if err := g.Move(at); err != nil {
			return fmt.Errorf("action %d (%s for %s): %w", i+1, at, g.Turn(), err)
		}
	}
	return nil
}

func buildHint(g model.ReadOnlyGame, name string, strategy bot.Strategy) (HintResult, error) {
	var rendered strings.Builder
	if err := view.RenderBoard(&rendered, g); err != nil {
		return HintResult{}, err
	}

	result := HintResult{
		Board:      g.Geometry().Kind(),
		SideLength: g.Geometry().SideLength(),
		Turn:       g.Turn(),
		GameOver:   g.IsGameOver(),
		Score:      g.Score(),
		Strategy:   name,
		LegalMoves: g.LegalMoves(),
		Rendered:   rendered.String(),
	}
	if result.LegalMoves == nil {
		result.LegalMoves = []model.Coordinate{}
	}

	if ranker, ok := strategy.(bot.Ranker); ok {
		result.Ranking = ranker.RankMoves(g)
	}
	if move, ok := strategy.ChooseMove(g); ok {
		result.Move = &move
	}
	return result, nil
}
