package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/reversi-go/internal/dependencies/random"
	"github.com/mcoot/reversi-go/internal/factory"
	"github.com/mcoot/reversi-go/internal/model"
)

func newSimulateCmd() *cobra.Command {
	var (
		black string
		white string
		games int
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play machine strategies against each other",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if games < 1 {
				return fmt.Errorf("games must be at least 1, got %d", games)
			}
			if black == model.StrategyHuman || white == model.StrategyHuman {
				return fmt.Errorf("%w: simulations need machine seats", model.ErrUnknownStrategy)
			}

			factoryCfg, err := cfg.FactoryConfig(black, white, logger)
			if err != nil {
				return err
			}

			report := SimulationReport{
				Board:      factoryCfg.Board,
				SideLength: factoryCfg.SideLength,
				Black:      black,
				White:      white,
			}

			// One random stream for the whole run, so a seed fixes every game
			if cmd.Flags().Changed("seed") {
				factoryCfg.Random = random.NewSeeded(seed)
				report.Seed = &seed
			} else {
				factoryCfg.Random = random.New()
			}

			for i := 0; i < games; i++ {
				app, err := factory.New(factoryCfg)
				if err != nil {
					return err
				}
				if err := app.Controller.Start(); err != nil {
					return fmt.Errorf("game %d: %w", i+1, err)
				}

				summary := app.Controller.Summary()
				logger.Debug("simulated game",
					slog.Int("game", i+1),
					slog.Int("black_score", summary.Score.Black),
					slog.Int("white_score", summary.Score.White),
				)
				report.Record(summary)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(report)
			return nil
		},
	}

	cmd.Flags().StringVar(&black, "black", model.StrategySimple, "Black strategy")
	cmd.Flags().StringVar(&white, "white", model.StrategyAdvanced, "White strategy")
	cmd.Flags().IntVarP(&games, "games", "n", 1, "Number of games to play")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for random strategies (default: unseeded)")

	return cmd
}
