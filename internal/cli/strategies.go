package cli

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/mcoot/reversi-go/internal/model"
)

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the seat strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			machine := model.ValidMachineStrategies()

			var result []StrategyInfo
			for _, name := range model.ValidStrategies() {
				result = append(result, StrategyInfo{
					Name:        name,
					Description: model.StrategyDisplayName(name),
					Machine:     slices.Contains(machine, name),
				})
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(result)
			return nil
		},
	}
}
