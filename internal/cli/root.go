package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "reversi",
		Short: "Reversi on hexagonal and square boards",
		Long: `reversi plays Reversi in the terminal on a hexagonal or square board.

Each seat is either a human or one of the machine strategies, so it can be
used for hot-seat games, games against the computer, or machine-only
simulations.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Output != "text" && cfg.Output != "json" {
				return fmt.Errorf("invalid output format %q: must be text or json", cfg.Output)
			}
			if _, err := cfg.BoardKind(); err != nil {
				return err
			}

			// Logs go to stderr so they never mix with command output
			logger = cfg.NewLogger(cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Board, "board", cfg.Board, "Board shape: hex, square (env: REVERSI_BOARD)")
	rootCmd.PersistentFlags().IntVar(&cfg.Size, "size", cfg.Size, "Board side length, 0 for the board's default (env: REVERSI_SIZE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newHintCmd())
	rootCmd.AddCommand(newStrategiesCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
