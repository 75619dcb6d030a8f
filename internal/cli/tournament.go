package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/schnapsen-go/internal/services/arena"
)

func newTournamentCmd() *cobra.Command {
	var (
		variantA    string
		variantB    string
		pairs       int
		seed        int64
		workers     int
		weightsFile string
	)

	cmd := &cobra.Command{
		Use:   "tournament",
		Short: "Run a paired-seed tournament between two variants",
		Long: `Runs a tournament where each pair of games shares one deal seed with
the lead swapped, cancelling the first-lead advantage. The result is
stored as a match record.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			weights, err := loadWeights(weightsFile)
			if err != nil {
				return err
			}

			logger := newLogger()
			app, err := newApp(logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			record, err := app.ArenaService.RunTournament(ctx, arena.TournamentSpec{
				VariantA: variantA,
				VariantB: variantB,
				Pairs:    pairs,
				Seed:     seed,
				Workers:  workers,
				Weights:  weights,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "match %s: %s vs %s over %d games (seed %d)\n",
				record.ID, record.VariantA, record.VariantB, record.Games, record.Seed)
			fmt.Fprintf(out, "%s: %d wins, %d game points\n",
				record.VariantA, record.WinsA, record.GamePointsA)
			fmt.Fprintf(out, "%s: %d wins, %d game points\n",
				record.VariantB, record.WinsB, record.GamePointsB)
			fmt.Fprintf(out, "win rate for %s: %.3f\n", record.VariantA, record.WinRateA())
			return nil
		},
	}

	cmd.Flags().StringVar(&variantA, "a", "full", "First variant")
	cmd.Flags().StringVar(&variantB, "b", "base", "Second variant")
	cmd.Flags().IntVar(&pairs, "pairs", 100, "Number of seed-sharing game pairs")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Tournament seed")
	cmd.Flags().IntVar(&workers, "workers", 0, "Parallel workers (0 = one per CPU)")
	cmd.Flags().StringVar(&weightsFile, "weights", "", "JSON weights file overlaying the defaults")

	return cmd
}
