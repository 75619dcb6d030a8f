package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/schnapsen-go/internal/services/arena"
	"github.com/mcoot/schnapsen-go/internal/services/game"
	"github.com/mcoot/schnapsen-go/internal/services/strategy"
)

func newPlayCmd() *cobra.Command {
	var (
		leader      string
		follower    string
		seed        int64
		weightsFile string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game between two strategy variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			weights, err := loadWeights(weightsFile)
			if err != nil {
				return err
			}

			result, err := arena.PlaySingle(leader, follower, weights, seed)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			winnerName := leader
			if result.Winner == game.SeatB {
				winnerName = follower
			}
			fmt.Fprintf(out, "winner: %s (seat %s, %d game points)\n",
				winnerName, result.Winner, result.GamePoints)
			fmt.Fprintf(out, "%s: %d points, %d tricks\n",
				leader, result.PointsA.Total(), result.TricksA)
			fmt.Fprintf(out, "%s: %d points, %d tricks\n",
				follower, result.PointsB.Total(), result.TricksB)
			return nil
		},
	}

	cmd.Flags().StringVar(&leader, "leader", "full", "Variant taking the opening lead")
	cmd.Flags().StringVar(&follower, "follower", "base", "Variant following")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Deal seed")
	cmd.Flags().StringVar(&weightsFile, "weights", "", "JSON weights file overlaying the defaults")

	return cmd
}

// loadWeights returns the default tuning unless a weights file is given
func loadWeights(path string) (strategy.Weights, error) {
	if path == "" {
		return strategy.DefaultWeights, nil
	}
	return strategy.LoadWeights(path)
}
