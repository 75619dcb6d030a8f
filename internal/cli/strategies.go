package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/schnapsen-go/internal/services/strategy"
)

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available strategy variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range strategy.Variants() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
