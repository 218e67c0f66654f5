package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridpanel/internal/steps"
)

func newSnapCmd() *cobra.Command {
	var stepSet []int

	cmd := &cobra.Command{
		Use:   "snap <value>",
		Short: "Print the valid cell count nearest to value",
		Example: `  gridpanel snap 11 --steps 4,9,16
  9`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("value %q is not an integer", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), steps.Nearest(value, stepSet))
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&stepSet, "steps", nil, "Comma-separated valid cell counts, in host order")

	return cmd
}
