package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridpanel/internal/config"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scenario.yaml>",
		Short: "Check a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := config.LoadScenario(args[0])
			if err != nil {
				return newCommandError("validate scenario", args[0], err, "Counts must be 1-300 and distinct; exact fits must also be possible counts.")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✅ %s: %d frame(s)\n", args[0], len(scenario.Frames))
			for i, frame := range scenario.Frames {
				marker := " "
				if i == scenario.Selected {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s: %d possible, %d perfect fit(s)\n", marker, frame.Name, len(frame.PossibleCellCounts), len(frame.ExactFitCounts))
			}
			return nil
		},
	}

	return cmd
}
