package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	dashOpts := &dashboardOptions{}

	cmd := &cobra.Command{
		Use:           "gridpanel",
		Short:         "gridpanel sizes and colors grids for the selected frame",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, flags, dashOpts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a settings YAML file")
	bindDashboardFlags(cmd, dashOpts)

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newSnapCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
