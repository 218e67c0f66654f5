package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridpanel/internal/backend"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build and protocol information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version)
				return nil
			}
			fmt.Fprintf(out, "gridpanel %s (%s/%s, %s)\n", version, runtime.GOOS, runtime.GOARCH, runtime.Version())
			fmt.Fprintf(out, "commit: %s\nbuilt: %s\n", commit, date)
			fmt.Fprintf(out, "serve protocol: v%d (JSON lines)\n", backend.ProtocolVersion)
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")

	return cmd
}
