package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridpanel/internal/backend"
	"github.com/alexisbeaulieu97/gridpanel/internal/session"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a headless panel over JSON lines on stdin/stdout",
		Long: `Run a headless panel. Host and user events are read from stdin as JSON
lines ({"type": "...", "payload": {...}}); notices are written to stdout in the
same format. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}

	return cmd
}

func runServe(cmd *cobra.Command, flags *rootFlags) error {
	env, err := newAppEnv(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = env.Close() }()

	sess := session.New(session.Options{
		Panel:    env.settings.PanelOptions(),
		Outbound: backend.NewLogSink(env.log, backend.NewEncoder(cmd.OutOrStdout())),
		Logger:   env.log,
	})
	defer sess.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = sess.Serve(ctx, backend.NewDecoder(cmd.InOrStdin()))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
