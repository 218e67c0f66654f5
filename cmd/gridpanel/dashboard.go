package main

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridpanel/internal/backend"
	"github.com/alexisbeaulieu97/gridpanel/internal/config"
	"github.com/alexisbeaulieu97/gridpanel/internal/tui/dashboard"
)

type dashboardOptions struct {
	scenarioPath string
	watch        bool
}

func bindDashboardFlags(cmd *cobra.Command, opts *dashboardOptions) {
	cmd.Flags().StringVarP(&opts.scenarioPath, "scenario", "s", "", "Scenario YAML describing the frames to simulate")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Reload the scenario file when it changes")
}

func runDashboard(cmd *cobra.Command, flags *rootFlags, opts *dashboardOptions) error {
	if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("start dashboard", "", errors.New("not a terminal"), "Use 'gridpanel serve' to drive the panel over stdin/stdout.")
	}

	// The dashboard owns the terminal, so logs only go to a configured file.
	env, err := newAppEnv(flags, io.Discard)
	if err != nil {
		return err
	}
	defer func() { _ = env.Close() }()

	scenario, err := loadScenario(opts.scenarioPath)
	if err != nil {
		return err
	}

	sim := backend.NewSimulator(scenario, env.log)
	defer func() { _ = sim.Close() }()

	if opts.watch && opts.scenarioPath != "" {
		if err := sim.Watch(opts.scenarioPath); err != nil {
			return newCommandError("watch scenario", opts.scenarioPath, err, "Run without --watch or check the file's directory permissions.")
		}
	}
	if err := sim.Start(); err != nil {
		return err
	}

	m := dashboard.NewModel(dashboard.Options{
		Panel:    env.settings.PanelOptions(),
		Host:     sim,
		Outbound: backend.NewLogSink(env.log, sim),
		Logger:   env.log,
	})

	env.log.WithField("frames", len(scenario.Frames)).Info("launching dashboard")
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		env.log.Error(err, "dashboard execution failed")
		return newCommandError("run dashboard", "", err, "Try resizing the terminal or re-running with --verbose and log.file set.")
	}

	env.log.WithField("notices", len(sim.Notices())).Info("dashboard closed")
	return nil
}

// loadScenario reads path, or returns the built-in demo when path is empty.
func loadScenario(path string) (*config.Scenario, error) {
	if path == "" {
		return demoScenario(), nil
	}
	scenario, err := config.LoadScenario(path)
	if err != nil {
		return nil, newCommandError("load scenario", path, err, "Run 'gridpanel validate "+path+"' for details.")
	}
	return scenario, nil
}

func demoScenario() *config.Scenario {
	return &config.Scenario{
		Name:     "demo",
		Selected: 0,
		Frames: []config.Frame{
			{Name: "Square 1080", PossibleCellCounts: []int{1, 4, 9, 16, 25, 36, 49, 64, 81, 100}, ExactFitCounts: []int{1, 4, 9, 16, 25, 36, 64, 100}},
			{Name: "Banner 1920x480", PossibleCellCounts: []int{4, 8, 16, 32, 64}, ExactFitCounts: []int{4}},
			{Name: "Odd 1000x333", PossibleCellCounts: []int{3, 12, 27}},
			{Name: "Sliver", PossibleCellCounts: []int{}},
		},
	}
}
