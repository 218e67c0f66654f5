package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/gridpanel/internal/config"
	"github.com/alexisbeaulieu97/gridpanel/internal/logger"
)

// appEnv bundles what every command builds at startup.
type appEnv struct {
	settings *config.Settings
	log      *logger.Logger
	closeLog func() error
}

// newAppEnv loads settings and opens the logger. Logs go to the settings'
// log file when set, otherwise to fallback.
func newAppEnv(flags *rootFlags, fallback io.Writer) (*appEnv, error) {
	settings, err := config.LoadSettings(flags.configPath)
	if err != nil {
		return nil, newCommandError("load settings", flags.configPath, err, "Fix the settings file or run without --config to use defaults.")
	}

	level := settings.Log.Level
	if flags.verbose {
		level = "debug"
	}

	writer := fallback
	closeLog := func() error { return nil }
	if settings.Log.File != "" {
		file, err := os.OpenFile(settings.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, newCommandError("open log file", settings.Log.File, err, "Check the log.file path in your settings.")
		}
		writer = file
		closeLog = file.Close
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: settings.Log.Human || isTerminal(writer),
		Writer:        writer,
	})
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &appEnv{settings: settings, log: log, closeLog: closeLog}, nil
}

func (e *appEnv) Close() error {
	return e.closeLog()
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	if e.context == "" {
		return fmt.Sprintf("Failed to %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.cause, e.suggestion)
	}
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
