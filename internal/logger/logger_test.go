package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"session": "abc", "component": "bridge"})
	log.Info("notice sent")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "notice sent", entry["message"])
	require.Equal(t, "abc", entry["session"])
	require.Equal(t, "bridge", entry["component"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithField("notice", "colors-changed")
	log.Error(errors.New("boom"), "send failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "send failed", entry["message"])
	require.Equal(t, "colors-changed", entry["notice"])
	require.Equal(t, "boom", entry["error"])
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.Nil(t, nilLogger.WithField("k", "v"))
	nilLogger.Info("ignored")
	nilLogger.Error(errors.New("ignored"), "ignored")

	Nop().WithField("k", "v").Warn("ignored")
}
