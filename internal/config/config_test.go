package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	panelerrors "github.com/alexisbeaulieu97/gridpanel/pkg/errors"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadSettingsDefaults(t *testing.T) {
	t.Parallel()

	settings, err := LoadSettings("")
	require.NoError(t, err)
	require.Equal(t, time.Second, settings.DebounceWindow())
	require.Equal(t, []string{"2a5256", "cac578", "c69a94", "57b59c", "b1371b"}, settings.Palette)
	require.Equal(t, "info", settings.Log.Level)
}

func TestLoadSettings(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, s *Settings, err error)
	}{
		{
			name:     "partial document keeps defaults",
			contents: "debounce_ms: 250\n",
			assert: func(t *testing.T, s *Settings, err error) {
				require.NoError(t, err)
				require.Equal(t, 250*time.Millisecond, s.DebounceWindow())
				require.Len(t, s.Palette, 5)
			},
		},
		{
			name:     "palette with hashes is normalized for the panel",
			contents: "palette: ['#AABBCC', '112233', '445566', '778899', '#000000']\n",
			assert: func(t *testing.T, s *Settings, err error) {
				require.NoError(t, err)
				require.Equal(t, []string{"aabbcc", "112233", "445566", "778899", "000000"}, s.PanelOptions().Palette)
			},
		},
		{
			name:     "short palette is rejected",
			contents: "palette: ['aabbcc']\n",
			assert: func(t *testing.T, s *Settings, err error) {
				var valErr *panelerrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "palette", valErr.Field)
			},
		},
		{
			name:     "bad hex is rejected",
			contents: "palette: ['aabbcc', 'zzzzzz', '445566', '778899', '000000']\n",
			assert: func(t *testing.T, s *Settings, err error) {
				var valErr *panelerrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "palette[1]", valErr.Field)
			},
		},
		{
			name:     "debounce out of range",
			contents: "debounce_ms: 5\n",
			assert: func(t *testing.T, s *Settings, err error) {
				var valErr *panelerrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "debounce_ms", valErr.Field)
			},
		},
		{
			name:     "unknown log level",
			contents: "log:\n  level: loud\n",
			assert: func(t *testing.T, s *Settings, err error) {
				var valErr *panelerrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "log.level", valErr.Field)
			},
		},
		{
			name:     "malformed yaml reports line",
			contents: "debounce_ms: 100\npalette: [\n",
			assert: func(t *testing.T, s *Settings, err error) {
				var parseErr *panelerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Greater(t, parseErr.Line, 0)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, "settings.yaml", tc.contents)
			settings, err := LoadSettings(path)
			tc.assert(t, settings, err)
		})
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *panelerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

const validScenario = `name: "poster"
selected: 0
frames:
  - name: "A4 portrait"
    possible_cell_counts: [4, 9, 16, 25]
    exact_fit_counts: [16]
  - name: "Banner"
    possible_cell_counts: [3, 6, 12]
`

func TestLoadScenario(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, s *Scenario, err error)
	}{
		{
			name:     "valid scenario",
			contents: validScenario,
			assert: func(t *testing.T, s *Scenario, err error) {
				require.NoError(t, err)
				require.Len(t, s.Frames, 2)
				frame, ok := s.SelectedFrame()
				require.True(t, ok)
				require.Equal(t, "A4 portrait", frame.Name)
				require.Equal(t, []int{16}, frame.ExactFitCounts)
			},
		},
		{
			name:     "nothing selected",
			contents: "selected: -1\nframes:\n  - name: a\n    possible_cell_counts: [1]\n",
			assert: func(t *testing.T, s *Scenario, err error) {
				require.NoError(t, err)
				_, ok := s.SelectedFrame()
				require.False(t, ok)
			},
		},
		{
			name:     "frame without counts is allowed",
			contents: "frames:\n  - name: tiny\n",
			assert: func(t *testing.T, s *Scenario, err error) {
				require.NoError(t, err)
				require.Empty(t, s.Frames[0].PossibleCellCounts)
			},
		},
		{
			name:     "no frames",
			contents: "name: empty\n",
			assert: func(t *testing.T, s *Scenario, err error) {
				var valErr *panelerrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "frames", valErr.Field)
			},
		},
		{
			name:     "count above control maximum",
			contents: "frames:\n  - name: a\n    possible_cell_counts: [4, 400]\n",
			assert: func(t *testing.T, s *Scenario, err error) {
				var valErr *panelerrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "frames[0].possible_cell_counts[1]", valErr.Field)
			},
		},
		{
			name:     "duplicate counts",
			contents: "frames:\n  - name: a\n    possible_cell_counts: [4, 4]\n",
			assert: func(t *testing.T, s *Scenario, err error) {
				var valErr *panelerrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Contains(t, valErr.Message, "duplicate count 4")
			},
		},
		{
			name:     "exact fit outside possible counts",
			contents: "frames:\n  - name: a\n    possible_cell_counts: [4, 9]\n    exact_fit_counts: [16]\n",
			assert: func(t *testing.T, s *Scenario, err error) {
				var valErr *panelerrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "frames[0].exact_fit_counts", valErr.Field)
			},
		},
		{
			name:     "selected out of range",
			contents: "selected: 3\nframes:\n  - name: a\n",
			assert: func(t *testing.T, s *Scenario, err error) {
				var valErr *panelerrors.ValidationError
				require.ErrorAs(t, err, &valErr)
				require.Equal(t, "selected", valErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, "scenario.yaml", tc.contents)
			scenario, err := LoadScenario(path)
			tc.assert(t, scenario, err)
		})
	}
}
