// Package config loads panel settings and host scenarios from YAML.
package config

import (
	"time"

	"github.com/alexisbeaulieu97/gridpanel/internal/panel"
	panelerrors "github.com/alexisbeaulieu97/gridpanel/pkg/errors"
)

// Settings tunes a panel session.
type Settings struct {
	DebounceMS int         `yaml:"debounce_ms" validate:"min=50,max=10000"`
	Palette    []string    `yaml:"palette" validate:"len=5,dive,hexrgb"`
	Log        LogSettings `yaml:"log"`
}

// LogSettings configures the zerolog output.
type LogSettings struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Human bool   `yaml:"human"`
	File  string `yaml:"file,omitempty"`
}

// DefaultSettings mirrors the panel's built-in behaviour.
func DefaultSettings() Settings {
	return Settings{
		DebounceMS: int(panel.DefaultDebounceWindow / time.Millisecond),
		Palette:    append([]string(nil), panel.DefaultPalette...),
		Log:        LogSettings{Level: "info"},
	}
}

// LoadSettings reads settings from path on top of the defaults. An empty
// path returns the defaults.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return &settings, nil
	}

	if err := decodeFile(path, &settings); err != nil {
		return nil, err
	}
	if err := ValidateSettings(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// ValidateSettings checks field ranges and the palette format.
func ValidateSettings(s *Settings) error {
	if s == nil {
		return panelerrors.NewValidationError("settings", "settings are nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(s))
}

// DebounceWindow returns the color flush quiet period.
func (s Settings) DebounceWindow() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// PanelOptions converts the settings into options for a new panel state.
func (s Settings) PanelOptions() panel.Options {
	palette := make([]string, 0, len(s.Palette))
	for _, c := range s.Palette {
		if hex, ok := panel.NormalizeHex(c); ok {
			palette = append(palette, hex)
		}
	}
	return panel.Options{Palette: palette, DebounceWindow: s.DebounceWindow()}
}
