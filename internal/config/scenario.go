package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/gridpanel/internal/steps"
	panelerrors "github.com/alexisbeaulieu97/gridpanel/pkg/errors"
)

// NoSelection marks a scenario that starts with nothing selected.
const NoSelection = -1

// Scenario describes the frames a simulated host offers and which one is
// selected when the panel opens.
type Scenario struct {
	Name     string  `yaml:"name,omitempty"`
	Selected int     `yaml:"selected" validate:"min=-1"`
	Frames   []Frame `yaml:"frames" validate:"required,min=1,dive"`
}

// Frame is one selectable frame with the counts the grid engine reported.
type Frame struct {
	Name               string `yaml:"name" validate:"required,max=64"`
	PossibleCellCounts []int  `yaml:"possible_cell_counts" validate:"dive,min=1,max=300"`
	ExactFitCounts     []int  `yaml:"exact_fit_counts,omitempty" validate:"dive,min=1,max=300"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	var scenario Scenario
	if err := decodeFile(path, &scenario); err != nil {
		return nil, err
	}
	if err := ValidateScenario(&scenario); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// ValidateScenario performs schema and cross-field validation.
func ValidateScenario(s *Scenario) error {
	if s == nil {
		return panelerrors.NewValidationError("scenario", "scenario is nil", nil)
	}

	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}

	if s.Selected >= len(s.Frames) {
		return panelerrors.NewValidationError("selected", fmt.Sprintf("frame index %d out of range", s.Selected), nil)
	}

	for i, frame := range s.Frames {
		if dup, ok := distinct(frame.PossibleCellCounts); !ok {
			return panelerrors.NewValidationError(fieldForFrame(i, "possible_cell_counts"), fmt.Sprintf("duplicate count %d", dup), nil)
		}
		if dup, ok := distinct(frame.ExactFitCounts); !ok {
			return panelerrors.NewValidationError(fieldForFrame(i, "exact_fit_counts"), fmt.Sprintf("duplicate count %d", dup), nil)
		}
		for _, exact := range frame.ExactFitCounts {
			if steps.Index(frame.PossibleCellCounts, exact) < 0 {
				return panelerrors.NewValidationError(fieldForFrame(i, "exact_fit_counts"), fmt.Sprintf("%d is not a possible cell count", exact), nil)
			}
		}
	}

	return nil
}

// SelectedFrame returns the initially selected frame.
func (s *Scenario) SelectedFrame() (Frame, bool) {
	if s == nil || s.Selected < 0 || s.Selected >= len(s.Frames) {
		return Frame{}, false
	}
	return s.Frames[s.Selected], true
}

func fieldForFrame(index int, field string) string {
	return fmt.Sprintf("frames[%d].%s", index, field)
}
