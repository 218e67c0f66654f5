package panel

import (
	"github.com/alexisbeaulieu97/gridpanel/internal/steps"
)

// applyCounts handles a possible-cell-counts push from the host.
func (s State) applyCounts(ev PossibleCellCounts) (State, []Effect) {
	var effects []Effect

	if len(ev.Possible) == 0 {
		if s.ExactFit {
			effects = append(effects, Send{Notice: ExactFitChanged{ExactFit: false}})
		}
		s.Steps = nil
		s.ExactFits = nil
		s.ExactFit = false
		s.DropdownValue = 0
		s.CellCount = steps.Nearest(s.CellCount, nil)
		return s, effects
	}

	s.Steps = append([]int(nil), ev.Possible...)
	s.ExactFits = append([]int(nil), ev.ExactFits...)

	if len(s.ExactFits) == 0 {
		if s.ExactFit {
			effects = append(effects, Send{Notice: ExactFitChanged{ExactFit: false}})
		}
		s.ExactFit = false
		s.DropdownValue = 0
	}

	switch {
	case s.ExactFit:
		s.CellCount = steps.Nearest(s.CellCount, s.ExactFits)
		s.DropdownValue = s.CellCount
	case s.CellCount == 0:
		s.CellCount = s.Steps[0]
	default:
		s.CellCount = steps.Nearest(s.CellCount, s.Steps)
	}

	if !s.ExactFit && len(s.ExactFits) > 0 {
		s.DropdownValue = s.ExactFits[0]
	}

	return s, effects
}

// snapCellCount commits a slider or typed value. No explicit cell-count
// notice: the grid parameter sync carries it.
func (s State) snapCellCount(raw int) State {
	if !s.CellEditingEnabled() || s.ExactFit {
		return s
	}
	s.CellCount = steps.Nearest(raw, s.Steps)
	return s
}

func (s State) toggleExactFit(on bool) (State, []Effect) {
	if s.GridCreated || !s.FrameSelected || on == s.ExactFit {
		return s, nil
	}
	if on && len(s.ExactFits) == 0 {
		return s, nil
	}

	if on {
		s.CellCount = steps.Nearest(s.CellCount, s.ExactFits)
		s.DropdownValue = s.CellCount
	} else {
		s.CellCount = steps.Nearest(s.CellCount, s.Steps)
	}
	s.ExactFit = on

	return s, []Effect{
		cellCountNotice(s.CellCount),
		Send{Notice: ExactFitChanged{ExactFit: on}},
	}
}

func (s State) pickDropdown(value int) (State, []Effect) {
	if s.GridCreated || !s.FrameSelected || !s.ExactFit || steps.Index(s.ExactFits, value) < 0 {
		return s, nil
	}
	s.DropdownValue = value
	s.CellCount = value
	return s, []Effect{cellCountNotice(value)}
}
