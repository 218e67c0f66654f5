// Package panel holds the grid panel's session state and the transition
// function that reconciles user edits with the host's valid cell counts.
package panel

import (
	"time"

	"github.com/alexisbeaulieu97/gridpanel/internal/steps"
)

const (
	// MaxSlots is the number of independently editable color slots.
	MaxSlots = 5

	// DefaultOpacity is shown for a slot whose opacity was never edited.
	DefaultOpacity = "100%"

	// DefaultDebounceWindow is the quiet period before colors are flushed.
	DefaultDebounceWindow = time.Second

	CellCountMin = 1
	CellCountMax = 300
	PaddingMin   = 0
	PaddingMax   = 100
)

// DefaultPalette cycles across slots that have no explicit color.
var DefaultPalette = []string{"2a5256", "cac578", "c69a94", "57b59c", "b1371b"}

// Options configures a new panel session.
type Options struct {
	Palette        []string
	DebounceWindow time.Duration
}

// State is the panel-local state of one open session. The host owns Steps,
// ExactFits and FrameSelected; everything else originates here.
type State struct {
	Steps         []int
	ExactFits     []int
	CellCount     int
	Padding       int
	ExactFit      bool
	DropdownValue int
	AutoPopulate  bool
	Colors        [MaxSlots]string
	Opacities     [MaxSlots]string
	FrameSelected bool
	GridCreated   bool

	palette      []string
	debounce     time.Duration
	colorGen     uint64
	flushPending bool
}

// New constructs the state for a fresh panel session.
func New(opts Options) State {
	palette := opts.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	window := opts.DebounceWindow
	if window <= 0 {
		window = DefaultDebounceWindow
	}

	return State{
		palette:  append([]string(nil), palette...),
		debounce: window,
	}
}

// DebounceWindow returns the color flush quiet period.
func (s State) DebounceWindow() time.Duration {
	if s.debounce <= 0 {
		return DefaultDebounceWindow
	}
	return s.debounce
}

// ColorFlushPending reports whether a color edit is waiting for its quiet period.
func (s State) ColorFlushPending() bool {
	return s.flushPending
}

// ShowExactFitToggle reports whether the host found at least one exact fit.
func (s State) ShowExactFitToggle() bool {
	return len(s.ExactFits) > 0
}

// ToggleLabel is the caption of the exact-fit toggle.
func (s State) ToggleLabel() string {
	if len(s.ExactFits) == 1 {
		return "Show 1 perfect fit"
	}
	return "Show perfect fits"
}

// ShowDropdown reports whether the discrete exact-fit picker replaces the slider.
func (s State) ShowDropdown() bool {
	return s.ExactFit && len(s.ExactFits) > 0
}

// ShowSlider reports whether the continuous slider and numeric entry are shown.
func (s State) ShowSlider() bool {
	return !s.ExactFit
}

// SliderBounds returns the slider range derived from the valid steps.
func (s State) SliderBounds() (int, int) {
	return steps.Bounds(s.Steps)
}

// CellEditingEnabled reports whether cell-count input is accepted at all.
// Sizing needs a selected frame with at least one valid step.
func (s State) CellEditingEnabled() bool {
	return !s.GridCreated && s.FrameSelected && len(s.Steps) > 0
}

// PaddingEditingEnabled reports whether padding input is accepted.
func (s State) PaddingEditingEnabled() bool {
	return !s.GridCreated && s.FrameSelected
}

// CanCreate reports whether the create action is available. A frame with no
// valid steps has no cell count to create.
func (s State) CanCreate() bool {
	return !s.GridCreated && s.FrameSelected && len(s.Steps) > 0
}
