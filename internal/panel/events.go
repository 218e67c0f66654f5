package panel

// Event is anything that can move the panel from one state to the next.
// The set is closed: only the types in this file implement it.
type Event interface {
	isEvent()
}

// Host events

// FrameSelected reports whether exactly one eligible frame is selected.
type FrameSelected struct {
	Selected bool
}

// PossibleCellCounts carries the counts achievable for the selected frame and
// the subset that tiles it with no leftover. An empty Possible means no
// valid steps are known.
type PossibleCellCounts struct {
	Possible  []int
	ExactFits []int
}

// ColorsEcho is the host echoing colors back. Reserved; it never overrides
// local color state.
type ColorsEcho struct {
	HexColors []string
	Opacities []string
}

// User edits

// SliderMoved is a continuous slider position.
type SliderMoved struct {
	Raw int
}

// CellCountTyped is a value typed into the numeric cell-count entry.
type CellCountTyped struct {
	Raw int
}

// PaddingChanged is a padding percentage from the entry or slider.
type PaddingChanged struct {
	Raw int
}

// ExactFitToggled switches between the slider and the exact-fit dropdown.
type ExactFitToggled struct {
	On bool
}

// DropdownPicked selects an exact-fit count.
type DropdownPicked struct {
	Value int
}

// AutoPopulateToggled flips the Fill Grid toggle.
type AutoPopulateToggled struct {
	On bool
}

// ColorEdited sets one slot's hex color.
type ColorEdited struct {
	Slot int
	Hex  string
}

// OpacityEdited sets one slot's opacity percentage.
type OpacityEdited struct {
	Slot    int
	Percent string
}

// CreateGrid commits the current sizing.
type CreateGrid struct{}

// Timer events

// ColorFlushDue fires when the color debounce armed with Generation elapses.
type ColorFlushDue struct {
	Generation uint64
}

func (FrameSelected) isEvent()       {}
func (PossibleCellCounts) isEvent()  {}
func (ColorsEcho) isEvent()          {}
func (SliderMoved) isEvent()         {}
func (CellCountTyped) isEvent()      {}
func (PaddingChanged) isEvent()      {}
func (ExactFitToggled) isEvent()     {}
func (DropdownPicked) isEvent()      {}
func (AutoPopulateToggled) isEvent() {}
func (ColorEdited) isEvent()         {}
func (OpacityEdited) isEvent()       {}
func (CreateGrid) isEvent()          {}
func (ColorFlushDue) isEvent()       {}
