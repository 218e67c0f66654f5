package panel

import "time"

// Outbound notice names as understood by the host.
const (
	NoticeGridParametersChanged = "grid-parameters-changed"
	NoticeColorsChanged         = "colors-changed"
	NoticeCellCountChanged      = "cell-count-changed"
	NoticeAutoPopulateChanged   = "auto-populate-changed"
	NoticeExactFitChanged       = "exact-fit-changed"
	NoticeCreateGrid            = "create-grid"
)

// Notice is a notification sent from the panel to the host.
type Notice interface {
	Name() string
}

// GridParametersChanged is sent whenever cell count or padding changes.
type GridParametersChanged struct {
	CellCount int `json:"cellCount"`
	Padding   int `json:"padding"`
}

// ColorsChanged carries the full color and opacity sequences after the
// debounce quiet period.
type ColorsChanged struct {
	HexColors      []string `json:"hexColors"`
	OpacityPercent []string `json:"opacityPercent"`
}

// CellCountChanged is the eager notification for dropdown and mode switches.
type CellCountChanged struct {
	CellCount string `json:"cellCount"`
}

// AutoPopulateChanged mirrors the Fill Grid toggle.
type AutoPopulateChanged struct {
	AutoPopulate bool `json:"autoPopulate"`
}

// ExactFitChanged mirrors the exact-fit mode.
type ExactFitChanged struct {
	ExactFit bool `json:"exactFit"`
}

// CreateGridRequested is the one-time creation request.
type CreateGridRequested struct {
	CellCount int `json:"cellCount"`
	Padding   int `json:"padding"`
}

func (GridParametersChanged) Name() string { return NoticeGridParametersChanged }
func (ColorsChanged) Name() string         { return NoticeColorsChanged }
func (CellCountChanged) Name() string      { return NoticeCellCountChanged }
func (AutoPopulateChanged) Name() string   { return NoticeAutoPopulateChanged }
func (ExactFitChanged) Name() string       { return NoticeExactFitChanged }
func (CreateGridRequested) Name() string   { return NoticeCreateGrid }

// Effect is work the runtime must perform after a transition.
type Effect interface {
	isEffect()
}

// Send delivers a notice to the host, fire-and-forget.
type Send struct {
	Notice Notice
}

// ArmColorFlush (re)schedules the color flush. Any previously armed flush is
// superseded; only a ColorFlushDue carrying Generation will send.
type ArmColorFlush struct {
	Generation uint64
	After      time.Duration
}

func (Send) isEffect()          {}
func (ArmColorFlush) isEffect() {}

// Notices extracts the notices from effects, in order.
func Notices(effects []Effect) []Notice {
	var out []Notice
	for _, e := range effects {
		if send, ok := e.(Send); ok {
			out = append(out, send.Notice)
		}
	}
	return out
}
