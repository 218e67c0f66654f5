// Package dashboard is the terminal front-end of the grid panel.
package dashboard

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gridpanel/internal/backend"
	"github.com/alexisbeaulieu97/gridpanel/internal/logger"
	"github.com/alexisbeaulieu97/gridpanel/internal/panel"
)

// recentNotices bounds the activity list under the controls.
const recentNotices = 6

// Control identifies a focusable control. Color slots occupy
// ControlSlot .. ControlSlot+panel.MaxSlots-1.
type Control int

const (
	ControlCellCount Control = iota
	ControlPadding
	ControlExactFit
	ControlFill
	ControlSlot
	ControlCreate = ControlSlot + panel.MaxSlots
)

// editTarget is what the text input is currently editing.
type editTarget int

const (
	editNone editTarget = iota
	editCellCount
	editPadding
	editHex
	editOpacity
)

// Options configures a new Model.
type Options struct {
	Panel    panel.Options
	Host     Host
	Outbound backend.Outbound
	Logger   *logger.Logger
}

// Model is the dashboard model
type Model struct {
	// Core data
	state panel.State
	host  Host
	out   *outbox
	log   *logger.Logger

	// UI state
	viewMode ViewMode
	focus    Control
	keys     KeyMap
	help     help.Model

	// Text entry
	input    textinput.Model
	editing  editTarget
	editSlot int

	// Outbound activity
	sent      []panel.Notice
	flushGen  uint64
	sendFails int

	// Status line
	status    string
	statusErr bool
	statusID  int

	// Dimensions
	width  int
	height int
}

// NewModel creates a new dashboard model
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.CharLimit = 8
	ti.Width = 10
	ti.Prompt = "› "
	ti.Cursor.SetMode(cursor.CursorStatic)

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return Model{
		state:  panel.New(opts.Panel),
		host:   opts.Host,
		out:    newOutbox(opts.Outbound),
		log:    log.WithField("component", "dashboard"),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  ti,
		width:  80,
		height: 24,
	}
}

// Init starts listening to the host.
func (m Model) Init() tea.Cmd {
	if m.host == nil {
		return nil
	}
	return listenCmd(m.host.Events())
}

// State returns the panel state behind the dashboard.
func (m Model) State() panel.State {
	return m.state
}

// Focus returns the focused control.
func (m Model) Focus() Control {
	return m.focus
}

// GetViewMode returns the current view mode
func (m Model) GetViewMode() ViewMode {
	return m.viewMode
}

// Editing reports whether the text input is open.
func (m Model) Editing() bool {
	return m.editing != editNone
}

// Sent returns the most recent notices delivered to the host, oldest first.
func (m Model) Sent() []panel.Notice {
	return append([]panel.Notice(nil), m.sent...)
}

// PendingFlush returns the generation of the last armed color flush.
func (m Model) PendingFlush() (uint64, bool) {
	return m.flushGen, m.state.ColorFlushPending()
}

// Status returns the status line and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// controls lists the focusable controls in display order.
func (m Model) controls() []Control {
	if m.state.GridCreated {
		// Sizing is latched; fill and palette stay live.
		out := []Control{ControlFill}
		for i := 0; i < m.state.VisibleSlots(); i++ {
			out = append(out, ControlSlot+Control(i))
		}
		return out
	}
	out := []Control{ControlCellCount, ControlPadding}
	if m.state.ShowExactFitToggle() {
		out = append(out, ControlExactFit)
	}
	out = append(out, ControlFill)
	for i := 0; i < m.state.VisibleSlots(); i++ {
		out = append(out, ControlSlot+Control(i))
	}
	if m.state.CanCreate() {
		out = append(out, ControlCreate)
	}
	return out
}

// moveFocus moves to the next (dir > 0) or previous control, wrapping.
func (m *Model) moveFocus(dir int) {
	controls := m.controls()
	if len(controls) == 0 {
		return
	}
	idx := indexOf(controls, m.focus)
	if idx < 0 {
		m.focus = controls[0]
		return
	}
	idx = (idx + dir + len(controls)) % len(controls)
	m.focus = controls[idx]
}

// clampFocus keeps focus on a control that is still shown.
func (m *Model) clampFocus() {
	controls := m.controls()
	if len(controls) == 0 {
		m.focus = ControlCellCount
		return
	}
	if indexOf(controls, m.focus) >= 0 {
		return
	}
	// A slot that disappeared falls back to the last visible slot.
	if m.focus >= ControlSlot && m.focus < ControlCreate && m.state.VisibleSlots() > 0 {
		m.focus = ControlSlot + Control(m.state.VisibleSlots()-1)
		return
	}
	m.focus = controls[0]
}

// focusedSlot returns the slot index under focus.
func (m Model) focusedSlot() (int, bool) {
	if m.focus < ControlSlot || m.focus >= ControlCreate {
		return 0, false
	}
	return int(m.focus - ControlSlot), true
}

func indexOf(controls []Control, c Control) int {
	for i, candidate := range controls {
		if candidate == c {
			return i
		}
	}
	return -1
}
