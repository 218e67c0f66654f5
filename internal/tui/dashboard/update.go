package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gridpanel/internal/panel"
	"github.com/alexisbeaulieu97/gridpanel/internal/steps"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	// Host messages
	case HostEventMsg:
		var cmd, listen tea.Cmd
		m, cmd = m.dispatch(msg.Event)
		if m.host != nil {
			listen = listenCmd(m.host.Events())
		}
		return m, tea.Batch(cmd, listen)

	case HostClosedMsg:
		m.log.Info("host event stream closed")
		return m, nil

	case HostErrorMsg:
		m.log.Error(msg.Err, "host request failed")
		return m.setStatus(msg.Err.Error(), true)

	// Outbound messages
	case NoticesSentMsg:
		var failed int
		for i, n := range msg.Notices {
			if i < len(msg.Errs) && msg.Errs[i] != nil {
				failed++
				m.log.WithField("notice", n.Name()).Error(msg.Errs[i], "notice dropped")
				continue
			}
			m.sent = append(m.sent, n)
		}
		if over := len(m.sent) - recentNotices; over > 0 {
			m.sent = m.sent[over:]
		}
		if failed > 0 {
			m.sendFails += failed
			return m.setStatus(fmt.Sprintf("%d notice(s) not delivered", failed), true)
		}
		return m, nil

	// Timer messages
	case ColorFlushMsg:
		return m.dispatch(panel.ColorFlushDue{Generation: msg.Generation})

	case ClearStatusMsg:
		if msg.ID == m.statusID {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	}

	if m.editing != editNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// dispatch runs the panel transition and turns its effects into commands.
func (m Model) dispatch(ev panel.Event) (Model, tea.Cmd) {
	next, effects := panel.Reduce(m.state, ev)
	m.state = next

	if m.state.GridCreated && m.viewMode == ViewEdit {
		m.viewMode = ViewCreated
		m.closeEditor()
	}
	m.clampFocus()

	var cmds []tea.Cmd
	var notices []panel.Notice
	for _, effect := range effects {
		switch e := effect.(type) {
		case panel.Send:
			notices = append(notices, e.Notice)
		case panel.ArmColorFlush:
			m.flushGen = e.Generation
			cmds = append(cmds, colorFlushCmd(e.Generation, e.After))
		}
	}
	if len(notices) > 0 {
		cmds = append(cmds, sendCmd(m.out, notices))
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input based on current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.editing != editNone {
		return m.handleEditKeys(msg)
	}

	switch m.viewMode {
	case ViewEdit:
		return m.handleEditViewKeys(msg)
	case ViewCreated:
		return m.handleCreatedKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	default:
		return m, nil
	}
}

// handleEditViewKeys handles keys while the controls are live
func (m Model) handleEditViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.viewMode = ViewHelp
		m.help.ShowAll = true
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Decrease):
		return m.adjust(-1)

	case key.Matches(msg, m.keys.Increase):
		return m.adjust(1)

	case key.Matches(msg, m.keys.Edit):
		return m.activate()

	case key.Matches(msg, m.keys.Opacity):
		if slot, ok := m.focusedSlot(); ok {
			return m.openEditor(editOpacity, slot, strings.TrimSuffix(m.state.SlotOpacity(slot), "%"))
		}
		return m, nil

	case key.Matches(msg, m.keys.ExactFit):
		if !m.state.ShowExactFitToggle() {
			return m, nil
		}
		return m.dispatch(panel.ExactFitToggled{On: !m.state.ExactFit})

	case key.Matches(msg, m.keys.Fill):
		return m.dispatch(panel.AutoPopulateToggled{On: !m.state.AutoPopulate})

	case key.Matches(msg, m.keys.Copy):
		return m.copyFocusedSlot()

	case key.Matches(msg, m.keys.PrevFrame):
		return m, cycleFrameCmd(m.host, -1)

	case key.Matches(msg, m.keys.NextFrame):
		return m, cycleFrameCmd(m.host, 1)

	case key.Matches(msg, m.keys.CreateGrid):
		return m.create()
	}

	return m, nil
}

// handleCreatedKeys handles keys once the grid exists; sizing is locked but
// fill and the color slots can still be edited.
func (m Model) handleCreatedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.viewMode = ViewHelp
		m.help.ShowAll = true
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Decrease):
		return m.adjust(-1)
	case key.Matches(msg, m.keys.Increase):
		return m.adjust(1)
	case key.Matches(msg, m.keys.Edit):
		return m.activate()
	case key.Matches(msg, m.keys.Opacity):
		if slot, ok := m.focusedSlot(); ok {
			return m.openEditor(editOpacity, slot, strings.TrimSuffix(m.state.SlotOpacity(slot), "%"))
		}
		return m, nil
	case key.Matches(msg, m.keys.Fill):
		return m.dispatch(panel.AutoPopulateToggled{On: !m.state.AutoPopulate})
	case key.Matches(msg, m.keys.Copy):
		return m.copyFocusedSlot()
	case key.Matches(msg, m.keys.PrevFrame):
		return m, cycleFrameCmd(m.host, -1)
	case key.Matches(msg, m.keys.NextFrame):
		return m, cycleFrameCmd(m.host, 1)
	}
	return m, nil
}

// handleHelpKeys closes the help overlay on any key but quit
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	m.help.ShowAll = false
	if m.state.GridCreated {
		m.viewMode = ViewCreated
	} else {
		m.viewMode = ViewEdit
	}
	return m, nil
}

// handleEditKeys drives the open text input
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeEditor()
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		return m.commitEditor()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// adjust handles left/right on the focused control.
func (m Model) adjust(dir int) (tea.Model, tea.Cmd) {
	switch m.focus {
	case ControlCellCount:
		if m.state.ExactFit {
			next := steps.Neighbor(m.state.ExactFits, m.state.DropdownValue, dir)
			return m.dispatch(panel.DropdownPicked{Value: next})
		}
		if !m.state.CellEditingEnabled() {
			return m, nil
		}
		return m.dispatch(panel.SliderMoved{Raw: steps.Neighbor(m.state.Steps, m.state.CellCount, dir)})

	case ControlPadding:
		return m.dispatch(panel.PaddingChanged{Raw: m.state.Padding + dir})

	case ControlExactFit:
		return m.dispatch(panel.ExactFitToggled{On: dir > 0})

	case ControlFill:
		return m.dispatch(panel.AutoPopulateToggled{On: dir > 0})
	}

	if slot, ok := m.focusedSlot(); ok {
		pct, _ := strconv.Atoi(strings.TrimSuffix(m.state.SlotOpacity(slot), "%"))
		return m.dispatch(panel.OpacityEdited{Slot: slot, Percent: strconv.Itoa(steps.Clamp(pct+10*dir, 0, 100))})
	}
	return m, nil
}

// activate handles enter on the focused control.
func (m Model) activate() (tea.Model, tea.Cmd) {
	switch m.focus {
	case ControlCellCount:
		if m.state.ExactFit || !m.state.CellEditingEnabled() {
			return m, nil
		}
		return m.openEditor(editCellCount, 0, strconv.Itoa(m.state.CellCount))

	case ControlPadding:
		if !m.state.PaddingEditingEnabled() {
			return m, nil
		}
		return m.openEditor(editPadding, 0, strconv.Itoa(m.state.Padding))

	case ControlExactFit:
		return m.dispatch(panel.ExactFitToggled{On: !m.state.ExactFit})

	case ControlFill:
		return m.dispatch(panel.AutoPopulateToggled{On: !m.state.AutoPopulate})

	case ControlCreate:
		return m.create()
	}

	if slot, ok := m.focusedSlot(); ok {
		return m.openEditor(editHex, slot, m.state.SlotColor(slot))
	}
	return m, nil
}

func (m Model) create() (tea.Model, tea.Cmd) {
	if !m.state.CanCreate() {
		if m.state.FrameSelected && len(m.state.Steps) == 0 {
			return m.setStatus("This frame has no valid cell counts", true)
		}
		return m.setStatus("Select a frame before creating a grid", true)
	}
	m.log.WithFields(map[string]any{"cell_count": m.state.CellCount, "padding": m.state.Padding}).Info("creating grid")
	return m.dispatch(panel.CreateGrid{})
}

func (m Model) openEditor(target editTarget, slot int, value string) (tea.Model, tea.Cmd) {
	m.editing = target
	m.editSlot = slot
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

func (m *Model) closeEditor() {
	m.editing = editNone
	m.input.Blur()
	m.input.Reset()
}

// commitEditor turns the typed text into a panel event.
func (m Model) commitEditor() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	target, slot := m.editing, m.editSlot
	m.closeEditor()

	switch target {
	case editCellCount, editPadding:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return m.setStatus(fmt.Sprintf("%q is not a whole number", raw), true)
		}
		if target == editCellCount {
			return m.dispatch(panel.CellCountTyped{Raw: n})
		}
		return m.dispatch(panel.PaddingChanged{Raw: n})

	case editHex:
		if _, ok := panel.NormalizeHex(raw); !ok {
			return m.setStatus(fmt.Sprintf("%q is not a hex color", raw), true)
		}
		return m.dispatch(panel.ColorEdited{Slot: slot, Hex: raw})

	case editOpacity:
		if _, ok := panel.NormalizeOpacity(raw); !ok {
			return m.setStatus(fmt.Sprintf("%q is not an opacity", raw), true)
		}
		return m.dispatch(panel.OpacityEdited{Slot: slot, Percent: raw})
	}

	return m, nil
}

func (m Model) copyFocusedSlot() (tea.Model, tea.Cmd) {
	slot, ok := m.focusedSlot()
	if !ok {
		return m, nil
	}
	hex := "#" + m.state.SlotColor(slot)
	if err := writeClipboard(hex); err != nil {
		m.log.Error(err, "copy to clipboard failed")
		return m.setStatus("Copy failed", true)
	}
	return m.setStatus(hex+" copied", false)
}

func (m Model) setStatus(text string, isErr bool) (Model, tea.Cmd) {
	m.statusID++
	m.status = text
	m.statusErr = isErr
	return m, clearStatusCmd(m.statusID)
}
