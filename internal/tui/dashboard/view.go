package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/gridpanel/internal/panel"
)

// LockedMessage is shown while no frame is selected.
const LockedMessage = "Please select or create a frame to begin"

// maxFrameName bounds the frame name in the header.
const maxFrameName = 32

// View renders the current model state
func (m Model) View() string {
	switch m.viewMode {
	case ViewEdit:
		return m.renderEditView()
	case ViewCreated:
		return m.renderCreatedView()
	case ViewHelp:
		return m.renderHelpView()
	default:
		return m.renderEditView()
	}
}

// renderEditView renders the live controls
func (m Model) renderEditView() string {
	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if !m.state.FrameSelected {
		content.WriteString(lockedBannerStyle.Render(LockedMessage))
		content.WriteString("\n")
	}

	rows := []string{
		m.renderCellCount(),
		m.renderPadding(),
	}
	if m.state.ShowExactFitToggle() {
		rows = append(rows, m.renderToggle(ControlExactFit, m.state.ToggleLabel(), m.state.ExactFit))
	}
	rows = append(rows, m.renderToggle(ControlFill, "Fill grid", m.state.AutoPopulate))
	rows = append(rows, m.renderSlots()...)
	content.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	content.WriteString("\n")

	content.WriteString(m.renderCreateButton())
	content.WriteString(m.renderActivity())
	content.WriteString(m.renderFooter())

	return content.String()
}

// renderHeader renders the title and the selected frame
func (m Model) renderHeader() string {
	title := titleStyle.Render("Grid Panel")

	frame := disabledStyle.Render("no frame")
	if m.host != nil {
		if f, index, ok := m.host.Selected(); ok && m.state.FrameSelected {
			name := f.Name
			if runewidth.StringWidth(name) > maxFrameName {
				name = runewidth.Truncate(name, maxFrameName-1, "") + "…"
			}
			frame = valueStyle.Render(fmt.Sprintf("%s (#%d)", name, index+1))
		}
	}

	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, title, frame))
}

func (m Model) label(c Control, text string) string {
	if m.focus == c {
		return focusedLabelStyle.Render(text)
	}
	return labelStyle.Render(text)
}

// renderCellCount renders the slider or the exact-fit dropdown
func (m Model) renderCellCount() string {
	label := m.label(ControlCellCount, "Cells")

	if m.editing == editCellCount {
		return label + m.input.View()
	}
	if len(m.state.Steps) == 0 {
		return label + disabledStyle.Render("no valid cell counts")
	}
	value := valueStyle
	if !m.state.CellEditingEnabled() {
		value = disabledStyle
	}

	if m.state.ShowDropdown() {
		options := make([]string, 0, len(m.state.ExactFits))
		for _, v := range m.state.ExactFits {
			text := strconv.Itoa(v)
			if v == m.state.DropdownValue {
				text = "[" + text + "]"
			}
			options = append(options, text)
		}
		return label + value.Render("▾ "+strings.Join(options, " "))
	}

	lo, hi := m.state.SliderBounds()
	return label + value.Render(fmt.Sprintf("◀ %d ▶", m.state.CellCount)) +
		disabledStyle.Render(fmt.Sprintf("  %d-%d, %d steps", lo, hi, len(m.state.Steps)))
}

// renderPadding renders the padding percentage
func (m Model) renderPadding() string {
	label := m.label(ControlPadding, "Padding")

	if m.editing == editPadding {
		return label + m.input.View()
	}
	if !m.state.PaddingEditingEnabled() {
		return label + disabledStyle.Render(fmt.Sprintf("%d%%", m.state.Padding))
	}
	return label + valueStyle.Render(fmt.Sprintf("◀ %d%% ▶", m.state.Padding))
}

func (m Model) renderToggle(c Control, text string, on bool) string {
	box := "[ ]"
	if on {
		box = "[x]"
	}
	return m.label(c, "") + valueStyle.Render(box+" "+text)
}

// renderSlots renders one row per visible color slot
func (m Model) renderSlots() []string {
	var rows []string
	for i := 0; i < m.state.VisibleSlots(); i++ {
		c := ControlSlot + Control(i)
		label := m.label(c, fmt.Sprintf("Color %d", i+1))

		if (m.editing == editHex || m.editing == editOpacity) && m.editSlot == i {
			rows = append(rows, label+m.input.View())
			continue
		}

		hex := m.state.SlotColor(i)
		swatch := swatchStyle(hex).Render("    ")
		rows = append(rows, label+swatch+" "+valueStyle.Render(fmt.Sprintf("#%s  %s", hex, m.state.SlotOpacity(i))))
	}
	return rows
}

func (m Model) renderCreateButton() string {
	if !m.state.CanCreate() {
		return buttonStyle.Render(disabledStyle.Render("Create grid"))
	}
	if m.focus == ControlCreate {
		return focusedButtonStyle.Render("Create grid")
	}
	return buttonStyle.Render("Create grid")
}

// renderActivity lists the last notices delivered to the host
func (m Model) renderActivity() string {
	var lines []string
	if m.state.ColorFlushPending() {
		lines = append(lines, "colors pending…")
	}
	for i := len(m.sent) - 1; i >= 0; i-- {
		lines = append(lines, "→ "+describeNotice(m.sent[i]))
	}
	if len(lines) == 0 {
		return ""
	}
	return "\n" + activityStyle.Render(strings.Join(lines, "\n"))
}

// renderFooter renders the status line and the key help
func (m Model) renderFooter() string {
	var parts []string
	if m.status != "" {
		if m.statusErr {
			parts = append(parts, statusErrorStyle.Render(m.status))
		} else {
			parts = append(parts, statusStyle.Render(m.status))
		}
	}
	parts = append(parts, m.help.View(m.keys))
	return "\n" + footerStyle.Render(strings.Join(parts, "\n"))
}

// renderCreatedView renders the grid status; fill and colors stay editable
func (m Model) renderCreatedView() string {
	fill := "off"
	if m.state.AutoPopulate {
		fill = "on"
	}

	body := []string{
		titleStyle.Render("Grid created"),
		fmt.Sprintf("Cells: %d   Padding: %d%%   Fill: %s", m.state.CellCount, m.state.Padding, fill),
		"",
		m.renderToggle(ControlFill, "Fill grid", m.state.AutoPopulate),
	}
	body = append(body, m.renderSlots()...)

	var content strings.Builder
	content.WriteString(m.renderHeader())
	content.WriteString("\n")
	content.WriteString(createdBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body...)))
	content.WriteString(m.renderActivity())
	content.WriteString(m.renderFooter())
	return content.String()
}

// renderHelpView renders the full key help
func (m Model) renderHelpView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Keys"),
		m.help.View(m.keys),
		disabledStyle.Render("press any key to close"),
	)
}

func describeNotice(n panel.Notice) string {
	switch n := n.(type) {
	case panel.GridParametersChanged:
		return fmt.Sprintf("%s cells=%d padding=%d", n.Name(), n.CellCount, n.Padding)
	case panel.CreateGridRequested:
		return fmt.Sprintf("%s cells=%d padding=%d", n.Name(), n.CellCount, n.Padding)
	case panel.CellCountChanged:
		return fmt.Sprintf("%s cells=%s", n.Name(), n.CellCount)
	case panel.ColorsChanged:
		return fmt.Sprintf("%s %s", n.Name(), strings.Join(n.HexColors, ","))
	case panel.AutoPopulateChanged:
		return fmt.Sprintf("%s %t", n.Name(), n.AutoPopulate)
	case panel.ExactFitChanged:
		return fmt.Sprintf("%s %t", n.Name(), n.ExactFit)
	default:
		return n.Name()
	}
}
