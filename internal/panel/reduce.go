package panel

import (
	"strconv"

	"github.com/alexisbeaulieu97/gridpanel/internal/steps"
)

// Reduce applies ev to s and returns the next state together with the
// effects the runtime must carry out. It never blocks and has no side effects.
func Reduce(s State, ev Event) (State, []Effect) {
	before := gridParams{cellCount: s.CellCount, padding: s.Padding}

	var effects []Effect
	switch ev := ev.(type) {
	case FrameSelected:
		s.FrameSelected = ev.Selected

	case PossibleCellCounts:
		s, effects = s.applyCounts(ev)

	case ColorsEcho:
		// Reserved for host-driven overrides; local colors win.

	case SliderMoved:
		s = s.snapCellCount(ev.Raw)

	case CellCountTyped:
		s = s.snapCellCount(steps.Clamp(ev.Raw, CellCountMin, CellCountMax))

	case PaddingChanged:
		if s.PaddingEditingEnabled() {
			s.Padding = steps.Clamp(ev.Raw, PaddingMin, PaddingMax)
		}

	case ExactFitToggled:
		s, effects = s.toggleExactFit(ev.On)

	case DropdownPicked:
		s, effects = s.pickDropdown(ev.Value)

	case AutoPopulateToggled:
		if s.AutoPopulate != ev.On {
			s.AutoPopulate = ev.On
			effects = append(effects, Send{Notice: AutoPopulateChanged{AutoPopulate: ev.On}})
		}

	case ColorEdited:
		if hex, ok := NormalizeHex(ev.Hex); ok && s.slotEditable(ev.Slot) {
			s.Colors[ev.Slot] = hex
			s, effects = s.armColorFlush()
		}

	case OpacityEdited:
		if pct, ok := NormalizeOpacity(ev.Percent); ok && s.slotEditable(ev.Slot) {
			s.Opacities[ev.Slot] = pct
			s, effects = s.armColorFlush()
		}

	case ColorFlushDue:
		if s.flushPending && ev.Generation == s.colorGen {
			s.flushPending = false
			effects = append(effects, Send{Notice: ColorsChanged{
				HexColors:      s.ResolvedColors(),
				OpacityPercent: s.ResolvedOpacities(),
			}})
		}

	case CreateGrid:
		if s.CanCreate() {
			s.GridCreated = true
			effects = append(effects, Send{Notice: CreateGridRequested{CellCount: s.CellCount, Padding: s.Padding}})
		}
	}

	if after := (gridParams{cellCount: s.CellCount, padding: s.Padding}); after != before {
		effects = append(effects, Send{Notice: GridParametersChanged{CellCount: after.cellCount, Padding: after.padding}})
	}

	return s, effects
}

// ReduceAll folds events over s, concatenating effects.
func ReduceAll(s State, events ...Event) (State, []Effect) {
	var all []Effect
	for _, ev := range events {
		var effects []Effect
		s, effects = Reduce(s, ev)
		all = append(all, effects...)
	}
	return s, all
}

type gridParams struct {
	cellCount int
	padding   int
}

// slotEditable stays true after create: only sizing is latched.
func (s State) slotEditable(slot int) bool {
	return slot >= 0 && slot < s.VisibleSlots()
}

// armColorFlush supersedes any pending flush. The flush reads colors when it
// fires, so the latest edit is what gets sent.
func (s State) armColorFlush() (State, []Effect) {
	s.colorGen++
	s.flushPending = true
	return s, []Effect{ArmColorFlush{Generation: s.colorGen, After: s.DebounceWindow()}}
}

func cellCountNotice(v int) Send {
	return Send{Notice: CellCountChanged{CellCount: strconv.Itoa(v)}}
}
