package panel

import (
	"strconv"
	"strings"
)

// VisibleSlots is the number of color pickers shown for the current cell count.
func (s State) VisibleSlots() int {
	if s.CellCount < 0 {
		return 0
	}
	return min(s.CellCount, MaxSlots)
}

// SlotColor returns the hex color of slot i, falling back to the palette.
func (s State) SlotColor(i int) string {
	if i >= 0 && i < MaxSlots && s.Colors[i] != "" {
		return s.Colors[i]
	}
	palette := s.palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	if i < 0 {
		i = 0
	}
	return palette[i%len(palette)]
}

// SlotOpacity returns the opacity of slot i, "100%" until edited.
func (s State) SlotOpacity(i int) string {
	if i >= 0 && i < MaxSlots && s.Opacities[i] != "" {
		return s.Opacities[i]
	}
	return DefaultOpacity
}

// ResolvedColors returns every slot's color with fallbacks applied.
func (s State) ResolvedColors() []string {
	out := make([]string, MaxSlots)
	for i := range out {
		out[i] = s.SlotColor(i)
	}
	return out
}

// ResolvedOpacities returns every slot's opacity with fallbacks applied.
func (s State) ResolvedOpacities() []string {
	out := make([]string, MaxSlots)
	for i := range out {
		out[i] = s.SlotOpacity(i)
	}
	return out
}

// NormalizeHex strips a leading '#' and lowercases a 3 or 6 digit hex color.
func NormalizeHex(raw string) (string, bool) {
	hex := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(raw), "#"))
	if len(hex) != 3 && len(hex) != 6 {
		return "", false
	}
	for _, r := range hex {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return "", false
		}
	}
	return hex, true
}

// NormalizeOpacity accepts "80" or "80%" and returns "80%", clamped to 0-100.
func NormalizeOpacity(raw string) (string, bool) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(raw), "%")
	value, err := strconv.Atoi(strings.TrimSpace(trimmed))
	if err != nil {
		return "", false
	}
	value = max(0, min(value, 100))
	return strconv.Itoa(value) + "%", true
}
