package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleSlots(t *testing.T) {
	t.Parallel()

	cases := map[int]int{0: 0, 1: 1, 4: 4, 5: 5, 9: 5, 300: 5}
	for count, want := range cases {
		s := New(Options{})
		s.CellCount = count
		assert.Equal(t, want, s.VisibleSlots(), "cell count %d", count)
	}
}

func TestSlotColorCyclesPalette(t *testing.T) {
	t.Parallel()

	s := New(Options{Palette: []string{"aaaaaa", "bbbbbb"}})
	assert.Equal(t, "aaaaaa", s.SlotColor(0))
	assert.Equal(t, "bbbbbb", s.SlotColor(1))
	assert.Equal(t, "aaaaaa", s.SlotColor(2))
	assert.Equal(t, "bbbbbb", s.SlotColor(7))
}

func TestDefaultPaletteHasFiveEntries(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	require.Len(t, DefaultPalette, MaxSlots)
	assert.Equal(t, DefaultPalette, s.ResolvedColors())
	assert.Equal(t, []string{"100%", "100%", "100%", "100%", "100%"}, s.ResolvedOpacities())
}

func TestNormalizeHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "#2A5256", want: "2a5256", ok: true},
		{in: " fff ", want: "fff", ok: true},
		{in: "12345", ok: false},
		{in: "zzzzzz", ok: false},
		{in: "", ok: false},
	}
	for _, tc := range cases {
		got, ok := NormalizeHex(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestNormalizeOpacity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "80", want: "80%", ok: true},
		{in: "80%", want: "80%", ok: true},
		{in: "140%", want: "100%", ok: true},
		{in: "-3", want: "0%", ok: true},
		{in: "%", ok: false},
		{in: "most", ok: false},
	}
	for _, tc := range cases {
		got, ok := NormalizeOpacity(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
