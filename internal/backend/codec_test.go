package backend

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gridpanel/internal/panel"
	panelerrors "github.com/alexisbeaulieu97/gridpanel/pkg/errors"
)

func TestEncoderWritesOneLinePerNotice(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	require.NoError(t, enc.Encode(panel.GridParametersChanged{CellCount: 9, Padding: 4}))
	require.NoError(t, enc.Encode(panel.CellCountChanged{CellCount: "16"}))
	require.NoError(t, enc.Encode(panel.ColorsChanged{
		HexColors:      []string{"ff0000", "cac578", "c69a94", "57b59c", "b1371b"},
		OpacityPercent: []string{"50%", "100%", "100%", "100%", "100%"},
	}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.JSONEq(t, `{"type":"grid-parameters-changed","payload":{"cellCount":9,"padding":4}}`, lines[0])
	assert.JSONEq(t, `{"type":"cell-count-changed","payload":{"cellCount":"16"}}`, lines[1])
	assert.JSONEq(t, `{"type":"colors-changed","payload":{
		"hexColors":["ff0000","cac578","c69a94","57b59c","b1371b"],
		"opacityPercent":["50%","100%","100%","100%","100%"]}}`, lines[2])
}

func TestEncoderIgnoresNilNotice(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode(nil))
	assert.Empty(t, buf.String())
}

func TestDecoderReadsHostAndLocalEvents(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		`{"type":"frame-selected","payload":{"isFrameSelected":true}}`,
		``,
		`{"type":"possible-cell-counts","payload":{"possibleCellCounts":[4,9,16],"exactFitCounts":[9]}}`,
		`{"type":"slider-moved","payload":{"value":11}}`,
		`{"type":"cell-count-typed","payload":{"value":"250"}}`,
		`{"type":"padding-changed","payload":{"value":8}}`,
		`{"type":"exact-fit-toggled","payload":{"on":true}}`,
		`{"type":"dropdown-picked","payload":{"value":9}}`,
		`{"type":"auto-populate-toggled","payload":{"on":true}}`,
		`{"type":"color-edited","payload":{"slot":2,"hex":"#FF0000"}}`,
		`{"type":"opacity-edited","payload":{"slot":0,"percent":"40"}}`,
		`{"type":"colors-echo","payload":{"hexColors":["aaaaaa"]}}`,
		`{"type":"create-grid-clicked"}`,
	}, "\n")

	dec := NewDecoder(strings.NewReader(input))
	var got []panel.Event
	for {
		ev, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, ev)
	}

	assert.Equal(t, []panel.Event{
		panel.FrameSelected{Selected: true},
		panel.PossibleCellCounts{Possible: []int{4, 9, 16}, ExactFits: []int{9}},
		panel.SliderMoved{Raw: 11},
		panel.CellCountTyped{Raw: 250},
		panel.PaddingChanged{Raw: 8},
		panel.ExactFitToggled{On: true},
		panel.DropdownPicked{Value: 9},
		panel.AutoPopulateToggled{On: true},
		panel.ColorEdited{Slot: 2, Hex: "#FF0000"},
		panel.OpacityEdited{Slot: 0, Percent: "40"},
		panel.ColorsEcho{HexColors: []string{"aaaaaa"}},
		panel.CreateGrid{},
	}, got)
}

func TestDecoderMalformedCountsMeanNoSteps(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"missing list":    `{"type":"possible-cell-counts","payload":{}}`,
		"empty list":      `{"type":"possible-cell-counts","payload":{"possibleCellCounts":[]}}`,
		"not a list":      `{"type":"possible-cell-counts","payload":{"possibleCellCounts":"4,9"}}`,
		"missing payload": `{"type":"possible-cell-counts"}`,
	}

	for name, line := range cases {
		line := line
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ev, err := NewDecoder(strings.NewReader(line)).Next()
			require.NoError(t, err)
			assert.Equal(t, panel.PossibleCellCounts{}, ev)
		})
	}
}

func TestDecoderBadExactFitsKeepsSteps(t *testing.T) {
	t.Parallel()

	line := `{"type":"possible-cell-counts","payload":{"possibleCellCounts":[4,9],"exactFitCounts":"nope"}}`
	ev, err := NewDecoder(strings.NewReader(line)).Next()
	require.NoError(t, err)
	assert.Equal(t, panel.PossibleCellCounts{Possible: []int{4, 9}}, ev)
}

func TestDecoderProtocolErrors(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		`not json`,
		`{"type":"teleport"}`,
		`{"type":"slider-moved","payload":{"value":"eleven"}}`,
		`{"type":"frame-selected","payload":{"isFrameSelected":false}}`,
	}, "\n")
	dec := NewDecoder(strings.NewReader(input))

	_, err := dec.Next()
	var protoErr *panelerrors.ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, 1, protoErr.Line)

	_, err = dec.Next()
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, 2, protoErr.Line)
	assert.Equal(t, "teleport", protoErr.Event)
	assert.ErrorIs(t, err, ErrUnknownEvent)

	_, err = dec.Next()
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, "slider-moved", protoErr.Event)

	ev, err := dec.Next()
	require.NoError(t, err, "decoder recovers on the next line")
	assert.Equal(t, panel.FrameSelected{Selected: false}, ev)

	_, err = dec.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestNoticeWireNames(t *testing.T) {
	t.Parallel()

	notices := []panel.Notice{
		panel.GridParametersChanged{},
		panel.ColorsChanged{},
		panel.CellCountChanged{},
		panel.AutoPopulateChanged{},
		panel.ExactFitChanged{},
		panel.CreateGridRequested{},
	}
	want := []string{
		"grid-parameters-changed",
		"colors-changed",
		"cell-count-changed",
		"auto-populate-changed",
		"exact-fit-changed",
		"create-grid",
	}

	for i, n := range notices {
		assert.Equal(t, want[i], n.Name())
	}
}
