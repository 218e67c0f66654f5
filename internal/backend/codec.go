package backend

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/gridpanel/internal/panel"
	panelerrors "github.com/alexisbeaulieu97/gridpanel/pkg/errors"
)

// ProtocolVersion identifies the JSON-lines event set below. It changes when
// an event or payload field is renamed or removed.
const ProtocolVersion = 1

// Inbound event names sent by the host.
const (
	EventFrameSelected      = "frame-selected"
	EventPossibleCellCounts = "possible-cell-counts"
	EventColorsEcho         = "colors-echo"
)

// Local edit names sent by a front-end that renders the panel itself.
const (
	EventSliderMoved         = "slider-moved"
	EventCellCountTyped      = "cell-count-typed"
	EventPaddingChanged      = "padding-changed"
	EventExactFitToggled     = "exact-fit-toggled"
	EventDropdownPicked      = "dropdown-picked"
	EventAutoPopulateToggled = "auto-populate-toggled"
	EventColorEdited         = "color-edited"
	EventOpacityEdited       = "opacity-edited"
	EventCreateGridClicked   = "create-grid-clicked"
)

// ErrUnknownEvent is wrapped by ProtocolError for unrecognised event names.
var ErrUnknownEvent = errors.New("unknown event")

// Envelope is one JSON line on the wire.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Encoder writes notices as JSON lines.
type Encoder struct {
	mu  sync.Mutex
	out io.Writer
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{out: w}
}

// Send implements Outbound.
func (e *Encoder) Send(_ context.Context, notice panel.Notice) error {
	return e.Encode(notice)
}

// Encode writes a single notice line.
func (e *Encoder) Encode(notice panel.Notice) error {
	if notice == nil {
		return nil
	}

	payload, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("encode %s: %w", notice.Name(), err)
	}
	line, err := json.Marshal(Envelope{Type: notice.Name(), Payload: payload})
	if err != nil {
		return fmt.Errorf("encode %s: %w", notice.Name(), err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err := e.out.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write %s: %w", notice.Name(), err)
	}
	return nil
}

// Decoder reads host and front-end events from JSON lines.
type Decoder struct {
	scanner *bufio.Scanner
	line    int
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Decoder{scanner: scanner}
}

// Next returns the next event. Blank lines are skipped; io.EOF marks the end
// of the stream. A line that cannot be decoded yields a *ProtocolError and
// leaves the decoder positioned on the following line.
func (d *Decoder) Next() (panel.Event, error) {
	for d.scanner.Scan() {
		d.line++
		raw := strings.TrimSpace(d.scanner.Text())
		if raw == "" {
			continue
		}

		var env Envelope
		if err := json.Unmarshal([]byte(raw), &env); err != nil {
			return nil, panelerrors.NewProtocolError("", d.line, err)
		}
		ev, err := DecodeEvent(env)
		if err != nil {
			return nil, panelerrors.NewProtocolError(env.Type, d.line, err)
		}
		return ev, nil
	}

	if err := d.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// DecodeEvent converts an envelope into a panel event.
func DecodeEvent(env Envelope) (panel.Event, error) {
	switch env.Type {
	case EventFrameSelected:
		var p struct {
			IsFrameSelected bool `json:"isFrameSelected"`
		}
		if err := unmarshalPayload(env.Payload, &p); err != nil {
			return nil, err
		}
		return panel.FrameSelected{Selected: p.IsFrameSelected}, nil

	case EventPossibleCellCounts:
		return decodePossibleCellCounts(env.Payload), nil

	case EventColorsEcho:
		var p struct {
			HexColors      []string `json:"hexColors"`
			OpacityPercent []string `json:"opacityPercent"`
		}
		// Reserved event; a payload that does not decode is still an echo.
		_ = unmarshalPayload(env.Payload, &p)
		return panel.ColorsEcho{HexColors: p.HexColors, Opacities: p.OpacityPercent}, nil

	case EventSliderMoved, EventCellCountTyped, EventPaddingChanged, EventDropdownPicked:
		var p struct {
			Value flexInt `json:"value"`
		}
		if err := unmarshalPayload(env.Payload, &p); err != nil {
			return nil, err
		}
		v := int(p.Value)
		switch env.Type {
		case EventSliderMoved:
			return panel.SliderMoved{Raw: v}, nil
		case EventCellCountTyped:
			return panel.CellCountTyped{Raw: v}, nil
		case EventPaddingChanged:
			return panel.PaddingChanged{Raw: v}, nil
		default:
			return panel.DropdownPicked{Value: v}, nil
		}

	case EventExactFitToggled, EventAutoPopulateToggled:
		var p struct {
			On bool `json:"on"`
		}
		if err := unmarshalPayload(env.Payload, &p); err != nil {
			return nil, err
		}
		if env.Type == EventExactFitToggled {
			return panel.ExactFitToggled{On: p.On}, nil
		}
		return panel.AutoPopulateToggled{On: p.On}, nil

	case EventColorEdited:
		var p struct {
			Slot int    `json:"slot"`
			Hex  string `json:"hex"`
		}
		if err := unmarshalPayload(env.Payload, &p); err != nil {
			return nil, err
		}
		return panel.ColorEdited{Slot: p.Slot, Hex: p.Hex}, nil

	case EventOpacityEdited:
		var p struct {
			Slot    int    `json:"slot"`
			Percent string `json:"percent"`
		}
		if err := unmarshalPayload(env.Payload, &p); err != nil {
			return nil, err
		}
		return panel.OpacityEdited{Slot: p.Slot, Percent: p.Percent}, nil

	case EventCreateGridClicked:
		return panel.CreateGrid{}, nil
	}

	return nil, ErrUnknownEvent
}

// decodePossibleCellCounts never fails: an absent, non-list or empty
// possibleCellCounts means no valid steps are known.
func decodePossibleCellCounts(payload json.RawMessage) panel.PossibleCellCounts {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return panel.PossibleCellCounts{}
	}

	var possible []int
	if err := json.Unmarshal(fields["possibleCellCounts"], &possible); err != nil || len(possible) == 0 {
		return panel.PossibleCellCounts{}
	}

	var exact []int
	if err := json.Unmarshal(fields["exactFitCounts"], &exact); err != nil {
		exact = nil
	}
	return panel.PossibleCellCounts{Possible: possible, ExactFits: exact}
}

func unmarshalPayload(payload json.RawMessage, out any) error {
	if len(payload) == 0 || string(payload) == "null" {
		return nil
	}
	return json.Unmarshal(payload, out)
}

// flexInt accepts 12 or "12"; numeric entries arrive as text from some hosts.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexInt(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("value must be an integer: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("value must be an integer: %w", err)
	}
	*f = flexInt(n)
	return nil
}

var _ Outbound = (*Encoder)(nil)
