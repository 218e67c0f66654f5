// Package backend is the panel's boundary with its host: outbound sinks,
// the JSON-lines wire codec and a scenario-driven host simulator.
package backend

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/gridpanel/internal/logger"
	"github.com/alexisbeaulieu97/gridpanel/internal/panel"
)

// Outbound receives panel notices. Sends are fire-and-forget: callers log a
// returned error and move on.
type Outbound interface {
	Send(ctx context.Context, notice panel.Notice) error
}

// OutboundFunc adapts a function to Outbound.
type OutboundFunc func(ctx context.Context, notice panel.Notice) error

// Send implements Outbound.
func (f OutboundFunc) Send(ctx context.Context, notice panel.Notice) error {
	return f(ctx, notice)
}

// Recorder keeps every notice in memory.
type Recorder struct {
	mu      sync.Mutex
	notices []panel.Notice
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Send implements Outbound.
func (r *Recorder) Send(_ context.Context, notice panel.Notice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, notice)
	return nil
}

// Notices returns a copy of the recorded notices.
func (r *Recorder) Notices() []panel.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]panel.Notice(nil), r.notices...)
}

// Named returns the recorded notices with the given wire name.
func (r *Recorder) Named(name string) []panel.Notice {
	var out []panel.Notice
	for _, n := range r.Notices() {
		if n.Name() == name {
			out = append(out, n)
		}
	}
	return out
}

// Last returns the most recent notice.
func (r *Recorder) Last() (panel.Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return nil, false
	}
	return r.notices[len(r.notices)-1], true
}

// Reset forgets every recorded notice.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = nil
}

// LogSink writes each notice as a structured log entry and forwards it to
// next, if any.
type LogSink struct {
	log  *logger.Logger
	next Outbound
}

// NewLogSink wraps next with notice logging.
func NewLogSink(log *logger.Logger, next Outbound) *LogSink {
	return &LogSink{log: log, next: next}
}

// Send implements Outbound.
func (s *LogSink) Send(ctx context.Context, notice panel.Notice) error {
	if notice == nil {
		return nil
	}

	s.log.WithFields(noticeFields(notice)).Debug("panel notice")

	if s.next == nil {
		return nil
	}
	if err := s.next.Send(ctx, notice); err != nil {
		s.log.WithField("notice", notice.Name()).Error(err, "notice delivery failed")
		return err
	}
	return nil
}

func noticeFields(notice panel.Notice) map[string]any {
	fields := map[string]any{"notice": notice.Name()}
	switch n := notice.(type) {
	case panel.GridParametersChanged:
		fields["cell_count"] = n.CellCount
		fields["padding"] = n.Padding
	case panel.CreateGridRequested:
		fields["cell_count"] = n.CellCount
		fields["padding"] = n.Padding
	case panel.CellCountChanged:
		fields["cell_count"] = n.CellCount
	case panel.ColorsChanged:
		fields["hex_colors"] = n.HexColors
		fields["opacity_percent"] = n.OpacityPercent
	case panel.AutoPopulateChanged:
		fields["auto_populate"] = n.AutoPopulate
	case panel.ExactFitChanged:
		fields["exact_fit"] = n.ExactFit
	}
	return fields
}

var (
	_ Outbound = (*Recorder)(nil)
	_ Outbound = (*LogSink)(nil)
	_ Outbound = OutboundFunc(nil)
)
