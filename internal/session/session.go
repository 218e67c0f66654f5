// Package session runs a panel without a terminal: it applies events to the
// panel state, delivers notices and owns the color debounce timer.
package session

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/gridpanel/internal/backend"
	"github.com/alexisbeaulieu97/gridpanel/internal/debounce"
	"github.com/alexisbeaulieu97/gridpanel/internal/logger"
	"github.com/alexisbeaulieu97/gridpanel/internal/panel"
	panelerrors "github.com/alexisbeaulieu97/gridpanel/pkg/errors"
)

// Options configures a Session.
type Options struct {
	Panel    panel.Options
	Outbound backend.Outbound
	Clock    debounce.Clock
	Logger   *logger.Logger
}

// Session is one open panel.
type Session struct {
	id    string
	log   *logger.Logger
	out   backend.Outbound
	flush *debounce.Debouncer

	mu     sync.Mutex
	state  panel.State
	closed bool
}

// New opens a session. A nil Outbound discards notices; a nil Clock uses the
// system clock.
func New(opts Options) *Session {
	id := uuid.NewString()

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	out := opts.Outbound
	if out == nil {
		out = backend.OutboundFunc(func(context.Context, panel.Notice) error { return nil })
	}

	state := panel.New(opts.Panel)
	return &Session{
		id:    id,
		log:   log.WithField("session", id),
		out:   out,
		flush: debounce.New(opts.Clock, state.DebounceWindow()),
		state: state,
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// State returns a snapshot of the panel state.
func (s *Session) State() panel.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies ev and carries out the resulting effects. Events arriving
// after Close are dropped.
func (s *Session) Dispatch(ctx context.Context, ev panel.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	next, effects := panel.Reduce(s.state, ev)
	s.state = next

	for _, effect := range effects {
		switch e := effect.(type) {
		case panel.Send:
			s.send(ctx, e.Notice)
		case panel.ArmColorFlush:
			gen := e.Generation
			s.flush.TriggerAfter(e.After, func() {
				s.Dispatch(context.Background(), panel.ColorFlushDue{Generation: gen})
			})
		}
	}
}

// send delivers a notice once. Failures are logged and not retried.
func (s *Session) send(ctx context.Context, notice panel.Notice) {
	if err := s.out.Send(ctx, notice); err != nil {
		s.log.WithField("notice", notice.Name()).Error(err, "notice dropped")
	}
}

// Close ends the session. A pending color flush is discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.flush.Pending() {
		s.log.Debug("discarding pending color flush")
	}
	s.flush.Cancel()
	s.log.Debug("session closed")
}

// Serve dispatches events from dec until the stream ends or ctx is cancelled.
// Lines that cannot be decoded are logged and skipped.
func (s *Session) Serve(ctx context.Context, dec *backend.Decoder) error {
	type result struct {
		ev  panel.Event
		err error
	}

	results := make(chan result)
	go func() {
		defer close(results)
		for {
			ev, err := dec.Next()
			select {
			case results <- result{ev: ev, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				var protoErr *panelerrors.ProtocolError
				if !errors.As(err, &protoErr) {
					return
				}
			}
		}
	}()

	s.log.WithField("protocol", backend.ProtocolVersion).Info("session serving")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case r, ok := <-results:
			if !ok {
				return ctx.Err()
			}
			if r.err != nil {
				var protoErr *panelerrors.ProtocolError
				switch {
				case errors.Is(r.err, io.EOF):
					s.log.Info("input closed")
					return nil
				case errors.As(r.err, &protoErr):
					s.log.WithField("line", protoErr.Line).Warn(protoErr.Error())
					continue
				default:
					return r.err
				}
			}
			s.Dispatch(ctx, r.ev)
		}
	}
}
