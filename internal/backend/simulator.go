package backend

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/gridpanel/internal/config"
	"github.com/alexisbeaulieu97/gridpanel/internal/debounce"
	"github.com/alexisbeaulieu97/gridpanel/internal/logger"
	"github.com/alexisbeaulieu97/gridpanel/internal/panel"
	"github.com/alexisbeaulieu97/gridpanel/pkg/diff"
)

// reloadQuiet is how long the scenario file must stay untouched before it is
// reloaded; a single save often produces a truncate followed by writes.
const reloadQuiet = 100 * time.Millisecond

// ErrSimulatorClosed is returned by operations on a closed Simulator.
var ErrSimulatorClosed = errors.New("simulator closed")

// Simulator stands in for the host: it plays a scenario's frames as
// selection changes and records what the panel sends back.
type Simulator struct {
	*Recorder

	log    *logger.Logger
	events chan panel.Event
	done   chan struct{}
	once   sync.Once

	mu       sync.Mutex
	scenario config.Scenario
	selected int
	watcher  *fsnotify.Watcher
	reloads  *debounce.Debouncer
}

// NewSimulator creates a Simulator for scenario. Call Start to push the
// initial selection.
func NewSimulator(scenario *config.Scenario, log *logger.Logger) *Simulator {
	if log == nil {
		log = logger.Nop()
	}
	sim := &Simulator{
		Recorder: NewRecorder(),
		log:      log.WithField("component", "simulator"),
		events:   make(chan panel.Event, 256),
		done:     make(chan struct{}),
		selected: config.NoSelection,
	}
	if scenario != nil {
		sim.scenario = *scenario
		sim.selected = scenario.Selected
	}
	return sim
}

// Events is the inbound stream for the panel.
func (s *Simulator) Events() <-chan panel.Event {
	return s.events
}

// Start announces the scenario's initial selection.
func (s *Simulator) Start() error {
	s.mu.Lock()
	selected := s.selected
	s.mu.Unlock()

	if selected == config.NoSelection {
		return s.push(panel.FrameSelected{Selected: false})
	}
	return s.Select(selected)
}

// Frames returns the scenario's frames.
func (s *Simulator) Frames() []config.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]config.Frame(nil), s.scenario.Frames...)
}

// Selected returns the currently selected frame.
func (s *Simulator) Selected() (config.Frame, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected < 0 || s.selected >= len(s.scenario.Frames) {
		return config.Frame{}, config.NoSelection, false
	}
	return s.scenario.Frames[s.selected], s.selected, true
}

// Select makes frame i the selection and pushes its counts.
func (s *Simulator) Select(i int) error {
	s.mu.Lock()
	if i < 0 || i >= len(s.scenario.Frames) {
		s.mu.Unlock()
		return fmt.Errorf("select frame %d: out of range (%d frames)", i, len(s.scenario.Frames))
	}
	s.selected = i
	frame := s.scenario.Frames[i]
	s.mu.Unlock()

	s.log.WithFields(map[string]any{"frame": frame.Name, "index": i}).Debug("frame selected")
	if err := s.push(panel.FrameSelected{Selected: true}); err != nil {
		return err
	}
	return s.push(countsFor(frame))
}

// Deselect clears the selection.
func (s *Simulator) Deselect() error {
	s.mu.Lock()
	s.selected = config.NoSelection
	s.mu.Unlock()

	s.log.Debug("selection cleared")
	return s.push(panel.FrameSelected{Selected: false})
}

// Cycle selects the next (dir > 0) or previous frame, wrapping around.
func (s *Simulator) Cycle(dir int) error {
	s.mu.Lock()
	n := len(s.scenario.Frames)
	current := s.selected
	s.mu.Unlock()

	if n == 0 {
		return nil
	}

	next := 0
	switch {
	case current == config.NoSelection && dir < 0:
		next = n - 1
	case current == config.NoSelection:
		next = 0
	case dir < 0:
		next = (current - 1 + n) % n
	default:
		next = (current + 1) % n
	}
	return s.Select(next)
}

// Watch reloads the scenario whenever path changes on disk and re-pushes the
// selected frame's counts, as the host does when a frame is resized.
func (s *Simulator) Watch(path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Editors often replace the file, so watch the directory.
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return err
	}

	s.mu.Lock()
	s.watcher = w
	s.mu.Unlock()

	go s.watch(w, filepath.Clean(path))
	return nil
}

func (s *Simulator) watch(w *fsnotify.Watcher, path string) {
	reloads := debounce.New(debounce.SystemClock{}, reloadQuiet)
	s.mu.Lock()
	s.reloads = reloads
	s.mu.Unlock()

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			reloads.Trigger(func() { s.reload(path) })
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			s.log.Error(err, "scenario watch failed")
		case <-s.done:
			return
		}
	}
}

func (s *Simulator) reload(path string) {
	select {
	case <-s.done:
		return
	default:
	}

	scenario, err := config.LoadScenario(path)
	if err != nil {
		s.log.WithField("path", path).Error(err, "scenario reload rejected")
		return
	}
	_ = s.Reload(scenario)
}

// Reload swaps in a new scenario, keeping the selection when the index still
// exists, and re-pushes the selected frame's counts.
func (s *Simulator) Reload(scenario *config.Scenario) error {
	s.mu.Lock()
	changes := diff.Lines(describeFrames(s.scenario), describeFrames(*scenario))
	s.scenario = *scenario
	if s.selected >= len(s.scenario.Frames) {
		s.selected = config.NoSelection
	}
	selected := s.selected
	var frame config.Frame
	if selected != config.NoSelection {
		frame = s.scenario.Frames[selected]
	}
	s.mu.Unlock()

	s.log.WithFields(map[string]any{
		"frames":  len(scenario.Frames),
		"changes": changes,
	}).Info("scenario reloaded")
	if selected == config.NoSelection {
		return s.push(panel.FrameSelected{Selected: false})
	}
	return s.push(countsFor(frame))
}

// Send records a notice from the panel.
func (s *Simulator) Send(ctx context.Context, notice panel.Notice) error {
	return s.Recorder.Send(ctx, notice)
}

// Close stops the watcher and the event stream.
func (s *Simulator) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		s.mu.Lock()
		if s.reloads != nil {
			s.reloads.Cancel()
		}
		if s.watcher != nil {
			err = s.watcher.Close()
		}
		s.mu.Unlock()
	})
	return err
}

func (s *Simulator) push(ev panel.Event) error {
	select {
	case <-s.done:
		return ErrSimulatorClosed
	default:
	}

	select {
	case s.events <- ev:
		return nil
	case <-s.done:
		return ErrSimulatorClosed
	}
}

func countsFor(frame config.Frame) panel.PossibleCellCounts {
	return panel.PossibleCellCounts{
		Possible:  append([]int(nil), frame.PossibleCellCounts...),
		ExactFits: append([]int(nil), frame.ExactFitCounts...),
	}
}

// describeFrames renders one line per frame for change reporting.
func describeFrames(s config.Scenario) string {
	var b strings.Builder
	for i, frame := range s.Frames {
		fmt.Fprintf(&b, "%d %s: possible=%v exact=%v\n", i+1, frame.Name, frame.PossibleCellCounts, frame.ExactFitCounts)
	}
	return b.String()
}

var _ Outbound = (*Simulator)(nil)
