package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gridpanel/internal/backend"
	"github.com/alexisbeaulieu97/gridpanel/internal/panel"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// listenCmd waits for the next host event
func listenCmd(events <-chan panel.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return HostClosedMsg{}
		}
		return HostEventMsg{Event: ev}
	}
}

// outbox keeps the host's view in transition order. Update enqueues the
// notices of each transition synchronously; flushes run as commands on their
// own goroutines but deliver under one lock, draining whatever is queued, so
// a later edit can never overtake an earlier one.
type outbox struct {
	out backend.Outbound

	deliver sync.Mutex

	mu      sync.Mutex
	pending []panel.Notice
}

func newOutbox(out backend.Outbound) *outbox {
	return &outbox{out: out}
}

func (o *outbox) enqueue(notices []panel.Notice) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pending = append(o.pending, notices...)
}

// flush delivers every queued notice in order, each attempted once. It
// returns nil when an earlier flush already delivered the queue.
func (o *outbox) flush() tea.Msg {
	o.deliver.Lock()
	defer o.deliver.Unlock()

	o.mu.Lock()
	batch := o.pending
	o.pending = nil
	o.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}
	errs := make([]error, len(batch))
	if o.out != nil {
		for i, n := range batch {
			errs[i] = o.out.Send(context.Background(), n)
		}
	}
	return NoticesSentMsg{Notices: batch, Errs: errs}
}

// sendCmd queues notices and returns the command that flushes them
func sendCmd(o *outbox, notices []panel.Notice) tea.Cmd {
	if len(notices) == 0 {
		return nil
	}
	o.enqueue(notices)
	return o.flush
}

// colorFlushCmd fires the color flush for generation after the quiet period
func colorFlushCmd(generation uint64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ColorFlushMsg{Generation: generation}
	})
}

// cycleFrameCmd asks the host to select another frame
func cycleFrameCmd(host Host, dir int) tea.Cmd {
	if host == nil {
		return nil
	}
	return func() tea.Msg {
		if err := host.Cycle(dir); err != nil {
			return HostErrorMsg{Err: err}
		}
		return nil
	}
}

// clearStatusCmd dismisses status message id after statusDuration
func clearStatusCmd(id int) tea.Cmd {
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}
