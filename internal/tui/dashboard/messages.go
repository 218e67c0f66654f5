package dashboard

import (
	"time"

	"github.com/alexisbeaulieu97/gridpanel/internal/panel"
)

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewEdit ViewMode = iota
	ViewCreated
	ViewHelp
)

// Host Messages

// HostEventMsg carries one inbound event from the host.
type HostEventMsg struct {
	Event panel.Event
}

// HostClosedMsg means the host stopped sending events.
type HostClosedMsg struct{}

// HostErrorMsg reports a failed host request, such as cycling frames.
type HostErrorMsg struct {
	Err error
}

// Outbound Messages

// NoticesSentMsg reports the delivery of a batch of notices, in order.
// Errs is parallel to Notices; a nil entry was delivered.
type NoticesSentMsg struct {
	Notices []panel.Notice
	Errs    []error
}

// Timer Messages

// ColorFlushMsg fires when the color quiet period armed with Generation ends.
type ColorFlushMsg struct {
	Generation uint64
}

// ClearStatusMsg dismisses the status line if it is still the one with ID.
type ClearStatusMsg struct {
	ID int
}

// statusDuration is how long a status message stays visible.
const statusDuration = 3 * time.Second
