package dashboard

import (
	"github.com/alexisbeaulieu97/gridpanel/internal/config"
	"github.com/alexisbeaulieu97/gridpanel/internal/panel"
)

// Host is the selection side of the canvas the dashboard controls: it pushes
// selection and count events and lets the user move between frames.
type Host interface {
	Events() <-chan panel.Event
	Cycle(dir int) error
	Selected() (config.Frame, int, bool)
}
