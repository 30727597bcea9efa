package tui

import "time"

// statusTimeout is how long a copy notice stays on screen.
const statusTimeout = 2 * time.Second

// copyResultMsg reports the outcome of a clipboard write.
type copyResultMsg struct {
	ok bool
}

// clearStatusMsg removes the status notice with the given id. Older ticks
// carry stale ids and are ignored.
type clearStatusMsg struct {
	id int
}

// statusKind selects the styling of the status line.
type statusKind int

const (
	statusNone statusKind = iota
	statusSuccess
	statusError
)
