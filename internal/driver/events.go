package driver

import "context"

// EventKind describes a progress event emitted during a directory check.
type EventKind uint8

const (
	// EventFileStart is sent before a file is loaded and checked.
	EventFileStart EventKind = iota
	// EventFileDone is sent after a file's bag is complete and sorted.
	EventFileDone
)

// Event is one progress update. Index and Total are stable for both events
// of the same file, so consumers can render per-file status lines.
type Event struct {
	Kind  EventKind
	Path  string
	Index int
	Total int
	// Diagnostics и Cached заполняются только в EventFileDone.
	Diagnostics int
	Cached      bool
}

// emitEvent отправляет событие, не блокируясь на отменённом контексте.
func emitEvent(ctx context.Context, ch chan<- Event, ev Event) {
	if ch == nil {
		return
	}
	select {
	case ch <- ev:
	case <-ctx.Done():
	}
}
