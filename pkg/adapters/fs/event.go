package fs

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType is the kind of change seen on a watched input.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event reports a change to one input of a paper. Path is slash separated
// and relative to the watched root.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}

func eventType(ev fsnotify.Event) EventType {
	switch {
	case ev.Has(fsnotify.Create):
		return EventCreate
	case ev.Has(fsnotify.Write):
		return EventModify
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		return EventDelete
	}
	return ""
}

func newEvent(t EventType, path string) Event {
	return Event{Type: t, Path: path, Timestamp: time.Now().Unix()}
}
