package domain

import (
	"fmt"
	"time"
)

// EventType is a notification ad lifecycle event.
type EventType string

const (
	EventTypeServed    EventType = "served"    // served impression
	EventTypeViewed    EventType = "viewed"    // viewed impression
	EventTypeClicked   EventType = "clicked"   // terminal
	EventTypeDismissed EventType = "dismissed" // terminal
	EventTypeTimedOut  EventType = "timed_out" // terminal
)

var eventTypes = []EventType{
	EventTypeServed,
	EventTypeViewed,
	EventTypeClicked,
	EventTypeDismissed,
	EventTypeTimedOut,
}

// EventTypes returns every known event type in lifecycle order.
func EventTypes() []EventType {
	out := make([]EventType, len(eventTypes))
	copy(out, eventTypes)
	return out
}

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	for _, v := range eventTypes {
		if v == t {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further event may follow t for the same
// placement.
func (t EventType) IsTerminal() bool {
	switch t {
	case EventTypeClicked, EventTypeDismissed, EventTypeTimedOut:
		return true
	default:
		return false
	}
}

func (t EventType) String() string {
	return string(t)
}

// ParseEventType converts a wire name into an EventType.
func ParseEventType(s string) (EventType, error) {
	t := EventType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown event type %q", s)
	}
	return t, nil
}

// AdEvent is an append-only record of an event fired for a placement.
type AdEvent struct {
	ID          string
	PlacementID string
	Type        EventType
	CreatedAt   time.Time
}
