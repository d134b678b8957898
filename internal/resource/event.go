// Package resource holds the types shared between the publishers and
// subscribers of events, and the keys of interactively created resources.
package resource

// EventType identifies what happened to the payload of an event.
type EventType string

const (
	CreatedEvent EventType = "created"
	UpdatedEvent EventType = "updated"
)

// Event is published whenever a resource, e.g. a log message, is created or
// updated.
type Event[T any] struct {
	Type    EventType
	Payload T
}

func NewEvent[T any](t EventType, payload T) Event[T] {
	return Event[T]{Type: t, Payload: payload}
}
