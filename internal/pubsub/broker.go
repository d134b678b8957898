// Package pubsub relays events from their source, e.g. the logger, to
// subscribers such as the TUI program.
package pubsub

import (
	"context"
	"sync"

	"github.com/leg100/tabstrip/internal/resource"
)

// subBufferSize is the buffer size of the channel for each subscription.
const subBufferSize = 256

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Broker allows clients to publish events and subscribe to events
type Broker[T any] struct {
	subs map[chan resource.Event[T]]struct{}
	mu   sync.Mutex

	// dropped counts events not delivered to a full subscriber
	dropped int

	logger Logger
}

func NewBroker[T any](logger Logger) *Broker[T] {
	return &Broker[T]{
		subs:   make(map[chan resource.Event[T]]struct{}),
		logger: logger,
	}
}

// Subscribe subscribes the caller to a stream of events. The subscription is
// closed when the context is canceled.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan resource.Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := make(chan resource.Event[T], subBufferSize)
	b.subs[sub] = struct{}{}

	go func() {
		<-ctx.Done()
		b.unsubscribe(sub)
	}()

	return sub
}

// Publish an event to subscribers. A subscriber whose buffer is full misses
// the event rather than blocking the publisher; it stays subscribed.
func (b *Broker[T]) Publish(t resource.EventType, payload T) {
	var full int

	b.mu.Lock()
	for sub := range b.subs {
		select {
		case sub <- resource.NewEvent(t, payload):
		default:
			full++
		}
	}
	first := full > 0 && b.dropped == 0
	b.dropped += full
	b.mu.Unlock()

	// Only the first drop is logged: the logger may itself publish through
	// this broker.
	if first && b.logger != nil {
		b.logger.Warn("dropping events for full subscriber", "queue_length", subBufferSize)
	}
}

// Dropped returns the number of events that could not be delivered.
func (b *Broker[T]) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

func (b *Broker[T]) unsubscribe(sub chan resource.Event[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; !ok {
		return
	}
	close(sub)
	delete(b.subs, sub)
}
