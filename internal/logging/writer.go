package logging

import (
	"bytes"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/go-logfmt/logfmt"
	"github.com/leg100/tabstrip/internal/pubsub"
	"github.com/leg100/tabstrip/internal/resource"
)

// Message is the event payload for a log message
type Message struct {
	Time       time.Time
	Level      string
	Message    string `json:"msg"`
	Attributes []Attr

	// Serial uniquely identifies the message (within the scope of the logger it
	// was emitted from). The higher the Serial number the newer the message.
	Serial uint
}

type Attr struct {
	Key   string
	Value string
}

// Attr returns the value of the attribute with the given key.
func (m Message) Attr(key string) (string, bool) {
	for _, a := range m.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// BySerialDesc sorts log messages newest first.
func BySerialDesc(i, j Message) int {
	if i.Serial < j.Serial {
		return 1
	}
	return -1
}

// writer is a slog TextHandler writer that both keeps the log records in
// memory and emits them as events.
type writer struct {
	broker *pubsub.Broker[Message]

	mu       sync.Mutex
	messages []Message
	serial   uint
}

func (w *writer) Write(p []byte) (int, error) {
	msgs := make([]Message, 0, 1)
	d := logfmt.NewDecoder(bytes.NewReader(p))
	w.mu.Lock()
	for d.ScanRecord() {
		msg := Message{Serial: w.serial}
		for d.ScanKeyval() {
			switch string(d.Key()) {
			case "time":
				parsed, err := time.Parse(time.RFC3339, string(d.Value()))
				if err != nil {
					w.mu.Unlock()
					return 0, fmt.Errorf("parsing time: %w", err)
				}
				msg.Time = parsed
			case "level":
				msg.Level = string(d.Value())
			case "msg":
				msg.Message = string(d.Value())
			default:
				msg.Attributes = append(msg.Attributes, Attr{
					Key:   string(d.Key()),
					Value: string(d.Value()),
				})
			}
		}
		msgs = append(msgs, msg)
		w.serial++
	}
	if err := d.Err(); err != nil {
		w.mu.Unlock()
		return 0, err
	}
	w.messages = append(w.messages, msgs...)
	w.mu.Unlock()

	// Publish outside the lock: the broker may log, which writes again.
	for _, msg := range msgs {
		w.broker.Publish(resource.CreatedEvent, msg)
	}
	return len(p), nil
}

func (w *writer) list() []Message {
	w.mu.Lock()
	defer w.mu.Unlock()

	msgs := slices.Clone(w.messages)
	slices.SortFunc(msgs, BySerialDesc)
	return msgs
}
