// Package logging provides a slog logger that keeps the records it emits in
// memory and publishes them as events, so that the TUI can surface them.
package logging

import (
	"io"
	"log/slog"
	"slices"

	"github.com/leg100/tabstrip/internal/pubsub"
	"golang.org/x/exp/maps"
)

const DefaultLevel = "info"

var levels = map[string]slog.Level{
	"debug":      slog.LevelDebug,
	DefaultLevel: slog.LevelInfo,
	"warn":       slog.LevelWarn,
	"error":      slog.LevelError,
}

// ValidLevels returns valid strings for choosing a log level. Returns the
// default log level first.
func ValidLevels() []string {
	keys := maps.Keys(levels)
	slices.SortFunc(keys, func(a, b string) int {
		if a == DefaultLevel {
			return -1
		}
		if b == DefaultLevel {
			return 1
		}
		// Sort remaining in alphabetical order.
		if a < b {
			return -1
		}
		return 1
	})
	return keys
}

// Interface is the logging interface accepted by the other packages.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Options struct {
	// The log level of the logger
	Level string
	// Any additional writers the log handler should write to.
	AdditionalWriters []io.Writer
}

// Logger wraps slog, providing further functionality such as emitting log
// records as events, and enriching records with further attributes.
type Logger struct {
	Logger *slog.Logger

	writer *writer

	*pubsub.Broker[Message]
	*enricher
}

// NewLogger constructs Logger. An unrecognised level falls back to the
// default level.
func NewLogger(opts Options) *Logger {
	logger := &Logger{enricher: &enricher{}}
	logger.Broker = pubsub.NewBroker[Message](logger)
	logger.writer = &writer{broker: logger.Broker}

	level, ok := levels[opts.Level]
	if !ok {
		level = levels[DefaultLevel]
	}
	handler := slog.NewTextHandler(
		io.MultiWriter(append(opts.AdditionalWriters, logger.writer)...),
		&slog.HandlerOptions{Level: level},
	)
	logger.Logger = slog.New(handler)
	return logger
}

func (l *Logger) Debug(msg string, args ...any) {
	l.Logger.Debug(msg, l.enrich(args...)...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.Logger.Info(msg, l.enrich(args...)...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.Logger.Warn(msg, l.enrich(args...)...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.Logger.Error(msg, l.enrich(args...)...)
}

// List lists the log messages received thus far.
func (l *Logger) List() []Message {
	return l.writer.list()
}
