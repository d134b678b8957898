package logging

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/leg100/tabstrip/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Level: "warn", AdditionalWriters: []io.Writer{&buf}})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	sub := logger.Subscribe(ctx)

	logger.Info("not logged")
	logger.Warn("unknown tab position", "position", "diagonal")
	logger.Error("loading tabs", "error", "boom")

	msgs := logger.List()
	require.Len(t, msgs, 2)
	assert.Equal(t, "loading tabs", msgs[0].Message)
	assert.Equal(t, "ERROR", msgs[0].Level)
	assert.Equal(t, uint(1), msgs[0].Serial)

	assert.Equal(t, "WARN", msgs[1].Level)
	position, ok := msgs[1].Attr("position")
	assert.True(t, ok)
	assert.Equal(t, "diagonal", position)

	ev := <-sub
	assert.Equal(t, resource.CreatedEvent, ev.Type)
	assert.Equal(t, "unknown tab position", ev.Payload.Message)

	assert.Contains(t, buf.String(), "msg=\"unknown tab position\"")
}

func TestValidLevels(t *testing.T) {
	assert.Equal(t, []string{"info", "debug", "error", "warn"}, ValidLevels())
}

func TestNewLogger_UnknownLevel(t *testing.T) {
	logger := NewLogger(Options{Level: "verbose"})

	logger.Debug("hidden")
	logger.Info("shown")

	msgs := logger.List()
	require.Len(t, msgs, 1)
	assert.Equal(t, "shown", msgs[0].Message)
}
