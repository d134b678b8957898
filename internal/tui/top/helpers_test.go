package top

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/tabnav"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func init() {
	// Disable color in tests (see https://charm.sh/blog/teatest/)
	lipgloss.SetColorProfile(termenv.Ascii)
}

var testTabs = []Tab{
	{Tab: tabnav.Tab{Key: "a", Label: "one", Closable: true}},
	{Tab: tabnav.Tab{Key: "b", Label: "two", Closable: true}},
	{Tab: tabnav.Tab{Key: "c", Label: "three"}},
}

func setup(t *testing.T, opts Options) *teatest.TestModel {
	t.Helper()

	if opts.Tabs == nil {
		opts.Tabs = testTabs
	}
	opts.Logger = logging.NewLogger(logging.Options{
		Level:             "debug",
		AdditionalWriters: []io.Writer{&testLogger{t}},
	})
	m, err := New(opts)
	require.NoError(t, err)

	return teatest.NewTestModel(t, m, teatest.WithInitialTermSize(60, 12))
}

// testLogger relays log records to the go test logger
type testLogger struct {
	t *testing.T
}

func (l *testLogger) Write(b []byte) (int, error) {
	l.t.Helper()

	l.t.Log(string(b))
	return len(b), nil
}

func waitFor(t *testing.T, tm *teatest.TestModel, s string) {
	t.Helper()

	teatest.WaitFor(
		t,
		tm.Output(),
		func(b []byte) bool {
			return strings.Contains(string(b), s)
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*3),
	)
}
