package top

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/tabstrip/internal/logging"
)

// Start starts the TUI and blocks until the user exits.
func Start(opts Options) error {
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger(logging.Options{})
	}

	// Subscribe before the model is constructed so that nothing it logs is
	// missed.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := opts.Logger.Subscribe(ctx)

	m, err := New(opts)
	if err != nil {
		return err
	}
	if m.dump != nil {
		defer m.dump.Close()
	}

	popts := []tea.ProgramOption{
		// Use the full size of the terminal with its "alternate screen buffer"
		tea.WithAltScreen(),
	}
	if opts.Mouse {
		// Mouse cell motion removes the ability to select text with the
		// mouse, so it is opt-in.
		popts = append(popts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, popts...)

	// Relay log events to the model in the background
	go func() {
		for ev := range events {
			p.Send(ev)
		}
	}()

	// Blocks until user quits
	_, err = p.Run()
	return err
}
