// package app is the main entrypoint into the application, responsible for
// configuring and starting the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/tabnav"
	"github.com/leg100/tabstrip/internal/tui/top"
	"github.com/leg100/tabstrip/internal/version"
	"github.com/peterbourgon/ff/v4"
)

// Start the app.
func Start(stdout, stderr io.Writer, args []string) error {
	// Parse configuration from env vars and flags
	cfg, err := parse(stderr, args)
	if errors.Is(err, ff.ErrHelp) {
		return nil
	} else if err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Version {
		fmt.Fprintln(stdout, "tabstrip", version.Version)
		return nil
	}

	// Setup logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		cfg.loggingOptions.AdditionalWriters = append(cfg.loggingOptions.AdditionalWriters, f)
	}
	logger := logging.NewLogger(cfg.loggingOptions)
	slog.SetDefault(logger.Logger)

	opts, err := cfg.topOptions(logger)
	if err != nil {
		return err
	}
	if cfg.PrintLayout > 0 {
		return printLayout(stdout, opts, cfg.PrintLayout)
	}
	return top.Start(opts)
}

// topOptions constructs the options for the TUI, loading tabs from a file if
// one is configured and otherwise generating demo tabs.
func (cfg config) topOptions(logger *logging.Logger) (top.Options, error) {
	opts := top.Options{
		Position:         cfg.Position,
		RTL:              cfg.RTL,
		Centered:         cfg.Centered,
		Editable:         cfg.Editable,
		HideAdd:          cfg.HideAdd,
		DefaultActiveKey: tabnav.Key(cfg.Active),
		Logger:           logger,
		Debug:            cfg.Debug,
		Mouse:            cfg.Mouse,
	}
	if cfg.TabsFile == "" {
		opts.Tabs = demoTabs(cfg.NumTabs)
		return opts, nil
	}
	tabs, active, err := loadTabs(cfg.TabsFile)
	if err != nil {
		return top.Options{}, err
	}
	opts.Tabs = tabs
	// The flag takes precedence over the file.
	if opts.DefaultActiveKey == "" {
		opts.DefaultActiveKey = active
	}
	logger.Debug("loaded tabs", "path", cfg.TabsFile, "tabs", len(tabs))
	return opts, nil
}
