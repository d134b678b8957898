package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/tabnav"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
)

const defaultNumTabs = 12

type config struct {
	Position string
	RTL      bool
	Centered bool
	Editable bool
	HideAdd  bool
	// NumTabs is the number of demo tabs generated when no tabs file is
	// given.
	NumTabs  int
	TabsFile string
	Active   string
	Mouse    bool
	Debug    bool
	// PrintLayout, if greater than zero, is the size of the strip along its
	// axis for which to print the layout instead of starting the TUI.
	PrintLayout int
	LogFile     string
	Version     bool

	loggingOptions logging.Options
}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func parse(stderr io.Writer, args []string) (config, error) {
	var cfg config

	home, err := os.UserHomeDir()
	if err != nil {
		return config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultConfigFile := filepath.Join(home, ".tabstrip.yaml")

	fs := ff.NewFlagSet("tabstrip")
	{
		usage := fmt.Sprintf("Side of the content on which to place the strip (valid: %s).", strings.Join(tabnav.PositionNames(), ","))
		fs.StringVar(&cfg.Position, 'p', "position", tabnav.Top.String(), usage)
	}
	fs.BoolVar(&cfg.RTL, 0, "rtl", "Lay tabs out from right to left.")
	fs.BoolVar(&cfg.Centered, 0, "centered", "Center the tabs within the strip.")
	fs.BoolVar(&cfg.Editable, 'e', "editable", "Allow tabs to be added and removed.")
	fs.BoolVar(&cfg.HideAdd, 0, "hide-add", "Hide the add button on an editable strip.")
	fs.IntVar(&cfg.NumTabs, 'n', "tabs", defaultNumTabs, "Number of demo tabs to generate.")
	fs.StringVar(&cfg.TabsFile, 'f', "tabs-file", "", "Load tabs from a YAML or TOML file.")
	fs.StringVar(&cfg.Active, 0, "active", "", "Key of the tab that is initially active.")
	fs.BoolVar(&cfg.Mouse, 0, "mouse", "Enable mouse support.")
	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log")
	fs.IntVar(&cfg.PrintLayout, 0, "print-layout", 0, "Print the layout for a strip of the given size and exit.")
	fs.StringVar(&cfg.LogFile, 0, "log-file", "", "Append logs to the given file.")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.loggingOptions.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("TABSTRIP"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return config{}, err
	}
	if cfg.NumTabs < 0 {
		return config{}, fmt.Errorf("number of tabs cannot be negative: %d", cfg.NumTabs)
	}
	return cfg, nil
}
