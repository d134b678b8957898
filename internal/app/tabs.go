package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/leg100/tabstrip/internal/tabnav"
	"github.com/leg100/tabstrip/internal/tui/top"
	"gopkg.in/yaml.v3"
)

var (
	ErrDuplicateTab      = errors.New("not allowed to create tabs with duplicate keys")
	ErrUnknownTabsFormat = errors.New("unknown tabs file format")
)

// tabsFile is the structure of a file listing tabs, e.g.
//
//	active: billing
//	tabs:
//	  - key: overview
//	    label: Overview
//	  - key: billing
//	    label: Billing
//	    closable: true
type tabsFile struct {
	Active string     `yaml:"active" toml:"active"`
	Tabs   []tabEntry `yaml:"tabs" toml:"tabs"`
}

type tabEntry struct {
	Key      string `yaml:"key" toml:"key"`
	Label    string `yaml:"label" toml:"label"`
	Disabled bool   `yaml:"disabled" toml:"disabled"`
	Closable bool   `yaml:"closable" toml:"closable"`
	Content  string `yaml:"content" toml:"content"`
}

// loadTabs reads tabs from a YAML or TOML file, the format determined by the
// file's extension. The key of the tab the file wants active is returned too,
// if any.
func loadTabs(path string) ([]top.Tab, tabnav.Key, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading tabs file: %w", err)
	}
	var file tabsFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownTabsFormat, ext)
	}
	if err != nil {
		return nil, "", fmt.Errorf("parsing tabs file %s: %w", path, err)
	}

	tabs := make([]top.Tab, len(file.Tabs))
	seen := make(map[string]bool, len(file.Tabs))
	for i, entry := range file.Tabs {
		// A tab without a key is keyed by its label.
		key := entry.Key
		if key == "" {
			key = entry.Label
		}
		if key != "" && seen[key] {
			return nil, "", fmt.Errorf("%w: %s", ErrDuplicateTab, key)
		}
		seen[key] = true
		label := entry.Label
		if label == "" {
			label = key
		}
		tabs[i] = top.Tab{
			Tab: tabnav.Tab{
				Key:      tabnav.Key(key),
				Label:    label,
				Disabled: entry.Disabled,
				Closable: entry.Closable,
			},
			Content: entry.Content,
		}
	}
	return tabs, tabnav.Key(file.Active), nil
}

var demoLabels = []string{
	"Overview",
	"Activity",
	"Settings",
	"Billing",
	"Members",
	"Integrations",
	"Audit log",
	"API keys",
	"Webhooks",
	"Usage",
	"Notifications",
	"Security",
}

// demoTabs generates n tabs of varying widths. Every third tab can be closed
// and every seventh is disabled.
func demoTabs(n int) []top.Tab {
	tabs := make([]top.Tab, n)
	for i := range tabs {
		label := demoLabels[i%len(demoLabels)]
		if round := i / len(demoLabels); round > 0 {
			label = fmt.Sprintf("%s %d", label, round+1)
		}
		tabs[i] = top.Tab{
			Tab: tabnav.Tab{
				Key:      tabnav.Key(fmt.Sprintf("tab-%d", i+1)),
				Label:    label,
				Closable: i%3 == 2,
				Disabled: i%7 == 6,
			},
		}
	}
	return tabs
}
