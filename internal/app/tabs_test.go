package app

import (
	"testing"

	"github.com/leg100/tabstrip/internal/tabnav"
	"github.com/leg100/tabstrip/internal/tui/top"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTabs(t *testing.T) {
	want := []top.Tab{
		{
			Tab:     tabnav.Tab{Key: "overview", Label: "Overview"},
			Content: "Everything at a glance.",
		},
		{Tab: tabnav.Tab{Key: "billing", Label: "Billing", Closable: true}},
		{Tab: tabnav.Tab{Key: "audit", Label: "Audit log", Disabled: true}},
		{Tab: tabnav.Tab{Key: "Members", Label: "Members"}},
	}

	for _, path := range []string{"./testdata/tabs.yaml", "./testdata/tabs.toml"} {
		t.Run(path, func(t *testing.T) {
			got, active, err := loadTabs(path)
			require.NoError(t, err)

			assert.Equal(t, want, got)
			assert.Equal(t, tabnav.Key("billing"), active)
		})
	}
}

func TestLoadTabs_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		want error
	}{
		{"duplicate key", "./testdata/duplicate.yaml", ErrDuplicateTab},
		{"unknown format", "./testdata/tabs.json", ErrUnknownTabsFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := loadTabs(tt.path)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, _, err := loadTabs("./testdata/missing.yaml")
		assert.Error(t, err)
	})
}

func TestDemoTabs(t *testing.T) {
	got := demoTabs(14)
	require.Len(t, got, 14)

	assert.Equal(t, tabnav.Key("tab-1"), got[0].Key)
	assert.Equal(t, "Overview", got[0].Label)
	assert.True(t, got[2].Closable)
	assert.True(t, got[6].Disabled)
	// labels are reused with a suffix once exhausted
	assert.Equal(t, "Overview 2", got[12].Label)
	assert.Equal(t, "Activity 2", got[13].Label)

	assert.Empty(t, demoTabs(0))
}
