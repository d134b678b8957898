// Package testutils provides helpers shared by tests.
package testutils

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ClearEnv empties the environment for the duration of a test, so that
// variables set on the host don't leak into it.
func ClearEnv(t *testing.T) {
	t.Helper()

	saved := os.Environ()
	os.Clearenv()
	t.Cleanup(func() {
		os.Clearenv()
		for _, kv := range saved {
			k, v, _ := strings.Cut(kv, "=")
			os.Setenv(k, v)
		}
	})
}

// Chdir changes the working directory for the duration of a test.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))

	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}
