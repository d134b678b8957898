package version

import "runtime/debug"

// Version is set at build time via -ldflags.
var Version = "unknown"

// Without -ldflags, fall back to the module version embedded by
// `go install github.com/leg100/tabstrip@<version>`.
func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		Version = v
	}
}
