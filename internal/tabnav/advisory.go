//go:build !production

package tabnav

import "fmt"

// advise emits a developer-facing warning when cond is false. Advisories
// never alter layout; they are compiled out of production builds.
func (n *Nav) advise(cond bool, format string, args ...any) {
	if cond {
		return
	}
	n.logger.Warn(fmt.Sprintf("tabnav: "+format, args...))
}
