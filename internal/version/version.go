// Package version reports the build version printed by --version.
package version

import (
	"runtime/debug"
	"strings"
)

// Version is set via -ldflags "-X depthbin/internal/version.Version=...".
var Version = ""

// Current returns Version, the module version from build info, or "dev".
func Current() string {
	if v := strings.TrimSpace(Version); v != "" {
		return strings.TrimPrefix(v, "v")
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return strings.TrimPrefix(v, "v")
		}
	}
	return "dev"
}
