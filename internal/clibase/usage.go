// internal/clibase/usage.go
package clibase

import (
	"fmt"
	"strings"

	"depthbin/internal/version"
)

// Long builds the cobra Long help: a tool header followed by about.
func Long(name, about string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s – samtools depth windowing\n\n", name)
	fmt.Fprintf(&b, "Version: %s\n\n", version.Current())
	b.WriteString(strings.TrimSpace(about))
	b.WriteString("\n\nInput is the output of `samtools depth`: one tab-separated\n")
	b.WriteString("<sequence> <position> <depth> record per line. Lines with fewer\n")
	b.WriteString("than three fields are skipped; a depth that is not a valid\n")
	b.WriteString("unsigned integer aborts the run.")
	return b.String()
}
