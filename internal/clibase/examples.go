// internal/clibase/examples.go
package clibase

import "strings"

// Examples formats quickstart lines for cobra's Example field. Each
// line is one shell command, prefixed with name.
func Examples(name string, lines ...string) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("  ")
		b.WriteString(name)
		if l != "" {
			b.WriteByte(' ')
			b.WriteString(l)
		}
	}
	return b.String()
}
