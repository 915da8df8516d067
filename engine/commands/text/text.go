// Package text normalizes help text for CLI commands.
package text

import (
	"strings"
)

// Indentation prefixes every example line.
const Indentation = `  `

// LongDesc trims the surrounding whitespace of a raw-string long description.
func LongDesc(s string) string {
	return strings.TrimSpace(s)
}

// Examples trims an examples block and re-indents every line with Indentation, so examples can
// be written as indented raw strings in source.
func Examples(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = Indentation + strings.TrimSpace(line)
	}

	return strings.Join(lines, "\n")
}
