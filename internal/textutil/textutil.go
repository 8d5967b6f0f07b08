package textutil

import (
	"strings"
)

// QuoteCSSAttr returns value as a double-quoted CSS string, suitable for
// embedding in an attribute selector like option[value=...].
func QuoteCSSAttr(value string) string {
	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte('"')
	for _, r := range value {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// Truncate shortens s to at most n runes, appending an ellipsis when it cut
// anything off.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
