package utils

import (
	"strings"
)

// CamelToSnake converts an engine-style CamelCase key to snake_case.
func CamelToSnake(s string) string {
	var b strings.Builder
	for _, c := range s {
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('_')
			b.WriteRune(c - 'A' + 'a')
		} else {
			b.WriteRune(c)
		}
	}
	return strings.TrimPrefix(b.String(), "_")
}

// StripPrefix removes everything up to and including the first occurrence of
// prefix. Unlike strings.TrimPrefix the prefix may appear mid-string.
func StripPrefix(s, prefix string) string {
	if idx := strings.Index(s, prefix); idx != -1 {
		return s[idx+len(prefix):]
	}
	return s
}
