package util

import "strings"

// SanitizeFileName reduces a user-supplied name to a filesystem and
// Content-Disposition safe token. Spaces become underscores, any other rune
// outside [A-Za-z0-9_-] is dropped, and an empty result falls back to the
// provided default.
func SanitizeFileName(name string, fallback string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return fallback
	}
	return b.String()
}
