package app

import (
	"net/url"
	"strings"
	"unicode"
)

// firstPath extracts the first path from pasted text. Terminals paste
// dropped files as shell words: quoted or with escaped spaces, several
// separated by whitespace, sometimes as file:// URLs.
func firstPath(s string) string {
	var b strings.Builder
	var quote rune
	escaped := false

	for _, r := range strings.TrimSpace(s) {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				b.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
		case unicode.IsSpace(r):
			if b.Len() > 0 {
				return cleanPath(b.String())
			}
		default:
			b.WriteRune(r)
		}
	}
	return cleanPath(b.String())
}

func cleanPath(p string) string {
	if !strings.HasPrefix(p, "file://") {
		return p
	}
	p = strings.TrimPrefix(p, "file://")
	// file://host/path: only the local host is meaningful.
	p = strings.TrimPrefix(p, "localhost")
	if unescaped, err := url.PathUnescape(p); err == nil {
		return unescaped
	}
	return p
}
