package routes

import "strings"

const upperhex = "0123456789ABCDEF"

// EncodePath percent-encodes every component of path individually so the "/"
// separators themselves are never encoded.
func EncodePath(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		parts[i] = encodeComponent(part)
	}
	return strings.Join(parts, "/")
}

// encodeComponent applies standard URI-component percent encoding: unreserved
// characters stay literal, everything else is emitted as uppercase UTF-8
// percent escapes.
func encodeComponent(s string) string {
	escapes := 0
	for i := 0; i < len(s); i++ {
		if componentShouldEscape(s[i]) {
			escapes++
		}
	}
	if escapes == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*escapes)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if componentShouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xF])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func componentShouldEscape(c byte) bool {
	if 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' {
		return false
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}
	return true
}
