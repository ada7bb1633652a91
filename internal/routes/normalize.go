package routes

import (
	"fmt"
	"strings"
)

// InvalidInputError reports a URL segment that was not a string. The message
// format is part of the public contract and matched verbatim by callers that
// surface it to authors.
type InvalidInputError struct {
	Value string
}

func (e *InvalidInputError) Error() string {
	return "Url must be a string. Received " + e.Value
}

// NormalizeURL joins the supplied URL segments into a single normalized URL or
// path. Runs of slashes collapse to one, a scheme on the first segment is
// preserved with its separator normalized, and a query string survives the
// join untouched.
func NormalizeURL(segments ...string) string {
	if len(segments) == 0 {
		return ""
	}

	urls := append([]string(nil), segments...)

	// A first segment that is nothing but a scheme ("http://", "file:") is
	// merged into the following segment so the separator can be normalized in
	// one place.
	if len(urls) > 1 && isBareScheme(urls[0]) {
		first := urls[0]
		urls = urls[1:]
		if strings.HasPrefix(first, "file:") && strings.HasPrefix(urls[0], "/") {
			// The explicit slash after a bare file: scheme selects the
			// triple-slash authority-less form.
			urls[0] = first + "//" + urls[0]
		} else {
			urls[0] = first + urls[0]
		}
	}

	scheme, rest := splitScheme(urls[0])
	urls[0] = rest

	parts := make([]string, 0, len(urls))
	for _, segment := range urls {
		if segment != "" {
			parts = append(parts, segment)
		}
	}
	if len(parts) == 0 {
		return scheme
	}

	body, query := splitQuery(strings.Join(parts, "/"))

	// The join inserts a separator before a query segment; drop it so the
	// query attaches directly to the last path component.
	if query != "" && strings.HasSuffix(body, "/") {
		body = body[:len(body)-1]
	}

	return scheme + assemblePath(body) + query
}

// NormalizeURLValues behaves like NormalizeURL for segments sourced from
// untyped metadata such as frontmatter maps or config values. Elements that
// are not strings yield an *InvalidInputError; a nil element renders as
// "undefined" in the error message.
func NormalizeURLValues(values []any) (string, error) {
	segments := make([]string, 0, len(values))
	for _, value := range values {
		str, ok := value.(string)
		if !ok {
			return "", &InvalidInputError{Value: renderValue(value)}
		}
		segments = append(segments, str)
	}
	return NormalizeURL(segments...), nil
}

func renderValue(value any) string {
	if value == nil {
		return "undefined"
	}
	return fmt.Sprintf("%v", value)
}

// isBareScheme reports whether segment consists solely of a scheme name, a
// colon, and an optional run of slashes ("http://", "file:").
func isBareScheme(segment string) bool {
	colon := strings.IndexByte(segment, ':')
	if colon <= 0 {
		return false
	}
	if strings.ContainsRune(segment[:colon], '/') {
		return false
	}
	return strings.Trim(segment[colon+1:], "/") == ""
}

// splitScheme removes a "scheme:" prefix plus any run of slashes after the
// colon from raw. The returned scheme carries the normalized separator: always
// "://", except file: inputs that already supplied three or more slashes,
// which keep the triple-slash form.
func splitScheme(raw string) (scheme, rest string) {
	colon := -1
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '/':
			return "", raw
		case ':':
			colon = i
		}
		if colon >= 0 {
			break
		}
	}
	if colon <= 0 {
		return "", raw
	}

	name := raw[:colon]
	rest = raw[colon+1:]
	slashes := 0
	for slashes < len(rest) && rest[slashes] == '/' {
		slashes++
	}
	rest = rest[slashes:]

	if name == "file" && slashes >= 3 {
		return name + ":///", rest
	}
	return name + "://", rest
}

// splitQuery splits the joined body at the first query marker. The query part
// is kept verbatim apart from delimiter fixups: a slash directly before a
// secondary "?", "&", or "#" is dropped and secondary "?" markers become "&".
func splitQuery(joined string) (body, query string) {
	idx := strings.IndexByte(joined, '?')
	if idx < 0 {
		return joined, ""
	}
	return joined[:idx], "?" + normalizeQuery(joined[idx+1:])
}

func normalizeQuery(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '/' && i+1 < len(raw) {
			next := raw[i+1]
			if next == '?' || next == '&' {
				continue
			}
			if next == '#' && (i+2 >= len(raw) || raw[i+2] != '!') {
				continue
			}
		}
		if c == '?' {
			b.WriteByte('&')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// assemblePath rebuilds the path portion from its tokens: a leading slash
// indicator, the non-empty components, and a trailing slash indicator. Empty
// components produced by collapsed slash runs are discarded.
func assemblePath(body string) string {
	if body == "" {
		return ""
	}

	leading := body[0] == '/'
	trailing := body[len(body)-1] == '/'

	components := make([]string, 0, 8)
	for _, part := range strings.Split(body, "/") {
		if part != "" {
			components = append(components, part)
		}
	}

	if len(components) == 0 {
		// Nothing but slashes: the root path was requested.
		return "/"
	}

	var b strings.Builder
	b.Grow(len(body))
	if leading {
		b.WriteByte('/')
	}
	b.WriteString(strings.Join(components, "/"))
	if trailing {
		b.WriteByte('/')
	}
	return stripSlashBeforeHash(b.String())
}

// stripSlashBeforeHash removes the separator in "/#" sequences so fragment
// anchors attach directly to the path. Hashbang fragments ("#!") keep their
// slash.
func stripSlashBeforeHash(path string) string {
	if !strings.Contains(path, "/#") {
		return path
	}
	var b strings.Builder
	b.Grow(len(path))
	for i := 0; i < len(path); i++ {
		if path[i] == '/' && i+1 < len(path) && path[i+1] == '#' && (i+2 >= len(path) || path[i+2] != '!') {
			continue
		}
		b.WriteByte(path[i])
	}
	return b.String()
}
