package routes

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// IsValidPathname reports whether value can serve as a site pathname: it must
// start with a single "/", carry no query or fragment marker, and decode as a
// percent-encoded UTF-8 string. Scheme-prefixed absolute URLs and
// protocol-relative values ("//host") are rejected.
func IsValidPathname(value string) bool {
	if !strings.HasPrefix(value, "/") {
		return false
	}
	if strings.HasPrefix(value, "//") {
		return false
	}
	if strings.ContainsAny(value, "?#") {
		return false
	}
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return false
	}
	// PathUnescape tolerates truncated multi-byte escapes such as "/%C3";
	// the decoded bytes must still form valid UTF-8.
	return utf8.ValidString(decoded)
}

// AddLeadingSlash returns path with a leading slash, leaving already-absolute
// values untouched.
func AddLeadingSlash(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}

// AddTrailingSlash returns path with a trailing slash, leaving values that
// already end in one untouched.
func AddTrailingSlash(path string) string {
	if strings.HasSuffix(path, "/") {
		return path
	}
	return path + "/"
}

// RemoveTrailingSlash strips every trailing slash from path so repeated
// application is a no-op.
func RemoveTrailingSlash(path string) string {
	return strings.TrimRight(path, "/")
}
