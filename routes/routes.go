// Package routes exposes the documentation path and URL helpers to host
// applications.
package routes

import "github.com/goliatone/go-docsite/internal/routes"

// InvalidInputError reports a URL segment that was not a string.
type InvalidInputError = routes.InvalidInputError

// NormalizeURL joins URL segments into a single normalized URL or path.
func NormalizeURL(segments ...string) string {
	return routes.NormalizeURL(segments...)
}

// NormalizeURLValues normalizes segments sourced from untyped metadata and
// rejects non-string elements with an *InvalidInputError.
func NormalizeURLValues(values []any) (string, error) {
	return routes.NormalizeURLValues(values)
}

// IsValidPathname reports whether value can serve as a site pathname.
func IsValidPathname(value string) bool {
	return routes.IsValidPathname(value)
}

// AddLeadingSlash returns path with a leading slash.
func AddLeadingSlash(path string) string {
	return routes.AddLeadingSlash(path)
}

// AddTrailingSlash returns path with a trailing slash.
func AddTrailingSlash(path string) string {
	return routes.AddTrailingSlash(path)
}

// RemoveTrailingSlash strips trailing slashes from path.
func RemoveTrailingSlash(path string) string {
	return routes.RemoveTrailingSlash(path)
}

// ResolvePathname resolves to against from using URL relative-reference
// semantics restricted to path components.
func ResolvePathname(to, from string) string {
	return routes.ResolvePathname(to, from)
}

// EncodePath percent-encodes each path component, never the separators.
func EncodePath(path string) string {
	return routes.EncodePath(path)
}

// FileToPath maps a source file's relative path to its site route.
func FileToPath(file string) string {
	return routes.FileToPath(file)
}

// EditURL joins a source file path onto the base edit URL for the site.
func EditURL(filePath, baseURL string) (string, bool) {
	return routes.EditURL(filePath, baseURL)
}
