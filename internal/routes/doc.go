// Package routes implements the pure path and URL helpers the documentation
// pipeline builds on: segment joining with scheme preservation, pathname
// validation, relative-reference resolution, per-component percent encoding,
// and the mapping from source file paths to site routes. Every function is
// stateless and safe for concurrent use.
package routes
