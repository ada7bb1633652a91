// Package docs discovers documentation source files, extracts their
// frontmatter, renders Markdown bodies, and derives the canonical site route
// and edit URL for every document.
package docs
