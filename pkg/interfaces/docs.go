package interfaces

import (
	"context"
	"time"
)

// MarkdownRenderer defines how raw Markdown bytes are converted into HTML.
// Implementations must be reusable across documents without shared state.
type MarkdownRenderer interface {
	// Render converts Markdown into HTML using the renderer's default settings.
	Render(markdown []byte) ([]byte, error)
	// RenderWithOptions converts Markdown into HTML using the supplied overrides.
	RenderWithOptions(markdown []byte, opts RenderOptions) ([]byte, error)
}

// RenderOptions customises Markdown rendering behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type RenderOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// DocsService exposes the documentation workflows: loading source files,
// deriving their routes and edit URLs, and rendering HTML bodies.
type DocsService interface {
	Load(ctx context.Context, path string) (*Document, error)
	LoadDirectory(ctx context.Context, dir string) ([]*Document, error)
	Pages(ctx context.Context, dir string) ([]*Page, error)
}

// Document represents a source Markdown file with parsed metadata and
// content. The struct is shared between the interfaces package and internal
// implementations so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	Locale       string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	// Checksum stores a digest of the original file content (typically
	// SHA-256) so build workflows can detect changes without re-rendering
	// unchanged files.
	Checksum []byte
}

// FrontMatter models metadata extracted from documentation files. The Custom
// map keeps template- or domain-specific values without schema changes.
type FrontMatter struct {
	Title       string         `yaml:"title" json:"title"`
	Slug        string         `yaml:"slug" json:"slug"`
	Summary     string         `yaml:"summary" json:"summary"`
	Tags        []string       `yaml:"tags" json:"tags"`
	Author      string         `yaml:"author" json:"author"`
	Date        time.Time      `yaml:"date" json:"date"`
	Draft       bool           `yaml:"draft" json:"draft"`
	EditURL     string         `yaml:"edit_url" json:"edit_url"`
	Custom      map[string]any `yaml:",inline" json:"custom"`
	Raw         map[string]any `yaml:"-" json:"raw"`
}

// Page is a routed documentation page derived from a Document: the canonical
// site route, the edit URL (empty when no edit base is configured), and the
// rendered HTML body.
type Page struct {
	Route        string
	EditURL      string
	Title        string
	Summary      string
	Locale       string
	SourcePath   string
	HTML         []byte
	LastModified time.Time
}
