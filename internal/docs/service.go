package docs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	slug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-docsite/internal/logging"
	"github.com/goliatone/go-docsite/internal/routes"
	"github.com/goliatone/go-docsite/pkg/interfaces"
)

// ErrFilesystemRequired is returned when a service is built without a source
// filesystem.
var ErrFilesystemRequired = errors.New("docs service: filesystem is required")

// ServiceConfig wires the docs service dependencies.
type ServiceConfig struct {
	// FS is the filesystem documentation sources are read from.
	FS fs.FS
	// Loader configures file discovery and locale detection.
	Loader LoaderConfig
	// Renderer converts Markdown bodies to HTML. Defaults to goldmark.
	Renderer interfaces.MarkdownRenderer
	// BasePath mounts every derived route under a site prefix ("/docs/").
	BasePath string
	// EditBaseURL enables per-page edit links when set.
	EditBaseURL string
	// IncludeDrafts keeps documents whose frontmatter marks them as drafts.
	IncludeDrafts bool
	Logger        interfaces.Logger
}

// Service loads documentation sources and derives routed pages from them.
type Service struct {
	loader   *Loader
	renderer interfaces.MarkdownRenderer
	basePath string
	editBase string
	drafts   bool
	logger   interfaces.Logger
}

var _ interfaces.DocsService = (*Service)(nil)

// NewService builds a Service from the supplied configuration.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.FS == nil {
		return nil, ErrFilesystemRequired
	}

	renderer := cfg.Renderer
	if renderer == nil {
		renderer = NewGoldmarkRenderer(interfaces.RenderOptions{})
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Service{
		loader:   NewLoader(cfg.FS, cfg.Loader),
		renderer: renderer,
		basePath: strings.TrimSpace(cfg.BasePath),
		editBase: strings.TrimSpace(cfg.EditBaseURL),
		drafts:   cfg.IncludeDrafts,
		logger:   logger,
	}, nil
}

// Load reads and parses a single source file.
func (s *Service) Load(ctx context.Context, path string) (*interfaces.Document, error) {
	return s.loader.LoadFile(ctx, path)
}

// LoadDirectory discovers and parses every source file under dir.
func (s *Service) LoadDirectory(ctx context.Context, dir string) ([]*interfaces.Document, error) {
	return s.loader.LoadDirectory(ctx, dir)
}

// Pages loads every document under dir and derives its routed page: the
// canonical route, the edit URL, and the rendered HTML body. Draft documents
// are skipped unless the service was configured to include them.
func (s *Service) Pages(ctx context.Context, dir string) ([]*interfaces.Page, error) {
	documents, err := s.loader.LoadDirectory(ctx, dir)
	if err != nil {
		return nil, err
	}

	pages := make([]*interfaces.Page, 0, len(documents))
	for _, doc := range documents {
		if doc.FrontMatter.Draft && !s.drafts {
			continue
		}
		page, err := s.buildPage(doc)
		if err != nil {
			return nil, err
		}
		logging.WithDocContext(s.logger, doc.FilePath, doc.Locale, page.Route).Debug("docs.page.built")
		pages = append(pages, page)
	}
	return pages, nil
}

func (s *Service) buildPage(doc *interfaces.Document) (*interfaces.Page, error) {
	route, err := s.routeFor(doc)
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.Render(doc.Body)
	if err != nil {
		return nil, fmt.Errorf("docs service: render %s: %w", doc.FilePath, err)
	}

	editURL := strings.TrimSpace(doc.FrontMatter.EditURL)
	if editURL == "" {
		if resolved, ok := routes.EditURL(doc.FilePath, s.editBase); ok {
			editURL = resolved
		}
	}

	title := strings.TrimSpace(doc.FrontMatter.Title)
	if title == "" {
		title = fallbackTitle(route)
	}

	return &interfaces.Page{
		Route:        route,
		EditURL:      editURL,
		Title:        title,
		Summary:      strings.TrimSpace(doc.FrontMatter.Summary),
		Locale:       doc.Locale,
		SourcePath:   doc.FilePath,
		HTML:         html,
		LastModified: doc.LastModified,
	}, nil
}

// routeFor derives the site route for a document. A frontmatter slug wins
// over the file-path derived route; both are mounted under the configured
// base path.
func (s *Service) routeFor(doc *interfaces.Document) (string, error) {
	route := routes.FileToPath(doc.FilePath)

	if raw := strings.TrimSpace(doc.FrontMatter.Slug); raw != "" {
		normalized, err := normalizeSlugPath(raw)
		if err != nil {
			return "", fmt.Errorf("docs service: slug for %s: %w", doc.FilePath, err)
		}
		route = routes.AddLeadingSlash(normalized)
	}

	if s.basePath != "" {
		route = routes.NormalizeURL(s.basePath, route)
	}
	return route, nil
}

// normalizeSlugPath normalizes each slash-separated part of a frontmatter
// slug, preserving a trailing slash so directory-style routes survive.
func normalizeSlugPath(raw string) (string, error) {
	trailing := strings.HasSuffix(raw, "/")

	parts := strings.Split(strings.Trim(raw, "/"), "/")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		if slug.IsValid(part) {
			out = append(out, part)
			continue
		}
		normalized, err := slug.Normalize(part)
		if err != nil {
			return "", err
		}
		out = append(out, normalized)
	}

	joined := strings.Join(out, "/")
	if trailing && joined != "" {
		joined += "/"
	}
	return joined, nil
}

func fallbackTitle(route string) string {
	base := routes.RemoveTrailingSlash(route)
	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}
	if base == "" {
		return "Home"
	}

	words := strings.FieldsFunc(base, func(r rune) bool { return r == '-' || r == '_' })
	for i, word := range words {
		runes := []rune(word)
		if len(runes) > 0 {
			runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		}
		words[i] = string(runes)
	}
	if len(words) == 0 {
		return base
	}
	return strings.Join(words, " ")
}
