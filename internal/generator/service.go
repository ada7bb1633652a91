package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-docsite/internal/logging"
	"github.com/goliatone/go-docsite/pkg/interfaces"
)

var (
	// ErrServiceDisabled indicates the generator feature is disabled.
	ErrServiceDisabled = errors.New("generator: service disabled")
	errDocsRequired    = errors.New("generator: docs service is required")
	errStorageRequired = errors.New("generator: storage is required")
)

// Service describes the static site generator contract.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
	Clean(ctx context.Context) error
}

// Config captures runtime behaviour toggles for the generator.
type Config struct {
	BaseURL         string
	SiteTitle       string
	CleanBuild      bool
	GenerateSitemap bool
	GenerateRobots  bool
	Workers         int
	DefaultLocale   string
	Locales         []string
	Layout          string
}

// BuildOptions narrows the scope of a generator run.
type BuildOptions struct {
	ContentDir string
	Locales    []string
	DryRun     bool
}

// BuildResult reports aggregated build metadata.
type BuildResult struct {
	BuildID      uuid.UUID
	PagesBuilt   int
	PagesSkipped int
	Outputs      []OutputFile
	Locales      []string
	Duration     time.Duration
	DryRun       bool
	Errors       []error
}

// OutputFile records a single artifact produced by a build.
type OutputFile struct {
	Route        string
	Locale       string
	Source       string
	Path         string
	Checksum     string
	Size         int64
	LastModified time.Time
}

// Dependencies lists the services required by the generator.
type Dependencies struct {
	Docs    interfaces.DocsService
	Storage Storage
	Layout  LayoutRenderer
	Logger  interfaces.Logger
}

type service struct {
	cfg    Config
	deps   Dependencies
	logger interfaces.Logger
	now    func() time.Time
}

type disabledService struct{}

func (disabledService) Build(context.Context, BuildOptions) (*BuildResult, error) {
	return nil, ErrServiceDisabled
}

func (disabledService) Clean(context.Context) error { return ErrServiceDisabled }

// NewService wires a generator with the provided configuration and
// dependencies. A nil layout falls back to the built-in HTML shell.
func NewService(cfg Config, deps Dependencies) (Service, error) {
	if deps.Docs == nil {
		return nil, errDocsRequired
	}
	if deps.Storage == nil {
		return nil, errStorageRequired
	}
	if deps.Layout == nil {
		layout, err := NewHTMLLayout(cfg.Layout)
		if err != nil {
			return nil, err
		}
		deps.Layout = layout
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &service{
		cfg:    cfg,
		deps:   deps,
		logger: logger,
		now:    time.Now,
	}, nil
}

// NewDisabledService returns a Service that fails all operations with
// ErrServiceDisabled.
func NewDisabledService() Service {
	return disabledService{}
}

type renderOutcome struct {
	output  OutputFile
	content []byte
	skipped bool
	err     error
}

func (s *service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := s.now()
	contentDir := strings.TrimSpace(opts.ContentDir)
	if contentDir == "" {
		contentDir = "."
	}

	pages, err := s.deps.Docs.Pages(ctx, contentDir)
	if err != nil {
		return nil, fmt.Errorf("generator: load pages: %w", err)
	}
	pages = filterLocales(pages, opts.Locales)

	result := &BuildResult{
		BuildID: uuid.New(),
		DryRun:  opts.DryRun,
		Locales: collectLocales(pages, s.cfg.DefaultLocale),
	}

	manifest := s.loadManifest(ctx)
	if opts.DryRun || s.cfg.CleanBuild {
		// No previous state to compare against.
		if s.cfg.CleanBuild && !opts.DryRun {
			if err := s.deps.Storage.RemoveAll(ctx); err != nil {
				return nil, err
			}
		}
		manifest = newBuildManifest()
	}

	var (
		mu          sync.Mutex
		outputs     = make([]OutputFile, 0, len(pages))
		contents    = map[string][]byte{}
		errorsSlice []error
	)

	collect := func(outcome renderOutcome) {
		mu.Lock()
		defer mu.Unlock()
		if outcome.err != nil {
			errorsSlice = append(errorsSlice, outcome.err)
			return
		}
		if outcome.skipped {
			result.PagesSkipped++
			return
		}
		result.PagesBuilt++
		outputs = append(outputs, outcome.output)
		contents[outcome.output.Path] = outcome.content
	}

	workers := s.effectiveWorkerCount(len(pages))
	if workers <= 1 || len(pages) <= 1 {
		for _, page := range pages {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			default:
				collect(s.renderPage(page, manifest))
			}
		}
	} else {
		s.renderConcurrently(ctx, pages, manifest, workers, collect)
	}

	sort.Slice(outputs, func(i, j int) bool { return outputs[i].Path < outputs[j].Path })
	result.Outputs = outputs

	if opts.DryRun {
		result.Duration = time.Since(start)
		if len(errorsSlice) > 0 {
			result.Errors = append(result.Errors, errorsSlice...)
			return result, errors.Join(errorsSlice...)
		}
		return result, nil
	}

	for _, output := range outputs {
		if err := s.deps.Storage.WriteFile(ctx, output.Path, contents[output.Path]); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	if s.cfg.GenerateSitemap {
		sitemap := buildSitemap(s.cfg.BaseURL, pages, start.UTC())
		if err := s.deps.Storage.WriteFile(ctx, "sitemap.xml", []byte(sitemap)); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	if s.cfg.GenerateRobots {
		robots := buildRobots(s.cfg.BaseURL, s.cfg.GenerateSitemap)
		if err := s.deps.Storage.WriteFile(ctx, "robots.txt", []byte(robots)); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	if len(errorsSlice) == 0 {
		manifest.BuildID = result.BuildID
		manifest.GeneratedAt = start.UTC()
		for _, output := range outputs {
			manifest.setPage(manifestPage{
				Route:        output.Route,
				Locale:       output.Locale,
				Source:       output.Source,
				Output:       output.Path,
				Checksum:     output.Checksum,
				Size:         output.Size,
				LastModified: output.LastModified,
			})
		}
		if err := s.persistManifest(ctx, manifest); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	result.Duration = time.Since(start)
	logging.WithFields(s.logger, map[string]any{
		"build_id": result.BuildID.String(),
		"built":    result.PagesBuilt,
		"skipped":  result.PagesSkipped,
	}).Info("generator.build.done")

	if len(errorsSlice) > 0 {
		result.Errors = append(result.Errors, errorsSlice...)
		return result, errors.Join(errorsSlice...)
	}
	return result, nil
}

func (s *service) Clean(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return s.deps.Storage.RemoveAll(ctx)
}

func (s *service) renderPage(page *interfaces.Page, manifest *buildManifest) renderOutcome {
	document, err := s.deps.Layout.RenderLayout(page, SiteMetadata{
		Title:         s.cfg.SiteTitle,
		BaseURL:       s.cfg.BaseURL,
		DefaultLocale: s.cfg.DefaultLocale,
		Locales:       s.cfg.Locales,
	})
	if err != nil {
		return renderOutcome{err: err}
	}

	output := buildOutputPath(page.Route, page.Locale, s.cfg.DefaultLocale)
	sum := sha256.Sum256(document)
	checksum := hex.EncodeToString(sum[:])

	if manifest.shouldSkipPage(page.Route, page.Locale, checksum, output) {
		return renderOutcome{skipped: true}
	}

	return renderOutcome{
		output: OutputFile{
			Route:        page.Route,
			Locale:       page.Locale,
			Source:       page.SourcePath,
			Path:         output,
			Checksum:     checksum,
			Size:         int64(len(document)),
			LastModified: page.LastModified,
		},
		content: document,
	}
}

func (s *service) renderConcurrently(
	ctx context.Context,
	pages []*interfaces.Page,
	manifest *buildManifest,
	workers int,
	collect func(renderOutcome),
) {
	jobs := make(chan *interfaces.Page)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for page := range jobs {
				select {
				case <-ctx.Done():
					collect(renderOutcome{err: ctx.Err()})
					return
				default:
					collect(s.renderPage(page, manifest))
				}
			}
		}()
	}

dispatch:
	for _, page := range pages {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- page:
		}
	}
	close(jobs)
	wg.Wait()
}

func (s *service) effectiveWorkerCount(jobs int) int {
	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > jobs {
		workers = jobs
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

func (s *service) loadManifest(ctx context.Context) *buildManifest {
	data, err := s.deps.Storage.ReadFile(ctx, manifestFileName)
	if err != nil {
		return newBuildManifest()
	}
	manifest, err := parseManifest(data)
	if err != nil {
		s.logger.Warn("generator.manifest.invalid", "error", err)
		return newBuildManifest()
	}
	return manifest
}

func (s *service) persistManifest(ctx context.Context, manifest *buildManifest) error {
	data, err := manifest.marshal()
	if err != nil {
		return fmt.Errorf("generator: marshal manifest: %w", err)
	}
	return s.deps.Storage.WriteFile(ctx, manifestFileName, data)
}

func filterLocales(pages []*interfaces.Page, locales []string) []*interfaces.Page {
	if len(locales) == 0 {
		return pages
	}
	allowed := map[string]struct{}{}
	for _, locale := range locales {
		allowed[strings.ToLower(strings.TrimSpace(locale))] = struct{}{}
	}
	filtered := make([]*interfaces.Page, 0, len(pages))
	for _, page := range pages {
		if _, ok := allowed[strings.ToLower(page.Locale)]; ok {
			filtered = append(filtered, page)
		}
	}
	return filtered
}

func collectLocales(pages []*interfaces.Page, defaultLocale string) []string {
	seen := map[string]struct{}{}
	var locales []string
	add := func(locale string) {
		locale = strings.TrimSpace(locale)
		if locale == "" {
			return
		}
		key := strings.ToLower(locale)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		locales = append(locales, locale)
	}
	add(defaultLocale)
	for _, page := range pages {
		add(page.Locale)
	}
	sort.Strings(locales)
	return locales
}
