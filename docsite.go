// Package docsite turns a directory of Markdown sources into a routed,
// statically generated documentation site. The root package re-exports the
// service contracts and wires the internal services together behind Module.
package docsite

import (
	"context"
	"io/fs"
	"os"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	sitecmd "github.com/goliatone/go-docsite/internal/commands/site"
	"github.com/goliatone/go-docsite/internal/docs"
	"github.com/goliatone/go-docsite/internal/generator"
	"github.com/goliatone/go-docsite/internal/links"
	"github.com/goliatone/go-docsite/internal/logging"
	"github.com/goliatone/go-docsite/internal/logging/gologger"
	"github.com/goliatone/go-docsite/pkg/interfaces"
)

// DocsService exports the document loading contract.
type DocsService = interfaces.DocsService

// Document exports the parsed source document DTO.
type Document = interfaces.Document

// FrontMatter exports the parsed frontmatter DTO.
type FrontMatter = interfaces.FrontMatter

// Page exports the routed page DTO.
type Page = interfaces.Page

// MarkdownRenderer exports the markdown rendering contract.
type MarkdownRenderer = interfaces.MarkdownRenderer

// RenderOptions exports the markdown rendering options.
type RenderOptions = interfaces.RenderOptions

// Logger exports the logging contract accepted by every service.
type Logger = interfaces.Logger

// LoggerProvider exports the named-logger factory contract.
type LoggerProvider = interfaces.LoggerProvider

// GeneratorService exports the static site generator contract.
type GeneratorService = generator.Service

// GeneratorStorage exports the artifact sink contract.
type GeneratorStorage = generator.Storage

// BuildOptions exports the generator build options.
type BuildOptions = generator.BuildOptions

// BuildResult exports the generator build report.
type BuildResult = generator.BuildResult

// OutputFile exports a single build artifact record.
type OutputFile = generator.OutputFile

// LinkResolver exports the named link resolver.
type LinkResolver = links.Resolver

// LinkRequest exports the named link request.
type LinkRequest = links.Request

// BuildSiteCommand exports the site build command message.
type BuildSiteCommand = sitecmd.BuildSiteCommand

// CleanSiteCommand exports the site clean command message.
type CleanSiteCommand = sitecmd.CleanSiteCommand

// ResultEnvelope exports the build command result envelope.
type ResultEnvelope = sitecmd.ResultEnvelope

// Module is the top level docsite runtime facade.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider

	docs      *docs.Service
	generator generator.Service
	links     *links.Resolver

	buildHandler *sitecmd.BuildSiteHandler
	cleanHandler *sitecmd.CleanSiteHandler
}

type moduleOptions struct {
	fs       fs.FS
	storage  generator.Storage
	renderer interfaces.MarkdownRenderer
	provider interfaces.LoggerProvider
}

// Option overrides a Module dependency during construction.
type Option func(*moduleOptions)

// WithSourceFS overrides the filesystem documents are read from. Defaults to
// os.DirFS rooted at the configured content directory.
func WithSourceFS(fsys fs.FS) Option {
	return func(o *moduleOptions) { o.fs = fsys }
}

// WithStorage overrides the generator artifact sink. Defaults to a directory
// sink rooted at the configured output directory.
func WithStorage(storage generator.Storage) Option {
	return func(o *moduleOptions) { o.storage = storage }
}

// WithRenderer overrides the markdown renderer. Defaults to goldmark.
func WithRenderer(renderer interfaces.MarkdownRenderer) Option {
	return func(o *moduleOptions) { o.renderer = renderer }
}

// WithLoggerProvider overrides the logging provider selected by the
// configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) { o.provider = provider }
}

// New constructs a docsite module using the provided configuration and
// optional dependency overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := moduleOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	provider := options.provider
	if provider == nil {
		built, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	sourceFS := options.fs
	if sourceFS == nil {
		sourceFS = os.DirFS(cfg.Docs.ContentDir)
	}

	docsService, err := docs.NewService(docs.ServiceConfig{
		FS: sourceFS,
		Loader: docs.LoaderConfig{
			DefaultLocale:  cfg.Site.DefaultLocale,
			Locales:        cfg.Site.Locales,
			LocalePatterns: cfg.Docs.LocalePatterns,
			Pattern:        cfg.Docs.Pattern,
			Recursive:      cfg.Docs.Recursive,
		},
		Renderer:      options.renderer,
		BasePath:      cfg.Site.BasePath,
		EditBaseURL:   cfg.Site.EditBaseURL,
		IncludeDrafts: cfg.Docs.IncludeDrafts,
		Logger:        logging.DocsLogger(provider),
	})
	if err != nil {
		return nil, err
	}

	generatorService := generator.NewDisabledService()
	if cfg.Generator.Enabled {
		storage := options.storage
		if storage == nil {
			dirStorage, err := generator.NewDirStorage(cfg.Generator.OutputDir)
			if err != nil {
				return nil, err
			}
			storage = dirStorage
		}
		generatorService, err = generator.NewService(generator.Config{
			BaseURL:         cfg.Site.BaseURL,
			SiteTitle:       cfg.Site.Title,
			CleanBuild:      cfg.Generator.CleanBuild,
			GenerateSitemap: cfg.Generator.GenerateSitemap,
			GenerateRobots:  cfg.Generator.GenerateRobots,
			DefaultLocale:   cfg.Site.DefaultLocale,
			Locales:         cfg.Site.Locales,
		}, generator.Dependencies{
			Docs:    docsService,
			Storage: storage,
			Logger:  logging.GeneratorLogger(provider),
		})
		if err != nil {
			return nil, err
		}
	}

	linkOptions := links.ResolverOptions{
		BaseURL:      cfg.Site.BaseURL,
		DefaultGroup: cfg.Links.DefaultGroup,
		LocaleGroups: cfg.Links.LocaleGroups,
	}
	if cfg.Links.RouteConfig != nil {
		linkOptions.Manager = urlkit.NewRouteManager(cfg.Links.RouteConfig)
	}
	resolver := links.NewResolver(linkOptions)

	gates := sitecmd.FeatureGates{
		GeneratorEnabled: func() bool { return cfg.Generator.Enabled },
	}
	commandLogger := logging.CommandsLogger(provider)

	return &Module{
		cfg:          cfg,
		provider:     provider,
		docs:         docsService,
		generator:    generatorService,
		links:        resolver,
		buildHandler: sitecmd.NewBuildSiteHandler(generatorService, commandLogger, gates),
		cleanHandler: sitecmd.NewCleanSiteHandler(generatorService, commandLogger, gates),
	}, nil
}

// Docs exposes the document loading service.
func (m *Module) Docs() DocsService { return m.docs }

// Generator exposes the static site generator service.
func (m *Module) Generator() GeneratorService { return m.generator }

// Links exposes the named link resolver.
func (m *Module) Links() *LinkResolver { return m.links }

// Logger returns a module-scoped logger from the configured provider.
func (m *Module) Logger() Logger { return logging.ModuleLogger(m.provider, "") }

// Build runs a site build through the command pipeline and returns the
// generator report. The command's own result callback, when set, still fires.
func (m *Module) Build(ctx context.Context, cmd BuildSiteCommand) (*BuildResult, error) {
	var result *BuildResult
	userCallback := cmd.ResultCallback
	cmd.ResultCallback = func(env ResultEnvelope) {
		result = env.Result
		if userCallback != nil {
			userCallback(env)
		}
	}
	if err := m.buildHandler.Execute(ctx, cmd); err != nil {
		return result, err
	}
	return result, nil
}

// Clean removes previously generated artifacts through the command pipeline.
func (m *Module) Clean(ctx context.Context) error {
	return m.cleanHandler.Execute(ctx, CleanSiteCommand{})
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	// Validate accepts any casing and surrounding whitespace, so match here.
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:  cfg.Level,
			Format: cfg.Format,
		})
	default:
		return nil, nil
	}
}
