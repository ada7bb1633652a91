package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-docsite/internal/routes"
)

// ErrContentDirRequired indicates a missing docs source directory.
var ErrContentDirRequired = errors.New("docsite config: docs content directory is required")

// ErrBasePathInvalid rejects site base paths that are not valid pathnames.
var ErrBasePathInvalid = errors.New("docsite config: site base path must be a valid pathname")

var ErrBaseURLRequired = errors.New("docsite config: site base URL is required when sitemap generation is enabled")
var ErrOutputDirRequired = errors.New("docsite config: generator output directory is required when the generator is enabled")
var ErrLoggingProviderRequired = errors.New("docsite config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("docsite config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("docsite config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("docsite config: logging format is invalid")

// Config aggregates the site, discovery, generation, and logging options for
// the docsite module. Fields intentionally use simple types so host
// applications can extend them later.
type Config struct {
	Site      SiteConfig
	Docs      DocsConfig
	Generator GeneratorConfig
	Links     LinksConfig
	Logging   LoggingConfig
}

// SiteConfig captures site-wide URL settings.
type SiteConfig struct {
	Title string
	// BaseURL is the absolute URL the site is served from, without the base
	// path ("https://docs.example.com").
	BaseURL string
	// BasePath is the pathname prefix every route is mounted under ("/docs/").
	BasePath string
	// EditBaseURL, when set, enables per-page edit links
	// ("https://github.com/org/repo/edit/main/docs").
	EditBaseURL   string
	DefaultLocale string
	Locales       []string
}

// DocsConfig controls how source documents are discovered.
type DocsConfig struct {
	ContentDir     string
	Pattern        string
	Recursive      bool
	LocalePatterns map[string]string
	IncludeDrafts  bool
}

// GeneratorConfig controls static output.
type GeneratorConfig struct {
	Enabled         bool
	OutputDir       string
	CleanBuild      bool
	GenerateSitemap bool
	GenerateRobots  bool
}

// LinksConfig wires go-urlkit route groups for named cross-site links.
type LinksConfig struct {
	RouteConfig  *urlkit.Config
	DefaultGroup string
	LocaleGroups map[string]string
}

// LoggingConfig selects the logging provider and its options.
type LoggingConfig struct {
	Provider string
	Level    string
	Format   string
}

// DefaultConfig returns the configuration used when hosts supply nothing.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			BasePath:      "/",
			DefaultLocale: "en",
			Locales:       []string{"en"},
		},
		Docs: DocsConfig{
			ContentDir:     "docs",
			Pattern:        "*.md",
			Recursive:      true,
			LocalePatterns: map[string]string{},
		},
		Generator: GeneratorConfig{
			Enabled:         true,
			OutputDir:       "build",
			CleanBuild:      true,
			GenerateSitemap: true,
			GenerateRobots:  false,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Docs.ContentDir) == "" {
		return ErrContentDirRequired
	}
	if basePath := strings.TrimSpace(cfg.Site.BasePath); basePath != "" && !routes.IsValidPathname(basePath) {
		return fmt.Errorf("%w: %s", ErrBasePathInvalid, basePath)
	}
	if cfg.Generator.Enabled {
		if strings.TrimSpace(cfg.Generator.OutputDir) == "" {
			return ErrOutputDirRequired
		}
		if cfg.Generator.GenerateSitemap && strings.TrimSpace(cfg.Site.BaseURL) == "" {
			return ErrBaseURLRequired
		}
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.Logging.Provider))
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "noop", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
