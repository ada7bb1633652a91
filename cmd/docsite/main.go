package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	docsite "github.com/goliatone/go-docsite"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("docsite: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("docsite", flag.ExitOnError)
	contentDir := fs.String("content-dir", "docs", "Path to the markdown content root")
	outputDir := fs.String("output-dir", "build", "Directory generated files are written to")
	baseURL := fs.String("base-url", "", "Absolute URL the site is served from")
	basePath := fs.String("base-path", "/", "Pathname prefix every route is mounted under")
	editBaseURL := fs.String("edit-base-url", "", "Base URL for per-page edit links")
	siteTitle := fs.String("title", "", "Site title appended to page titles")
	defaultLocale := fs.String("default-locale", "en", "Default locale for documents without one")
	locales := fs.String("locales", "", "Comma separated list of locales (defaults to the default locale)")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	drafts := fs.Bool("drafts", false, "Include documents marked as drafts")
	sitemap := fs.Bool("sitemap", false, "Generate sitemap.xml (requires base-url)")
	robots := fs.Bool("robots", false, "Generate robots.txt")
	clean := fs.Bool("clean", true, "Remove previous output before building")
	dryRun := fs.Bool("dry-run", false, "Report what would be built without writing files")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", "console", "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := docsite.DefaultConfig()
	cfg.Site.Title = *siteTitle
	cfg.Site.BaseURL = *baseURL
	cfg.Site.BasePath = *basePath
	cfg.Site.EditBaseURL = *editBaseURL
	cfg.Site.DefaultLocale = *defaultLocale
	cfg.Site.Locales = splitLocales(*locales, *defaultLocale)
	cfg.Docs.ContentDir = *contentDir
	cfg.Docs.Pattern = *pattern
	cfg.Docs.IncludeDrafts = *drafts
	cfg.Generator.OutputDir = *outputDir
	cfg.Generator.CleanBuild = *clean
	cfg.Generator.GenerateSitemap = *sitemap
	cfg.Generator.GenerateRobots = *robots
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat

	module, err := docsite.New(cfg)
	if err != nil {
		return fmt.Errorf("configure module: %w", err)
	}

	result, err := module.Build(context.Background(), docsite.BuildSiteCommand{
		DryRun: *dryRun,
	})
	if err != nil {
		return fmt.Errorf("build site: %w", err)
	}

	if result != nil {
		fmt.Fprintf(os.Stdout, "built %d pages (%d skipped) in %s\n",
			result.PagesBuilt, result.PagesSkipped, result.Duration.Round(0))
	}
	return nil
}

func splitLocales(raw, fallback string) []string {
	var locales []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			locales = append(locales, trimmed)
		}
	}
	if len(locales) == 0 && strings.TrimSpace(fallback) != "" {
		locales = []string{strings.TrimSpace(fallback)}
	}
	return locales
}
