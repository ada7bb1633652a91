package generator

import (
	"path"
	"strings"
)

// buildOutputPath maps a site route to its on-disk location. Routes become
// directory-style outputs ("/guides/intro" -> "guides/intro/index.html") so a
// plain file server preserves the canonical URLs. Pages in a non-default
// locale land under a locale prefix unless the route already carries one.
func buildOutputPath(route, locale, defaultLocale string) string {
	route = strings.TrimSpace(route)
	if route == "" {
		route = "/"
	}
	clean := strings.Trim(route, " \t\r\n/")
	locale = strings.TrimSpace(locale)
	defaultLocale = strings.TrimSpace(defaultLocale)

	if locale == "" && defaultLocale != "" {
		locale = defaultLocale
	}

	if locale == "" || strings.EqualFold(locale, defaultLocale) {
		if clean == "" {
			return "index.html"
		}
		return path.Join(clean, "index.html")
	}

	segments := []string{}
	if clean != "" {
		segments = strings.Split(clean, "/")
		if len(segments) > 0 && strings.EqualFold(segments[0], locale) {
			segments = segments[1:]
		}
	}

	if len(segments) == 0 {
		return path.Join(locale, "index.html")
	}

	routePart := path.Join(segments...)
	if routePart == "" || routePart == "." {
		return path.Join(locale, "index.html")
	}
	return path.Join(locale, routePart, "index.html")
}

func joinOutputPath(parts ...string) string {
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Trim(strings.TrimSpace(part), "/")
		if part == "" {
			continue
		}
		cleaned = append(cleaned, part)
	}
	return path.Join(cleaned...)
}
