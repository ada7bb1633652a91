// Package links resolves named cross-site links through go-urlkit route
// groups, falling back to plain URL joining when no route group matches.
package links

import (
	"context"
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-docsite/internal/routes"
)

// Request names a link to resolve. Name selects a route inside the resolved
// group; Fallback is a path joined onto the base URL when no route matches.
type Request struct {
	Name     string
	Group    string
	Locale   string
	Params   map[string]any
	Query    map[string][]string
	Fallback string
}

// ResolverOptions configures the go-urlkit backed resolver.
type ResolverOptions struct {
	Manager      *urlkit.RouteManager
	BaseURL      string
	DefaultGroup string
	LocaleGroups map[string]string
	LocaleParam  string
}

// Resolver builds URLs for named routes. Group lookups are cached since
// urlkit resolves dotted group paths by walking the group tree.
type Resolver struct {
	manager      *urlkit.RouteManager
	baseURL      string
	defaultGroup string
	localeGroups map[string]string
	localeParam  string

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

// NewResolver constructs a resolver backed by go-urlkit.
func NewResolver(opts ResolverOptions) *Resolver {
	return &Resolver{
		manager:      opts.Manager,
		baseURL:      strings.TrimSpace(opts.BaseURL),
		defaultGroup: strings.TrimSpace(opts.DefaultGroup),
		localeGroups: opts.LocaleGroups,
		localeParam:  strings.TrimSpace(opts.LocaleParam),
		groupCache:   make(map[string]*urlkit.Group),
	}
}

// Resolve builds a URL for the request. Resolution order: the locale group
// mapped for the request locale, then the request group, then the default
// group. When no group or route name applies the fallback path is joined
// onto the base URL.
func (r *Resolver) Resolve(ctx context.Context, req Request) (string, error) {
	_ = ctx // reserved for future use
	if r == nil {
		return "", nil
	}

	groupPath := r.defaultGroup
	if path := strings.TrimSpace(req.Group); path != "" {
		groupPath = path
	}
	localeKey := strings.ToLower(strings.TrimSpace(req.Locale))
	if r.localeGroups != nil {
		if path, ok := r.localeGroups[localeKey]; ok && strings.TrimSpace(path) != "" {
			groupPath = strings.TrimSpace(path)
		}
	}

	routeName := strings.TrimSpace(req.Name)
	if r.manager == nil || groupPath == "" || routeName == "" {
		return r.fallback(req), nil
	}

	group, err := r.groupForPath(groupPath)
	if err != nil {
		return "", err
	}

	builder, err := r.safeBuilder(group, routeName)
	if err != nil {
		return "", err
	}

	if r.localeParam != "" && strings.TrimSpace(req.Locale) != "" {
		builder.WithParam(r.localeParam, strings.TrimSpace(req.Locale))
	}
	for key, val := range req.Params {
		builder.WithParam(key, val)
	}
	for key, values := range req.Query {
		for _, v := range values {
			builder.WithQuery(key, v)
		}
	}

	return builder.Build()
}

func (r *Resolver) fallback(req Request) string {
	path := strings.TrimSpace(req.Fallback)
	if path == "" {
		return ""
	}
	if r.baseURL == "" {
		return routes.NormalizeURL(path)
	}
	return routes.NormalizeURL(r.baseURL, path)
}

func (r *Resolver) groupForPath(path string) (*urlkit.Group, error) {
	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	root, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	current := root
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

// urlkit panics on unknown groups and routes; recover so callers get errors.
func (r *Resolver) safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("links: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("links: route %q not found: %v", route, rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("links: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("links: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	if parent == nil {
		return nil, fmt.Errorf("links: parent group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("links: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, err
}
