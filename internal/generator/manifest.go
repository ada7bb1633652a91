package generator

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	manifestFileName    = ".docsite-manifest.json"
	manifestFileVersion = 1
)

// buildManifest records what the last successful build produced so repeated
// runs can report skipped pages and stale output can be diagnosed. Pages are
// keyed by route and locale in memory and serialised as a sorted list.
type buildManifest struct {
	Version     int
	BuildID     uuid.UUID
	GeneratedAt time.Time
	Pages       map[string]manifestPage
}

// manifestFile is the on-disk JSON shape.
type manifestFile struct {
	Version     int            `json:"version"`
	BuildID     uuid.UUID      `json:"build_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Pages       []manifestPage `json:"pages"`
}

type manifestPage struct {
	Route        string    `json:"route"`
	Locale       string    `json:"locale"`
	Source       string    `json:"source"`
	Output       string    `json:"output"`
	Checksum     string    `json:"checksum"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

func newBuildManifest() *buildManifest {
	return &buildManifest{
		Version: manifestFileVersion,
		Pages:   map[string]manifestPage{},
	}
}

func parseManifest(data []byte) (*buildManifest, error) {
	if len(data) == 0 {
		return newBuildManifest(), nil
	}
	var file manifestFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("generator: parse manifest: %w", err)
	}
	manifest := newBuildManifest()
	manifest.BuildID = file.BuildID
	manifest.GeneratedAt = file.GeneratedAt
	if file.Version != 0 {
		manifest.Version = file.Version
	}
	for _, entry := range file.Pages {
		manifest.setPage(entry)
	}
	return manifest, nil
}

func (m *buildManifest) pageKey(route, locale string) string {
	return strings.ToLower(strings.TrimSpace(route)) + "::" + strings.ToLower(strings.TrimSpace(locale))
}

func (m *buildManifest) setPage(entry manifestPage) {
	if m == nil {
		return
	}
	if m.Pages == nil {
		m.Pages = map[string]manifestPage{}
	}
	m.Pages[m.pageKey(entry.Route, entry.Locale)] = entry
}

func (m *buildManifest) lookupPage(route, locale string) (manifestPage, bool) {
	if m == nil || len(m.Pages) == 0 {
		return manifestPage{}, false
	}
	entry, ok := m.Pages[m.pageKey(route, locale)]
	return entry, ok
}

// shouldSkipPage reports whether a page is unchanged since the previous
// build: same checksum landing at the same output path.
func (m *buildManifest) shouldSkipPage(route, locale, checksum, output string) bool {
	entry, ok := m.lookupPage(route, locale)
	if !ok {
		return false
	}
	if entry.Checksum != checksum {
		return false
	}
	return strings.TrimSpace(entry.Output) == strings.TrimSpace(output)
}

func (m *buildManifest) marshal() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	// Stable ordering for deterministic output.
	ordered := manifestFile{
		Version:     m.Version,
		BuildID:     m.BuildID,
		GeneratedAt: m.GeneratedAt,
	}
	if ordered.Version == 0 {
		ordered.Version = manifestFileVersion
	}
	if len(m.Pages) > 0 {
		ordered.Pages = make([]manifestPage, 0, len(m.Pages))
		for _, entry := range m.Pages {
			ordered.Pages = append(ordered.Pages, entry)
		}
		sort.Slice(ordered.Pages, func(i, j int) bool {
			if ordered.Pages[i].Route == ordered.Pages[j].Route {
				return ordered.Pages[i].Locale < ordered.Pages[j].Locale
			}
			return ordered.Pages[i].Route < ordered.Pages[j].Route
		})
	}
	return json.MarshalIndent(ordered, "", "  ")
}
