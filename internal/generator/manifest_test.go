package generator

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestManifestRoundTrip(t *testing.T) {
	manifest := newBuildManifest()
	manifest.BuildID = uuid.New()
	manifest.GeneratedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	manifest.setPage(manifestPage{
		Route:    "/guides/intro",
		Locale:   "en",
		Source:   "guides/intro.md",
		Output:   "guides/intro/index.html",
		Checksum: "abc123",
		Size:     42,
	})

	data, err := manifest.marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	parsed, err := parseManifest(data)
	if err != nil {
		t.Fatalf("parseManifest: %v", err)
	}
	if parsed.BuildID != manifest.BuildID {
		t.Fatalf("BuildID = %v, want %v", parsed.BuildID, manifest.BuildID)
	}
	if !parsed.shouldSkipPage("/guides/intro", "en", "abc123", "guides/intro/index.html") {
		t.Fatalf("expected unchanged page to be skippable after round trip")
	}
	if parsed.shouldSkipPage("/guides/intro", "en", "other", "guides/intro/index.html") {
		t.Fatalf("changed checksum must not be skippable")
	}
}

func TestParseManifestEmpty(t *testing.T) {
	manifest, err := parseManifest(nil)
	if err != nil {
		t.Fatalf("parseManifest: %v", err)
	}
	if manifest.Version != manifestFileVersion {
		t.Fatalf("Version = %d, want %d", manifest.Version, manifestFileVersion)
	}
	if len(manifest.Pages) != 0 {
		t.Fatalf("expected empty page set")
	}
}
