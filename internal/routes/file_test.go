package routes

import "testing"

func TestFileToPath(t *testing.T) {
	cases := []struct {
		file string
		want string
	}{
		{"index.md", "/"},
		{"INDEX.md", "/"},
		{"index.mdx", "/"},
		{"hello/index.md", "/hello/"},
		{"hello/world/index.tsx", "/hello/world/"},
		{"foo/bar.md", "/foo/bar"},
		{"foo/bar.mdx", "/foo/bar"},
		{"docs/intro.jsx", "/docs/intro"},
		{"changelog.ts", "/changelog"},
		{"no-extension", "/no-extension"},
		{"nested/no-extension", "/nested/no-extension"},
	}

	for _, tc := range cases {
		if got := FileToPath(tc.file); got != tc.want {
			t.Errorf("FileToPath(%q) = %q, want %q", tc.file, got, tc.want)
		}
	}
}

func TestEditURL(t *testing.T) {
	got, ok := EditURL("foo/bar.md", "https://example.com/repo")
	if !ok {
		t.Fatalf("expected edit URL to resolve")
	}
	if got != "https://example.com/repo/foo/bar.md" {
		t.Fatalf("EditURL = %q", got)
	}
}

func TestEditURLNormalizesBackslashes(t *testing.T) {
	got, ok := EditURL(`docs\guides\intro.md`, "https://example.com/repo/")
	if !ok {
		t.Fatalf("expected edit URL to resolve")
	}
	if got != "https://example.com/repo/docs/guides/intro.md" {
		t.Fatalf("EditURL = %q", got)
	}
}

func TestEditURLWithoutBase(t *testing.T) {
	if got, ok := EditURL("foo/bar.md", ""); ok || got != "" {
		t.Fatalf("expected no edit URL, got %q (ok=%v)", got, ok)
	}
}
