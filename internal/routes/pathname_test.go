package routes

import "testing"

func TestIsValidPathname(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"/", true},
		{"/hey", true},
		{"/hey/ho", true},
		{"/hey/ho/", true},
		{"/hey/h%C3%B4/", true},
		{"/%C3%B1", true},
		{"/hey///ho///", true},
		{"/hey/héllô/", true},
		{"", false},
		{"hey", false},
		{"//hey", false},
		{"////", false},
		{"/hey?qu=ery", false},
		{"/hey#anchor", false},
		{"/hey%", false},
		{"/%C3", false},
		{"/%C3%28", false},
		{"/%80", false},
		{"https://fb.com/hey", false},
	}

	for _, tc := range cases {
		if got := IsValidPathname(tc.value); got != tc.want {
			t.Errorf("IsValidPathname(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestSlashEdgeHelpers(t *testing.T) {
	if got := AddLeadingSlash("docs"); got != "/docs" {
		t.Fatalf("AddLeadingSlash = %q", got)
	}
	if got := AddLeadingSlash("/docs"); got != "/docs" {
		t.Fatalf("AddLeadingSlash no-op = %q", got)
	}
	if got := AddTrailingSlash("/docs"); got != "/docs/" {
		t.Fatalf("AddTrailingSlash = %q", got)
	}
	if got := AddTrailingSlash("/docs/"); got != "/docs/" {
		t.Fatalf("AddTrailingSlash no-op = %q", got)
	}
	if got := RemoveTrailingSlash("/docs/"); got != "/docs" {
		t.Fatalf("RemoveTrailingSlash = %q", got)
	}
	if got := RemoveTrailingSlash("/docs"); got != "/docs" {
		t.Fatalf("RemoveTrailingSlash no-op = %q", got)
	}
}

func TestSlashEdgeHelpersAreIdempotent(t *testing.T) {
	corpus := []string{"", "/", "//", "docs", "/docs", "docs/", "/docs/", "/docs//", "a/b/c", "a//b//"}

	for _, s := range corpus {
		if once, twice := AddLeadingSlash(s), AddLeadingSlash(AddLeadingSlash(s)); once != twice {
			t.Errorf("AddLeadingSlash not idempotent for %q: %q vs %q", s, once, twice)
		}
		if once, twice := AddTrailingSlash(s), AddTrailingSlash(AddTrailingSlash(s)); once != twice {
			t.Errorf("AddTrailingSlash not idempotent for %q: %q vs %q", s, once, twice)
		}
		if once, twice := RemoveTrailingSlash(s), RemoveTrailingSlash(RemoveTrailingSlash(s)); once != twice {
			t.Errorf("RemoveTrailingSlash not idempotent for %q: %q vs %q", s, once, twice)
		}
	}
}
