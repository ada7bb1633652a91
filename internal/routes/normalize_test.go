package routes

import (
	"errors"
	"testing"
)

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		name     string
		segments []string
		want     string
	}{
		{"root then empty", []string{"/", ""}, "/"},
		{"empty then root", []string{"", "/"}, "/"},
		{"single empty", []string{""}, ""},
		{"all empty", []string{"", ""}, ""},
		{"bare root", []string{"/"}, "/"},
		{"relative join", []string{"hello", "world"}, "hello/world"},
		{"absolute join", []string{"/", "docs", "en", "next", "blog"}, "/docs/en/next/blog"},
		{"boundary slashes", []string{"hello/", "/world"}, "hello/world"},
		{"empty first keeps leading slash", []string{"", "/hello/world"}, "/hello/world"},
		{"internal runs collapse", []string{"///hello///"}, "/hello/"},
		{"middle empty segment", []string{"hello", "", "world"}, "hello/world"},
		{"trailing slash survives", []string{"hello/world/", ""}, "hello/world/"},
		{"trailing slash absent", []string{"hello/world", ""}, "hello/world"},
		{"query attaches to path", []string{"http://www.google.com/", "foo/bar", "?test=123"}, "http://www.google.com/foo/bar?test=123"},
		{"bare scheme merges", []string{"http://", "www.google.com//", "foo/bar", "?test=123"}, "http://www.google.com/foo/bar?test=123"},
		{"empty between host and path", []string{"http://foobar.com", "", "test"}, "http://foobar.com/test"},
		{"protocol-relative second segment", []string{"http://foobar.com", "//test"}, "http://foobar.com/test"},
		{"colon-only scheme normalizes", []string{"http:example.com"}, "http://example.com"},
		{"file scheme double slash", []string{"file:", "hello/world/"}, "file://hello/world/"},
		{"file scheme triple slash", []string{"file:", "/hello/world/"}, "file:///hello/world/"},
		{"file scheme explicit triple", []string{"file:///", "hello/world/"}, "file:///hello/world/"},
		{"second query becomes param", []string{"http://example.com", "?a=1", "?b=2"}, "http://example.com?a=1&b=2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeURL(tc.segments...); got != tc.want {
				t.Fatalf("NormalizeURL(%q) = %q, want %q", tc.segments, got, tc.want)
			}
		})
	}
}

func TestNormalizeURLValues(t *testing.T) {
	got, err := NormalizeURLValues([]any{"/", "docs", "intro"})
	if err != nil {
		t.Fatalf("NormalizeURLValues: %v", err)
	}
	if got != "/docs/intro" {
		t.Fatalf("NormalizeURLValues = %q, want /docs/intro", got)
	}
}

func TestNormalizeURLValuesRejectsNonStrings(t *testing.T) {
	cases := []struct {
		name    string
		values  []any
		message string
	}{
		{"nil segment", []any{"http:example.com", nil}, "Url must be a string. Received undefined"},
		{"numeric segment", []any{"/docs", 42}, "Url must be a string. Received 42"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeURLValues(tc.values)
			if err == nil {
				t.Fatalf("expected error for %#v", tc.values)
			}
			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected *InvalidInputError, got %T", err)
			}
			if err.Error() != tc.message {
				t.Fatalf("error message = %q, want %q", err.Error(), tc.message)
			}
		})
	}
}
