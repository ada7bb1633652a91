package generator

import "testing"

func TestBuildOutputPath(t *testing.T) {
	cases := []struct {
		name          string
		route         string
		locale        string
		defaultLocale string
		want          string
	}{
		{name: "root route", route: "/", locale: "en", defaultLocale: "en", want: "index.html"},
		{name: "empty route", route: "", locale: "en", defaultLocale: "en", want: "index.html"},
		{name: "nested route", route: "/guides/intro", locale: "en", defaultLocale: "en", want: "guides/intro/index.html"},
		{name: "trailing slash", route: "/guides/intro/", locale: "en", defaultLocale: "en", want: "guides/intro/index.html"},
		{name: "non default locale", route: "/guides/intro", locale: "es", defaultLocale: "en", want: "es/guides/intro/index.html"},
		{name: "route already carries locale", route: "/es/guides/intro", locale: "es", defaultLocale: "en", want: "es/guides/intro/index.html"},
		{name: "locale root", route: "/", locale: "es", defaultLocale: "en", want: "es/index.html"},
		{name: "missing locale falls back", route: "/about", locale: "", defaultLocale: "en", want: "about/index.html"},
		{name: "locale case insensitive", route: "/about", locale: "EN", defaultLocale: "en", want: "about/index.html"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := buildOutputPath(tc.route, tc.locale, tc.defaultLocale)
			if got != tc.want {
				t.Fatalf("buildOutputPath(%q, %q, %q) = %q, want %q", tc.route, tc.locale, tc.defaultLocale, got, tc.want)
			}
		})
	}
}

func TestJoinOutputPath(t *testing.T) {
	if got := joinOutputPath("dist", "/guides/", "intro.html"); got != "dist/guides/intro.html" {
		t.Fatalf("joinOutputPath = %q", got)
	}
	if got := joinOutputPath("", "index.html"); got != "index.html" {
		t.Fatalf("joinOutputPath with empty part = %q", got)
	}
}
