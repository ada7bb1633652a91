package routes

import "testing"

func TestEncodePath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"a/b/c", "a/b/c"},
		{"a/<foo>/", "a/%3Cfoo%3E/"},
		{"a/你好/", "a/%E4%BD%A0%E5%A5%BD/"},
		{"a/b c", "a/b%20c"},
		{"/docs/", "/docs/"},
		{"!'()*-._~", "!'()*-._~"},
		{"%", "%25"},
	}

	for _, tc := range cases {
		if got := EncodePath(tc.path); got != tc.want {
			t.Errorf("EncodePath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
