package domain

import "testing"

func TestBrowserURL(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		want   string
	}{
		{"scp-like ssh", "git@github.com:acme/shop.git", "https://github.com/acme/shop"},
		{"https with suffix", "https://github.com/acme/shop.git", "https://github.com/acme/shop"},
		{"https plain", "https://gitlab.com/acme/shop", "https://gitlab.com/acme/shop"},
		{"ssh scheme with port", "ssh://git@git.example.com:2222/acme/shop.git", "https://git.example.com/acme/shop"},
		{"trailing slash", "https://github.com/acme/shop/", "https://github.com/acme/shop"},
		{"empty", "  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BrowserURL(tt.remote); got != tt.want {
				t.Errorf("BrowserURL(%q) = %q, want %q", tt.remote, got, tt.want)
			}
		})
	}
}
