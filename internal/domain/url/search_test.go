package url

import "testing"

const testTemplate = "https://duckduckgo.com/?q=%s"

func TestBuildSearchURL(t *testing.T) {
	tests := []struct {
		name     string
		template string
		query    string
		want     string
	}{
		{name: "simple word", template: testTemplate, query: "cats", want: "https://duckduckgo.com/?q=cats"},
		{name: "spaces are escaped", template: testTemplate, query: "rust async", want: "https://duckduckgo.com/?q=rust+async"},
		{name: "reserved characters", template: testTemplate, query: "go & c++", want: "https://duckduckgo.com/?q=go+%26+c%2B%2B"},
		{name: "empty query", template: testTemplate, query: "", want: "https://duckduckgo.com/?q="},
		{name: "empty template uses default", template: "", query: "x", want: "https://duckduckgo.com/?q=x"},
		{name: "only first placeholder", template: "https://s.example/?q=%s&t=%s", query: "a", want: "https://s.example/?q=a&t=%s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildSearchURL(tt.template, tt.query); got != tt.want {
				t.Errorf("BuildSearchURL(%q, %q) = %q, want %q", tt.template, tt.query, got, tt.want)
			}
		})
	}
}

func TestToggleViewSource(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://example.com/", want: "view-source:https://example.com/"},
		{in: "view-source:https://example.com/", want: "https://example.com/"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := ToggleViewSource(tt.in); got != tt.want {
			t.Errorf("ToggleViewSource(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToggleViewSource_TwiceIsIdentity(t *testing.T) {
	for _, u := range []string{"https://a.example/x?y=1", "view-source:http://b.example", "about:blank"} {
		if got := ToggleViewSource(ToggleViewSource(u)); got != u {
			t.Errorf("toggle twice on %q = %q", u, got)
		}
	}
}
