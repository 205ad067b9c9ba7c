package url

import (
	"net/url"
	"strings"
)

// DefaultSearchTemplate is used when no template is configured.
const DefaultSearchTemplate = "https://duckduckgo.com/?q=%s"

// BuildSearchURL query-escapes query and substitutes it for the first %s in template.
//
// Examples:
//
//	("https://duckduckgo.com/?q=%s", "cats")       → "https://duckduckgo.com/?q=cats"
//	("https://duckduckgo.com/?q=%s", "go & rust")  → "https://duckduckgo.com/?q=go+%26+rust"
func BuildSearchURL(template, query string) string {
	if template == "" {
		template = DefaultSearchTemplate
	}
	return strings.Replace(template, "%s", url.QueryEscape(query), 1)
}

// IsViewSource reports whether uri carries the view-source: marker.
func IsViewSource(uri string) bool {
	return strings.HasPrefix(uri, ViewSourcePrefix)
}

// ToggleViewSource adds the view-source: marker, or strips it when present.
// ToggleViewSource(ToggleViewSource(u)) == u for any non-empty u.
func ToggleViewSource(uri string) string {
	if uri == "" {
		return ""
	}
	if IsViewSource(uri) {
		return strings.TrimPrefix(uri, ViewSourcePrefix)
	}
	return ViewSourcePrefix + uri
}
