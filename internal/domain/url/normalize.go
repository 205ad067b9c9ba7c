// Package url provides URL manipulation utilities for the browser.
package url

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// DefaultScheme is prepended to input that carries no scheme.
const DefaultScheme = "https"

// ViewSourcePrefix marks a URL that the engine renders as page source.
const ViewSourcePrefix = "view-source:"

// opaqueSchemes are schemes written without "//" that we still treat as present.
var opaqueSchemes = []string{
	"about:",
	"data:",
	"javascript:",
	"mailto:",
	"file:",
	ViewSourcePrefix,
}

// HasScheme reports whether input starts with "<scheme>://" or a known opaque scheme.
// "localhost:8080" has no scheme; the part before the colon is a host.
func HasScheme(input string) bool {
	lower := strings.ToLower(input)
	for _, prefix := range opaqueSchemes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}

	idx := strings.Index(input, "://")
	if idx <= 0 {
		return false
	}
	return isSchemeName(input[:idx])
}

// isSchemeName checks RFC 3986 scheme syntax: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func isSchemeName(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// WithDefaultScheme prefixes https:// when input has no scheme.
// Input with a scheme, and empty input, are returned unchanged.
func WithDefaultScheme(input string) string {
	if input == "" || HasScheme(input) {
		return input
	}
	return DefaultScheme + "://" + input
}

// IsJavaScript reports whether the URI is a javascript: pseudo-URL.
func IsJavaScript(uri string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(uri)), "javascript:")
}

// Host extracts the lowercase host (without port) from a URL string.
func Host(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}

// Site returns the registrable domain (eTLD+1) of a URL, or its host when
// the public suffix list has no answer (IP literals, localhost).
func Site(rawURL string) string {
	host := Host(rawURL)
	if host == "" {
		return ""
	}
	site, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return site
}

// SameSite reports whether both URLs belong to the same registrable domain.
// URLs without a host never match.
func SameSite(a, b string) bool {
	siteA := Site(a)
	return siteA != "" && siteA == Site(b)
}
