// Package filtering implements the navigation and popup predicates backed
// by configurable glob deny lists.
package filtering

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gobwas/glob"
)

// DenyList matches URLs against glob patterns. A pattern is tested against
// the host alone and against host+path, so "ads.example" and
// "*.ads.example/banner/*" are both useful. "*" crosses dots and slashes.
type DenyList struct {
	patterns []string
	globs    []glob.Glob
}

// NewDenyList compiles patterns. Blank patterns are skipped.
func NewDenyList(patterns []string) (*DenyList, error) {
	d := &DenyList{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(strings.ToLower(p))
		if err != nil {
			return nil, fmt.Errorf("invalid deny pattern %q: %w", p, err)
		}
		d.patterns = append(d.patterns, p)
		d.globs = append(d.globs, g)
	}
	return d, nil
}

// Len returns the number of compiled patterns.
func (d *DenyList) Len() int {
	if d == nil {
		return 0
	}
	return len(d.globs)
}

// Match returns the first pattern matching rawURL.
func (d *DenyList) Match(rawURL string) (string, bool) {
	if d.Len() == 0 {
		return "", false
	}
	candidates := matchCandidates(rawURL)
	for i, g := range d.globs {
		for _, c := range candidates {
			if g.Match(c) {
				return d.patterns[i], true
			}
		}
	}
	return "", false
}

func matchCandidates(rawURL string) []string {
	lower := strings.ToLower(strings.TrimSpace(rawURL))
	parsed, err := url.Parse(lower)
	if err != nil || parsed.Host == "" {
		return []string{lower}
	}
	host := parsed.Hostname()
	path := parsed.EscapedPath()
	if path == "" {
		path = "/"
	}
	return []string{host, host + path, lower}
}
