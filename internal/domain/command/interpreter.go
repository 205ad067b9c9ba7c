// Package command turns the text of the command entry into a navigation intent.
package command

import (
	"strings"

	"github.com/bnema/shower/internal/domain/url"
)

const (
	// SearchPrefix starts a web search.
	SearchPrefix = "?"
	// FindPrefix starts a find-in-page.
	FindPrefix = "/"
)

// Kind tags an Intent.
type Kind int

const (
	KindNavigate Kind = iota
	KindSearch
	KindFindInPage
)

func (k Kind) String() string {
	switch k {
	case KindNavigate:
		return "navigate"
	case KindSearch:
		return "search"
	case KindFindInPage:
		return "find"
	default:
		return "unknown"
	}
}

// Intent is what the user asked for. Exactly one of the variants is meaningful,
// selected by Kind. Intents are values; nothing mutates them after Interpret.
type Intent struct {
	Kind Kind
	// Query is the trimmed search or find text.
	Query string
	// URL is the navigation target, or the search-engine URL for KindSearch.
	URL string
}

// Navigate builds a navigation intent.
func Navigate(target string) Intent {
	return Intent{Kind: KindNavigate, URL: target}
}

// Search builds a search intent against template.
func Search(template, query string) Intent {
	return Intent{Kind: KindSearch, Query: query, URL: url.BuildSearchURL(template, query)}
}

// FindInPage builds a find intent.
func FindInPage(query string) Intent {
	return Intent{Kind: KindFindInPage, Query: query}
}

// Interpreter maps command text to intents. The zero value searches with
// url.DefaultSearchTemplate.
type Interpreter struct {
	SearchTemplate string
}

// NewInterpreter returns an Interpreter using the given search template.
func NewInterpreter(searchTemplate string) Interpreter {
	return Interpreter{SearchTemplate: searchTemplate}
}

// Interpret never fails: text that is not a search or find is handed to the
// engine as a URL, with https:// added when no scheme is present.
func (i Interpreter) Interpret(text string) Intent {
	switch {
	case strings.HasPrefix(text, SearchPrefix):
		return Search(i.SearchTemplate, strings.TrimSpace(text[len(SearchPrefix):]))
	case strings.HasPrefix(text, FindPrefix):
		return FindInPage(strings.TrimSpace(text[len(FindPrefix):]))
	default:
		return Navigate(url.WithDefaultScheme(strings.TrimSpace(text)))
	}
}
