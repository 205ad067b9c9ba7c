package command

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ddg = "https://duckduckgo.com/?q=%s"

func TestInterpret(t *testing.T) {
	interp := NewInterpreter(ddg)

	tests := []struct {
		name string
		text string
		want Intent
	}{
		{
			name: "search",
			text: "? cats",
			want: Intent{Kind: KindSearch, Query: "cats", URL: "https://duckduckgo.com/?q=cats"},
		},
		{
			name: "search without space",
			text: "?golang generics",
			want: Intent{Kind: KindSearch, Query: "golang generics", URL: "https://duckduckgo.com/?q=golang+generics"},
		},
		{
			name: "find",
			text: "/  needle ",
			want: Intent{Kind: KindFindInPage, Query: "needle"},
		},
		{
			name: "bare host gets https",
			text: "example.com",
			want: Intent{Kind: KindNavigate, URL: "https://example.com"},
		},
		{
			name: "http scheme preserved",
			text: "http://example.com",
			want: Intent{Kind: KindNavigate, URL: "http://example.com"},
		},
		{
			name: "surrounding whitespace dropped",
			text: "  example.com/path  ",
			want: Intent{Kind: KindNavigate, URL: "https://example.com/path"},
		},
		{
			name: "empty text navigates nowhere",
			text: "",
			want: Intent{Kind: KindNavigate, URL: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, interp.Interpret(tt.text))
		})
	}
}

func TestInterpret_SearchAlwaysTargetsEndpoint(t *testing.T) {
	interp := NewInterpreter(ddg)
	inputs := []string{"?", "? ", "?a b c", "? &q=evil#frag", "?  100% / done  ", "?日本語"}

	for _, in := range inputs {
		intent := interp.Interpret(in)
		require.Equal(t, KindSearch, intent.Kind, in)
		assert.Equal(t, strings.TrimSpace(in[1:]), intent.Query, in)

		parsed, err := url.Parse(intent.URL)
		require.NoError(t, err, in)
		assert.Equal(t, "duckduckgo.com", parsed.Host, in)
		assert.Equal(t, "/", parsed.Path, in)
		assert.Equal(t, intent.Query, parsed.Query().Get("q"), in)
	}
}

func TestInterpret_FindQueryIsTrimmedRemainder(t *testing.T) {
	interp := Interpreter{}
	for _, in := range []string{"/", "/x", "/ two words ", "//double"} {
		intent := interp.Interpret(in)
		assert.Equal(t, KindFindInPage, intent.Kind, in)
		assert.Equal(t, strings.TrimSpace(in[1:]), intent.Query, in)
		assert.Empty(t, intent.URL, in)
	}
}

func TestInterpret_ZeroValueUsesDefaultTemplate(t *testing.T) {
	intent := Interpreter{}.Interpret("?x")
	assert.Equal(t, "https://duckduckgo.com/?q=x", intent.URL)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "navigate", KindNavigate.String())
	assert.Equal(t, "search", KindSearch.String())
	assert.Equal(t, "find", KindFindInPage.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
