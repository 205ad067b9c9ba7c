package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/shower/internal/domain/build"
)

// Renderer formats command output.
type Renderer struct {
	theme *Theme
}

// NewRenderer creates a renderer for theme.
func NewRenderer(theme *Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// RenderVersion renders build information as aligned key/value lines.
func (r *Renderer) RenderVersion(info build.Info) string {
	rows := [][2]string{
		{"Version", info.Version},
		{"Commit", info.Commit},
		{"Built", info.BuildDate},
		{"Go", info.GoVersion},
		{"Source", build.RepoURL()},
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, r.theme.Title.Render("shower"))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.Subtle.Width(8).Render(row[0]), r.theme.Highlight.Render(row[1])))
	}
	return strings.Join(lines, "\n")
}

// RenderPath renders a labelled path.
func (r *Renderer) RenderPath(label, path string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.theme.Subtle.Render(label+": "), r.theme.Highlight.Render(path))
}

// RenderSuccess renders a confirmation line.
func (r *Renderer) RenderSuccess(msg string) string {
	return r.theme.SuccessStyle.Render("✓ ") + msg
}

// RenderError renders an error line.
func (r *Renderer) RenderError(err error) string {
	return r.theme.ErrorStyle.Render("✗ ") + err.Error()
}

// RenderNotice renders a muted informational line.
func (r *Renderer) RenderNotice(msg string) string {
	return r.theme.Subtle.Render(msg)
}
