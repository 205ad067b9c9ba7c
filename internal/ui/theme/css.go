package theme

import "strings"

// CSS classes set by the chrome widgets.
const (
	ClassCommandBar   = "command-bar"
	ClassAddress      = "address"
	ClassCommandEntry = "command-entry"
	ClassLoadProgress = "load-progress"
	ClassComplete     = "complete"
	ClassTrustPrompt  = "trust-prompt"
	ClassTrustHeading = "trust-heading"
	ClassTrustURL     = "trust-url"
	ClassTrustDetail  = "trust-detail"
)

// GenerateCSS builds the chrome stylesheet for p, followed by extra.
func GenerateCSS(p Palette, extra string) string {
	var sb strings.Builder
	sb.WriteString("/* Theme variables */\n")
	sb.WriteString(p.ToCSSVars())
	sb.WriteString(`
.command-bar {
  background-color: @bar_bg;
  border-top: 1px solid @bar_border;
  padding: 2px 6px;
}

.command-bar .address {
  color: @bar_fg;
  font-family: monospace;
}

.command-bar .command-entry {
  background-color: @bar_surface;
  color: @bar_fg;
  border: none;
  box-shadow: none;
  min-height: 0;
  font-family: monospace;
}

progressbar.load-progress trough,
progressbar.load-progress progress {
  min-height: 2px;
}

progressbar.load-progress progress {
  background-color: @bar_accent;
}

progressbar.load-progress.complete progress {
  background-color: @bar_muted;
}

.trust-prompt {
  padding: 16px;
}

.trust-prompt .trust-heading {
  font-weight: bold;
  font-size: 1.2em;
}

.trust-prompt .trust-url {
  font-family: monospace;
  color: @bar_muted;
}
`)
	if extra = strings.TrimSpace(extra); extra != "" {
		sb.WriteString("\n/* User CSS */\n")
		sb.WriteString(extra)
		sb.WriteString("\n")
	}
	return sb.String()
}
