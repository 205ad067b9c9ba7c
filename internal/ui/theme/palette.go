// Package theme provides GTK CSS styling for the window chrome.
package theme

import "fmt"

// Palette holds semantic color tokens for theming.
type Palette struct {
	Background string
	Surface    string
	Text       string
	Muted      string
	Accent     string
	Border     string
}

// DefaultDarkPalette returns the default dark theme palette.
func DefaultDarkPalette() Palette {
	return Palette{
		Background: "#0a0a0b",
		Surface:    "#1a1a1b",
		Text:       "#ffffff",
		Muted:      "#909090",
		Accent:     "#4ade80",
		Border:     "#333333",
	}
}

// DefaultLightPalette returns the default light theme palette.
func DefaultLightPalette() Palette {
	return Palette{
		Background: "#fafafa",
		Surface:    "#ffffff",
		Text:       "#1a1a1a",
		Muted:      "#666666",
		Accent:     "#22c55e",
		Border:     "#dddddd",
	}
}

// ToCSSVars renders the palette as GTK @define-color statements.
func (p Palette) ToCSSVars() string {
	return fmt.Sprintf(
		"@define-color bar_bg %s;\n@define-color bar_surface %s;\n@define-color bar_fg %s;\n"+
			"@define-color bar_muted %s;\n@define-color bar_accent %s;\n@define-color bar_border %s;\n",
		p.Background, p.Surface, p.Text, p.Muted, p.Accent, p.Border)
}
