package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCSS_IncludesPaletteAndClasses(t *testing.T) {
	css := GenerateCSS(DefaultDarkPalette(), "")

	assert.Contains(t, css, "@define-color bar_accent #4ade80;")
	for _, class := range []string{ClassCommandBar, ClassAddress, ClassCommandEntry, ClassLoadProgress, ClassTrustPrompt} {
		assert.Contains(t, css, "."+class, class)
	}
	assert.NotContains(t, css, "User CSS")
}

func TestGenerateCSS_AppendsUserCSS(t *testing.T) {
	css := GenerateCSS(DefaultLightPalette(), "  .address { color: red; }\n")

	assert.True(t, strings.HasSuffix(css, "/* User CSS */\n.address { color: red; }\n"))
	assert.Contains(t, css, "@define-color bar_bg #fafafa;")
}
