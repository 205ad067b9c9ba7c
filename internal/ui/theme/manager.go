package theme

import (
	"context"
	"os"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/shower/internal/logging"
)

// Manager owns the application CSS provider.
type Manager struct {
	prefersDark bool
	extraCSS    string
	cssProvider *gtk.CSSProvider
}

// NewManager creates a theme manager. extraCSS comes from appearance.css.
func NewManager(ctx context.Context, extraCSS string) *Manager {
	m := &Manager{
		prefersDark: DetectSystemDarkMode(),
		extraCSS:    extraCSS,
	}
	logging.FromContext(ctx).Debug().Bool("prefers_dark", m.prefersDark).Msg("theme manager initialized")
	return m
}

// Palette returns the active palette.
func (m *Manager) Palette() Palette {
	if m.prefersDark {
		return DefaultDarkPalette()
	}
	return DefaultLightPalette()
}

// ApplyToDisplay loads the stylesheet into display.
func (m *Manager) ApplyToDisplay(ctx context.Context, display *gdk.Display) {
	log := logging.FromContext(ctx)
	if display == nil {
		log.Warn().Msg("cannot apply theme: display is nil")
		return
	}

	css := GenerateCSS(m.Palette(), m.extraCSS)
	if m.cssProvider == nil {
		m.cssProvider = gtk.NewCSSProvider()
		m.cssProvider.ConnectParsingError(func(section *gtk.CSSSection, err error) {
			log.Warn().Err(err).Str("location", section.String()).Msg("css parse error")
		})
		gtk.StyleContextAddProviderForDisplay(display, m.cssProvider, uint(gtk.STYLE_PROVIDER_PRIORITY_APPLICATION))
	}
	m.cssProvider.LoadFromData(css)
	log.Debug().Bool("dark_mode", m.prefersDark).Int("bytes", len(css)).Msg("theme CSS applied to display")
}

// SetExtraCSS replaces the user stylesheet and reapplies it.
func (m *Manager) SetExtraCSS(ctx context.Context, extraCSS string, display *gdk.Display) {
	if extraCSS == m.extraCSS {
		return
	}
	m.extraCSS = extraCSS
	m.ApplyToDisplay(ctx, display)
}

// DetectSystemDarkMode checks GTK_THEME first, then the GTK setting.
func DetectSystemDarkMode() bool {
	if gtkTheme := os.Getenv("GTK_THEME"); gtkTheme != "" {
		return strings.Contains(strings.ToLower(gtkTheme), "dark")
	}
	if settings := gtk.SettingsGetDefault(); settings != nil {
		if dark, ok := settings.ObjectProperty("gtk-application-prefer-dark-theme").(bool); ok {
			return dark
		}
	}
	return false
}
