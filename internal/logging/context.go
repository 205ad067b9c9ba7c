package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// Field keys shared by every shower log line.
const (
	FieldComponent = "component"
	FieldWindowID  = "window_id"
	FieldURL       = "url"
)

// FromContext returns the logger carried by ctx. A ctx without one yields a
// disabled logger, so callers never check for nil.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags later lines with the subsystem that wrote them.
func WithComponent(ctx context.Context, component string) context.Context {
	return withField(ctx, FieldComponent, component)
}

// WithWindowID tags later lines with the window they belong to.
func WithWindowID(ctx context.Context, windowID string) context.Context {
	return withField(ctx, FieldWindowID, windowID)
}

// WithURL tags later lines with the page they concern.
func WithURL(ctx context.Context, url string) context.Context {
	return withField(ctx, FieldURL, url)
}

func withField(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}
