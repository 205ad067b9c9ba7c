package filtering

import "context"

// ContentBlocker decides whether a main-frame navigation is an ad or tracker.
type ContentBlocker interface {
	ShouldBlock(ctx context.Context, uri string) bool
}

// NoopBlocker never blocks. It holds the place of a real ad-block engine.
type NoopBlocker struct{}

// ShouldBlock always returns false.
func (NoopBlocker) ShouldBlock(context.Context, string) bool { return false }
