package logging

import (
	"context"
	"fmt"
	"runtime/debug"
)

// RecoverCallback stops a panic inside a toolkit callback from taking the
// process down. Use as: defer logging.RecoverCallback(ctx, "load-changed").
func RecoverCallback(ctx context.Context, callback string) {
	r := recover()
	if r == nil {
		return
	}

	FromContext(ctx).Error().
		Str("callback", callback).
		Str("panic", fmt.Sprint(r)).
		Bytes("stack", debug.Stack()).
		Msg("recovered panic in callback")
}
