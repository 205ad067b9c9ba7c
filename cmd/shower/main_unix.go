//go:build linux || darwin

package main

import (
	"context"
	"runtime/debug"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/bnema/shower/internal/logging"
)

// GTK and WebKit faults happen below the Go runtime. A fatal signal should
// print every goroutine and leave a core file behind.
func enableCrashForensics() {
	debug.SetTraceback("crash")
	_ = raiseCoreLimit()
}

// raiseCoreLimit lifts the soft RLIMIT_CORE up to the hard limit.
func raiseCoreLimit() error {
	limit, err := coreLimit()
	if err != nil || limit.Cur == limit.Max {
		return err
	}
	limit.Cur = limit.Max
	return unix.Setrlimit(unix.RLIMIT_CORE, &limit)
}

func coreLimit() (unix.Rlimit, error) {
	var limit unix.Rlimit
	err := unix.Getrlimit(unix.RLIMIT_CORE, &limit)
	return limit, err
}

func logCoreDumpLimits(ctx context.Context) {
	event := logging.FromContext(ctx).Debug()
	limit, err := coreLimit()
	if err != nil {
		event.Err(err).Msg("core dump limits unavailable")
		return
	}
	event.
		Str("core_soft", describeRlimit(limit.Cur)).
		Str("core_hard", describeRlimit(limit.Max)).
		Msg("crash forensics enabled")
}

func describeRlimit(value uint64) string {
	if value == unix.RLIM_INFINITY {
		return "unlimited"
	}
	return strconv.FormatUint(value, 10)
}
