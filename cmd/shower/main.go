package main

import (
	"runtime"

	"github.com/bnema/shower/internal/cli/cmd"
	"github.com/bnema/shower/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// GTK must stay on the thread that initialized it.
	runtime.LockOSThread()
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.OnBrowserStart(logCoreDumpLimits)
	cmd.Execute()
}
