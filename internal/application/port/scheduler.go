package port

import "time"

// Scheduler runs callbacks later on the UI thread.
type Scheduler interface {
	// After schedules fn once after d. The returned cancel is idempotent.
	After(d time.Duration, fn func()) (cancel func())
}
