package port

import "context"

// TrustPromptKind selects the modal presented for a certificate error.
type TrustPromptKind int

const (
	// TrustPromptConfirm asks a yes/no question. "No" is the default.
	TrustPromptConfirm TrustPromptKind = iota
	// TrustPromptInform shows a message with a single dismiss button.
	TrustPromptInform
)

// TrustPrompt is the content of a certificate-error modal.
type TrustPrompt struct {
	Kind    TrustPromptKind
	Heading string
	URL     string
	Detail  string
}

// TrustPrompter presents certificate-error modals. Present must not block:
// it shows the modal and later calls answer exactly once with the user's
// choice (always false for TrustPromptInform, and false when dismissed).
type TrustPrompter interface {
	Present(ctx context.Context, prompt TrustPrompt, answer func(accepted bool))
}

// MainLoop runs nested iterations of the UI event loop. TrustGate uses it to
// wait for an answer without returning to the engine.
type MainLoop interface {
	// RunUntil dispatches UI events until done returns true or ctx is cancelled.
	RunUntil(ctx context.Context, done func() bool)
}
