package entity

// TLSState summarizes the certificate status of the committed page.
type TLSState int

const (
	// TLSUnknown means the page is not served over TLS, or no info is available yet.
	TLSUnknown TLSState = iota
	// TLSSecure means the certificate validated without errors.
	TLSSecure
	// TLSInsecure means the page loaded over TLS despite certificate errors.
	TLSInsecure
)

// WindowViewState is the per-window chrome state. It is plain data: the
// toolkit renders it, and only RenderView events and user intents change it.
type WindowViewState struct {
	// DisplayedURL is the last committed URL.
	DisplayedURL string
	// HoveredURL is the link under the pointer, empty when none.
	HoveredURL string
	// IsLoading is true between load-started and the terminal load event.
	IsLoading bool
	// ProgressPercent is the load progress, 0..100.
	ProgressPercent int
	// PendingURL is an accepted but uncommitted target, only meaningful while IsLoading.
	PendingURL string
	// IsLatent marks a popup window that has not been shown yet.
	IsLatent bool
	// Title is the page title as reported by the engine.
	Title string
	// TLS is the certificate status of DisplayedURL.
	TLS TLSState
}

// NewWindowViewState returns the state for a fresh window. Popup windows start latent.
func NewWindowViewState(latent bool) *WindowViewState {
	return &WindowViewState{IsLatent: latent}
}

// BeginNavigation records a user-requested target before the engine reports anything.
func (s *WindowViewState) BeginNavigation(target string) {
	s.PendingURL = target
	s.IsLoading = true
	s.ProgressPercent = 0
}

// LoadStarted marks the start of a load driven by the engine (links, history, reload).
func (s *WindowViewState) LoadStarted() {
	s.IsLoading = true
	s.ProgressPercent = 0
}

// SetProgress clamps p into 0..100.
func (s *WindowViewState) SetProgress(p int) {
	switch {
	case p < 0:
		p = 0
	case p > 100:
		p = 100
	}
	s.ProgressPercent = p
}

// Commit records the URL the engine now reports as loaded.
func (s *WindowViewState) Commit(uri string) {
	s.DisplayedURL = uri
}

// LoadFinished clears all in-flight state. Safe to call more than once.
func (s *WindowViewState) LoadFinished() {
	s.IsLoading = false
	s.PendingURL = ""
	s.ProgressPercent = 0
}

// SetHover records the hovered link; empty clears it.
func (s *WindowViewState) SetHover(uri string) {
	s.HoveredURL = uri
}

// Reveal flips IsLatent to false. It reports true only on the one call that
// performs the transition; a revealed window never becomes latent again.
func (s *WindowViewState) Reveal() bool {
	if !s.IsLatent {
		return false
	}
	s.IsLatent = false
	return true
}
