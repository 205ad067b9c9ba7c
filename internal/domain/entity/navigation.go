package entity

// PolicyDecision is the answer to a navigation or popup request.
type PolicyDecision int

const (
	PolicyAllow PolicyDecision = iota
	PolicyDeny
)

func (d PolicyDecision) String() string {
	if d == PolicyAllow {
		return "allow"
	}
	return "deny"
}

// NavigationRequest describes a navigation the engine is about to perform.
type NavigationRequest struct {
	// URL is the requested target.
	URL string
	// SourceURL is the page that initiated the request, empty for a fresh window.
	SourceURL string
	// IsMainFrame is false for subframe navigations.
	IsMainFrame bool
	// IsUserGesture is true when a click or key press triggered the request.
	IsUserGesture bool
	// MouseButton is the button that triggered the request, 0 when none.
	MouseButton uint
	// NewWindow is true when the page asked for a new window (target=_blank, window.open).
	NewWindow bool
}

// MiddleButton is the mouse button number that opens links in a new window.
const MiddleButton uint = 2

// PopupRequest describes a page's request to open a new window.
type PopupRequest struct {
	TargetURL     string
	FrameName     string
	IsUserGesture bool
	OpenerURL     string
}

// TrustDecision is the answer TrustGate gives for a certificate error.
type TrustDecision int

const (
	TrustDeny TrustDecision = iota
	TrustAllow
)

func (d TrustDecision) String() string {
	if d == TrustAllow {
		return "allow"
	}
	return "deny"
}

// CertificateError describes a TLS certificate that failed validation.
type CertificateError struct {
	URL         string
	Host        string
	Description string
	// Overridable is false for errors the user must not be allowed to bypass.
	Overridable bool
}
