package window

// WindowError is returned when a Shell cannot assemble its window.
type WindowError struct {
	Message string
	// Widget names the part that failed, if any.
	Widget string
}

func (e WindowError) Error() string {
	if e.Widget == "" {
		return e.Message
	}
	return e.Message + ": " + e.Widget
}

// Is matches any WindowError with the same message, whatever the widget.
func (e WindowError) Is(target error) bool {
	t, ok := target.(WindowError)
	return ok && t.Message == e.Message
}

var (
	ErrWindowCreationFailed = WindowError{Message: "failed to create application window"}
	errWidgetCreation       = WindowError{Message: "failed to create widget"}
)

// ErrWidgetCreationFailed reports that the named widget could not be built.
func ErrWidgetCreationFailed(name string) error {
	return WindowError{Message: errWidgetCreation.Message, Widget: name}
}
