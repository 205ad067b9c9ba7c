package component

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/shower/internal/ui/theme"
)

// ProgressBar is the slim load indicator above the command bar.
type ProgressBar struct {
	bar *gtk.ProgressBar
}

// NewProgressBar creates a hidden progress bar.
func NewProgressBar() *ProgressBar {
	bar := gtk.NewProgressBar()
	bar.AddCSSClass(theme.ClassLoadProgress)
	bar.SetHExpand(true)
	bar.SetCanTarget(false)
	bar.SetCanFocus(false)
	bar.SetVisible(false)
	return &ProgressBar{bar: bar}
}

// Widget returns the progress bar widget.
func (pb *ProgressBar) Widget() gtk.Widgetter {
	return pb.bar
}

// Set shows the bar at percent. complete switches to the finished style.
func (pb *ProgressBar) Set(percent int, complete bool) {
	pb.bar.SetFraction(float64(max(0, min(100, percent))) / 100)
	if complete {
		pb.bar.AddCSSClass(theme.ClassComplete)
	} else {
		pb.bar.RemoveCSSClass(theme.ClassComplete)
	}
	pb.bar.SetVisible(true)
}

// Hide hides the bar and resets it.
func (pb *ProgressBar) Hide() {
	pb.bar.SetVisible(false)
	pb.bar.SetFraction(0)
	pb.bar.RemoveCSSClass(theme.ClassComplete)
}
