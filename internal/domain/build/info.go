// Package build carries build-time information.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String renders a one-line version banner.
func (i Info) String() string {
	return fmt.Sprintf("shower %s (%s, built %s, %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion)
}

// RepoURL returns the repository URL.
func RepoURL() string {
	return "https://github.com/bnema/shower"
}
