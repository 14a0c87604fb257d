// Package version carries build metadata injected via -ldflags.
package version

import "fmt"

var (
	// Version is the release version of the plotting tools.
	Version = "dev"
	// GitSHA is the git commit the binary was built from.
	GitSHA = "unknown"
	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// String returns a single-line description suitable for a -version flag.
func String() string {
	return fmt.Sprintf("trajplot %s (%s, built %s)", Version, GitSHA, BuildTime)
}
