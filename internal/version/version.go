package version

import "fmt"

// Set with -ldflags "-X github.com/oshokin/xcode-upkeep/internal/version.Version=...".
var (
	// Version is the release tag of the tools.
	Version = "0.1.0"
	// Commit is the git revision the binaries were built from.
	Commit = "none"
	// BuildTime is when the binaries were built, in UTC.
	BuildTime = "unknown"
)

// Short returns the release tag alone.
func Short() string {
	return Version
}

// Full returns the release tag followed by the commit and build time.
func Full() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime)
}

// Line renders the version line a tool prints, e.g. "pbx-add 0.1.0 (commit none, built unknown)".
func Line(tool string, short bool) string {
	if short {
		return tool + " " + Short()
	}

	return tool + " " + Full()
}
