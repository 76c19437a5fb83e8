package version

import "fmt"

var (
	// Version is the semantic version of the drivesafe release, overridden via ldflags.
	Version = "0.1.0"
	// Commit is the short git SHA embedded at build time (or "none" for local builds).
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Short returns only the semantic version string.
func Short() string {
	return Version
}

// Full returns a human-readable version line for logs and the version subcommand.
func Full() string {
	return fmt.Sprintf("drivesafe %s (commit %s, built %s)", Version, Commit, BuildTime)
}
