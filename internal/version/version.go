// Package version exposes build metadata stamped in at release time.
package version

import "fmt"

// Populated via -ldflags, e.g.
// go build -ldflags "-X obsidian-logging/internal/version.Version=1.0.0".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns the version string shown by --version.
func Info() string {
	if Commit == "none" && Date == "unknown" {
		return Version
	}
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, built %s)", Version, commit, Date)
}
