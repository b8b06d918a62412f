// Package buildinfo provides build-time version information.
//
// Version information is injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/mermaid/pkg/buildinfo.Version=v1.0.0"
package buildinfo

import "fmt"

// Build-time variables injected via ldflags.
var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit hash.
	Commit = "none"

	// Date is the build date.
	Date = "unknown"
)

// String returns a human-readable version string.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}

// Template returns a version template for cobra commands.
func Template() string {
	return fmt.Sprintf("mermaid %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
