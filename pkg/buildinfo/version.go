// Package buildinfo carries the version stamped into release binaries.
//
// The variables are injected with ldflags:
//
//	go build -ldflags "-X github.com/slotforge/slotforge/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/slotforge/slotforge/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/slotforge/slotforge/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Unstamped builds report dev/none/unknown.
package buildinfo

import "fmt"

var (
	// Version is the semantic version, e.g. "v1.2.3".
	Version = "dev"

	// Commit is the git commit SHA the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the build information in the layout the version command
// prints.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}
