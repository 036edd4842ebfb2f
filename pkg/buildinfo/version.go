// Package buildinfo carries version information stamped in at link time:
//
//	go build -ldflags "-X github.com/matzehuels/benchorder/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/benchorder/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/benchorder/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/benchorder
package buildinfo

import "fmt"

var (
	Version = "dev"     // semantic version
	Commit  = "none"    // git commit SHA
	Date    = "unknown" // build timestamp (RFC 3339)
)

// String returns a multi-line summary suitable for bug reports.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra --version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}
