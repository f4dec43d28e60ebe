// Package buildinfo holds version details stamped in at link time, e.g.
//
//	go build -ldflags "-X github.com/cleared-dev/expense/internal/buildinfo.Version=v0.3.0"
package buildinfo

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
