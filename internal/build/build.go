// Package build holds version metadata injected at link time.
package build

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
