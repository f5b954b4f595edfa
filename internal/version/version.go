// Package version holds build-time metadata stamped via -ldflags at release
// build time. Defaults are for local/dev builds run straight from source.
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
