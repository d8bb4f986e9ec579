// Package version holds build metadata set by the linker.
package version

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String returns the version line shown by --version.
func String() string {
	return Version + " (commit " + CommitHash + ", built " + BuildDate + ")"
}
