// Package buildconfig exposes the version metadata stamped into the chatbot
// binary at build time.
package buildconfig

// Overridden via -ldflags on release builds; the zero values identify a
// local development build.
var (
	version = "dev"
	commit  = "unknown"
)

// Version returns the stamped release version.
func Version() string {
	return version
}

// Commit returns the stamped git commit hash.
func Commit() string {
	return commit
}
