// Package build carries version information stamped at link time.
package build

// Version is reported by the version command. Release builds overwrite the
// "dev" default via -ldflags.
var Version = "dev"
