// Package cmd contains build-time variables injected via ldflags.
package cmd

import (
	"fmt"
	"runtime"
)

// Build-time variables set via ldflags.
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// VersionInfo renders the build variables for a --version flag.
func VersionInfo(name string) string {
	return fmt.Sprintf("%s version %s\n  commit: %s\n  built:  %s\n  go:     %s\n",
		name, Version, Commit, Date, runtime.Version())
}
