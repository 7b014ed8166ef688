package version

import (
	"runtime"
	"time"
)

// Set at link time: -ldflags "-X github.com/MrSnakeDoc/garden/internal/version.Version=v0.3.0"
var (
	Version   = "dev"                           // ex: v0.3.0
	Commit    = "none"                          // ex: abcd123
	BuildDate = time.Now().Format(time.RFC3339) // ex: 2025-08-11T18:42:00Z
	GoVersion = runtime.Version()
)

// String is the one-line banner used by the CLI and the startup log.
func String() string {
	return "garden " + Version + " (commit=" + Commit + ", built=" + BuildDate + ", go=" + GoVersion + ")"
}
