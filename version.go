package getsfattr

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of getsfattr.
const Version = "0.2.0"

// Variables populated at build time via -ldflags, for example:
//
//	go build -ldflags="-X github.com/partiallyordered/getsfattr.gitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/partiallyordered/getsfattr.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/getsfattr
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)

// VersionInfo describes the running binary.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// GetVersionInfo returns the build information of the running binary.
//
// When the commit was not injected through -ldflags, the VCS revision
// recorded by the Go toolchain is used if present.
func GetVersionInfo() VersionInfo {
	commit := gitCommit
	if commit == "unknown" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && len(s.Value) >= 7 {
					commit = s.Value[:7]
				}
			}
		}
	}
	return VersionInfo{
		Version:   Version,
		GitCommit: commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, %s)", v.Version, v.GitCommit, v.BuildTime, v.GoVersion)
}
