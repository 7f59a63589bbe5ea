// Package buildinfo reports the program version and the git revision it was
// built from.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// Version may be overridden with -ldflags "-X github.com/rstms/xdump/buildinfo.Version=..."
var Version = "0.1.0"

var (
	gitHashOnce sync.Once
	gitHash     string
)

// GitHash returns the vcs.revision recorded in the build, computed on first
// use.  ok is false when the binary carries no revision.
func GitHash() (string, bool) {
	gitHashOnce.Do(func() {
		gitHash = readGitHash(debug.ReadBuildInfo)
	})
	return gitHash, gitHash != ""
}

func readGitHash(read func() (*debug.BuildInfo, bool)) string {
	info, ok := read()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			return setting.Value
		}
	}
	return ""
}

func String() string {
	hash, ok := GitHash()
	if !ok {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, hash)
}
