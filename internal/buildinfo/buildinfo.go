// Package buildinfo carries the version stamped in by the linker.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X slowtime/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Short is the version, else the commit, else "dev". A plain `go build` has no
// ldflags, so the VCS revision recorded by the toolchain stands in for Commit.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if c := commit(); c != "" {
		return c
	}
	return "dev"
}

// String is the long form printed by --version.
func String() string {
	c := commit()
	if c == "" {
		c = "unknown"
	}
	return fmt.Sprintf("slowtime %s (commit %s, built %s)", Version, c, Date)
}

func commit() string {
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return ""
}
