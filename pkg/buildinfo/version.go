// Package buildinfo reports the notegraph version.
//
// Release builds set the variables through ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/notegraph/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/notegraph/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/notegraph/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Binaries built with plain "go install" or "go build" fall back to the
// module version and VCS stamp recorded by the Go toolchain.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Placeholders used when neither ldflags nor the toolchain supply a value.
const (
	unknownVersion = "dev"
	unknownCommit  = "none"
	unknownDate    = "unknown"
)

// Set via ldflags.
var (
	Version = unknownVersion
	Commit  = unknownCommit
	Date    = unknownDate
)

// Info is the resolved version of the running binary.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Current returns the ldflags values, filling unset ones from the
// binary's embedded build information.
func Current() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = info.merge(bi)
	}
	return info
}

// merge fills placeholder fields from bi.
func (i Info) merge(bi *debug.BuildInfo) Info {
	if i.Version == unknownVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	var revision string
	dirty := false
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			if i.Date == unknownDate {
				i.Date = s.Value
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if i.Commit == unknownCommit && revision != "" {
		i.Commit = revision
		if dirty {
			i.Commit += "-dirty"
		}
	}
	return i
}

// String returns the formatted build information.
func (i Info) String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", i.Version, i.Commit, i.Date)
}

// Template returns the version template string for cobra.
func Template() string {
	i := Current()
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", i.Version, i.Commit, i.Date)
}
