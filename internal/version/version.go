// Package version reports the build identity of the dragselect binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time with -ldflags "-X .../internal/version.Version=...".
var (
	Version = "development"
	Commit  = "unknown"
)

// String returns the version, suffixed with the commit when it is known.
func String() string {
	if Commit != "unknown" && Commit != "" {
		return Version + "+" + Commit
	}
	return Version
}

// Info describes the running binary.
type Info struct {
	Version   string
	Commit    string
	GoVersion string
	Platform  string
	Module    string
}

// Current collects Info, falling back to the module build info when the
// commit was not injected through ldflags.
func Current() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.Module = bi.Main.Path
		if info.Commit == "unknown" {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && len(s.Value) >= 7 {
					info.Commit = s.Value[:7]
				}
			}
		}
	}
	return info
}

// Long renders Info as a multi-line report.
func (i Info) Long() string {
	return fmt.Sprintf("dragselect %s\n  commit:   %s\n  go:       %s\n  platform: %s\n", i.Version, i.Commit, i.GoVersion, i.Platform)
}
