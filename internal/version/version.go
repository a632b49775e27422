package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Version and Commit are normally injected at build time:
//
//	go build -ldflags="-X github.com/muurk/countryfinder/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/countryfinder/internal/version.Commit=abc1234"
//
// When they are left empty, VCS stamps from the build info are used, and
// failing that a "dev" version with the current timestamp.
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		fillFromBuildInfo(readBuildSettings())
	}

	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// readBuildSettings returns the vcs.* build settings keyed by name.
func readBuildSettings() map[string]string {
	settings := make(map[string]string)
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return settings
	}
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	return settings
}

// fillFromBuildInfo sets Commit (short hash, "-dirty" suffix when modified)
// and a dated dev Version from VCS build settings.
func fillFromBuildInfo(settings map[string]string) {
	if Commit == "" {
		if rev := settings["vcs.revision"]; rev != "" {
			if len(rev) > 7 {
				rev = rev[:7]
			}
			if settings["vcs.modified"] == "true" {
				rev += "-dirty"
			}
			Commit = rev
		}
	}

	if Version == "" {
		if vcsTime := settings["vcs.time"]; vcsTime != "" {
			if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
				Version = fmt.Sprintf("dev-%s", t.Format("20060102"))
			}
		}
	}
}

// Full returns the version string including the commit.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
