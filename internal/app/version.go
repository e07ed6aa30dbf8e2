package app

import (
	"fmt"
	"runtime/debug"
)

// Release metadata, overridable at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/insight-calendar/internal/app.Version=v1.4.0"
//
// When Commit or BuildTime are left unset they are read from the VCS stamp
// the Go toolchain embeds in the binary.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion is the one-line version shown in startup logs, /health and
// insightctl --version.
func BuildVersion() string {
	info, _ := debug.ReadBuildInfo()
	commit, built := stamp(info)
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func stamp(info *debug.BuildInfo) (commit, built string) {
	commit, built = Commit, BuildTime
	if info != nil {
		var dirty bool
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "" {
					commit = shortRevision(s.Value)
				}
			case "vcs.time":
				if built == "" {
					built = s.Value
				}
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
		if dirty && Commit == "" && commit != "" {
			commit += "-dirty"
		}
	}
	if commit == "" {
		commit = "unknown"
	}
	if built == "" {
		built = "unknown"
	}
	return commit, built
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
