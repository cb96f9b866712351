// Package version reports build metadata for the tally binary.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

// Set with -ldflags "-X git.sr.ht/~jakintosh/tally/internal/version.version=v1.2.3".
var (
	version = ""
	commit  = ""
	date    = ""
)

const unknown = "unknown"

// Info is the build metadata of the binary.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
}

// String formats the info for `tally version`.
func (i Info) String() string {
	return fmt.Sprintf("tally %s (commit %s, built %s)", i.Version, i.Commit, i.BuildDate)
}

var (
	once sync.Once
	info Info
)

// Data returns the link-time metadata, completed from the module build info.
func Data() Info {
	once.Do(func() {
		bi, _ := debug.ReadBuildInfo()
		info = resolve(Info{Version: version, Commit: commit, BuildDate: date}, bi)
	})
	return info
}

// resolve fills the blanks in linked from bi, which may be nil.
func resolve(linked Info, bi *debug.BuildInfo) Info {
	out := Info{
		Version:   strings.TrimSpace(linked.Version),
		Commit:    strings.TrimSpace(linked.Commit),
		BuildDate: strings.TrimSpace(linked.BuildDate),
	}

	if bi != nil {
		if isDev(out.Version) && strings.HasPrefix(bi.Main.Version, "v") {
			out.Version = bi.Main.Version
		}
		if out.Commit == "" {
			if rev := setting(bi, "vcs.revision"); rev != "" {
				out.Commit = rev
				if setting(bi, "vcs.modified") == "true" {
					out.Commit += "-dirty"
				}
			}
		}
		if out.BuildDate == "" {
			out.BuildDate = setting(bi, "vcs.time")
			if t, err := time.Parse(time.RFC3339, out.BuildDate); err == nil {
				out.BuildDate = t.UTC().Format(time.RFC3339)
			}
		}
	}

	if isDev(out.Version) {
		out.Version = "dev"
	}
	out.Commit = shorten(out.Commit)
	if out.BuildDate == "" {
		out.BuildDate = unknown
	}
	return out
}

func setting(bi *debug.BuildInfo, key string) string {
	for _, s := range bi.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

func isDev(v string) bool {
	return v == "" || v == "dev" || v == "(devel)"
}

// shorten trims a revision to 12 characters, keeping any -dirty suffix.
func shorten(commit string) string {
	const short = 12
	if commit == "" {
		return unknown
	}
	rev, dirty := strings.CutSuffix(commit, "-dirty")
	if len(rev) > short {
		rev = rev[:short]
	}
	if dirty {
		rev += "-dirty"
	}
	return rev
}
