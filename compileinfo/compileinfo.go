// Package compileinfo reports how a binary was built, from the VCS metadata
// the Go toolchain embeds at compile time. Risk outputs are only
// interpretable alongside the code revision that produced them, so the CLI
// logs this at startup.
package compileinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

type BuildInfo struct {
	Main         string
	GoVersion    string
	Revision     string
	RevisionTime string
	Dirty        bool
}

func (b BuildInfo) String() string {
	dirty := ""
	if b.Dirty {
		dirty = " (with uncommitted changes)"
	}

	return fmt.Sprintf("%s built with %s from revision %s at %s%s", b.Main, b.GoVersion, b.Revision, b.RevisionTime, dirty)
}

func Get() BuildInfo {
	out := BuildInfo{}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.Main = info.Path
	out.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Revision = s.Value
		case "vcs.time":
			out.RevisionTime = s.Value
		case "vcs.modified":
			out.Dirty = s.Value == "true"
		}
	}

	return out
}

// LogToStderr writes the build provenance to stderr, keeping stdout free for
// tabular results.
func LogToStderr() {
	fmt.Fprintf(os.Stderr, "%s\n", Get())
}
