package app

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// Version, Commit and BuildTime are set with -ldflags "-X ...app.Version=1.2.3".
// When Commit or BuildTime are left unset they are taken from the VCS
// metadata the go tool embeds in the binary.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var fillFromBuildInfo = sync.OnceFunc(func() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && Commit == "unknown":
			Commit = s.Value
		case s.Key == "vcs.time" && BuildTime == "unknown":
			BuildTime = s.Value
		}
	}
})

// BuildVersion describes the running binary for startup logs, /health and
// the version command.
func BuildVersion() string {
	fillFromBuildInfo()
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
