// Package version reports the readme-agent build version.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/readme-agent/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/readme-agent/internal/version.Commit=abc1234"
//
// When left empty they are filled from the VCS stamp in the build info.
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the short git commit hash
	Commit = ""
)

func init() {
	if Version == "" || Commit == "" {
		info, ok := debug.ReadBuildInfo()
		if ok {
			fillFromSettings(info.Main.Version, info.Settings)
		}
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fillFromSettings derives Version and Commit from module build info.
func fillFromSettings(mainVersion string, settings []debug.BuildSetting) {
	var revision, modified string
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}

	if Commit == "" && revision != "" {
		if len(revision) > 7 {
			revision = revision[:7]
		}
		Commit = revision
		if modified == "true" {
			Commit += "-dirty"
		}
	}

	// "go install module@vX" stamps the module version; local builds say "(devel)"
	if Version == "" && mainVersion != "" && mainVersion != "(devel)" {
		Version = mainVersion
	}
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
