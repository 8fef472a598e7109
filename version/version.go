package version

import (
	"fmt"
	"runtime/debug"
)

// Overridden with -ldflags -X at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// buildSetting looks key up in the VCS settings the toolchain embeds.
func buildSetting(key string) (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value, true
		}
	}
	return "", false
}

// GetVersion returns the link time version, then the module version, then
// "development".
func GetVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "development"
}

func GetCommit() string {
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	if rev, ok := buildSetting("vcs.revision"); ok {
		return rev
	}
	return "unknown"
}

func GetBuildDate() string {
	if Date != "" && Date != "unknown" {
		return Date
	}
	if at, ok := buildSetting("vcs.time"); ok {
		return at
	}
	return "unknown"
}

// GetFullVersion formats the version with a short commit and build date when
// they are known, e.g. "v1.0.0 (0123456, built 2024-01-01T00:00:00Z)".
func GetFullVersion() string {
	v, commit, date := GetVersion(), GetCommit(), GetBuildDate()
	if commit == "unknown" || len(commit) <= 7 {
		return v
	}
	if date == "unknown" {
		return fmt.Sprintf("%s (%s)", v, commit[:7])
	}
	return fmt.Sprintf("%s (%s, built %s)", v, commit[:7], date)
}
