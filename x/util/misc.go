package util

import (
	"runtime/debug"
)

// GetGitHash returns the git hash of the current build.
func GetGitHash() string {
	hash := "unknown"
	if info, available := debug.ReadBuildInfo(); available {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				hash = setting.Value
				break
			}
		}
	}
	return hash
}

// GetVersion returns the module version of the current build,
// falling back to the vcs revision for development builds.
func GetVersion() string {
	version := "unknown"
	if info, available := debug.ReadBuildInfo(); available {
		version = info.Main.Version
	}
	if version == "(devel)" || version == "unknown" {
		hash := GetGitHash()
		if len(hash) > 7 {
			hash = hash[:7]
		}
		return "devel-" + hash
	}
	return version
}
