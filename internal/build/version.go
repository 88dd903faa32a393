// Package build carries the version of the elemx binary.
package build

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of elemx.
const Version = "0.3.0"

// FullVersion returns the version plus the VCS revision, when the binary was
// built with one, and the Go toolchain and platform.
func FullVersion() string {
	goVersionArch := fmt.Sprintf("%s, %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if commit := revision(); commit != "" {
		return fmt.Sprintf("%s (commit/%s, %s)", Version, commit, goVersionArch)
	}
	return fmt.Sprintf("%s (%s)", Version, goVersionArch)
}

// VersionDetails returns the version information as a map for JSON output.
func VersionDetails() map[string]string {
	details := map[string]string{
		"version":    "v" + Version,
		"go_version": runtime.Version(),
		"go_os":      runtime.GOOS,
		"go_arch":    runtime.GOARCH,
	}
	if commit := revision(); commit != "" {
		details["commit"] = commit
	}
	return details
}

func revision() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var commit string
	var dirty bool
	for _, s := range buildInfo.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
			if len(commit) > 10 {
				commit = commit[:10]
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if commit != "" && dirty {
		commit += "-dirty"
	}
	return commit
}
