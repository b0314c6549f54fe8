package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	IsDirty   bool   `json:"is_dirty"`
}

// Get returns the version information for the running binary.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = buildInfo.GoVersion
	if info.Version == "dev" && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		info.Version = buildInfo.Main.Version
	}
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = setting.Value
			}
		case "vcs.modified":
			info.IsDirty = setting.Value == "true"
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = setting.Value
			}
		}
	}
	return info
}

// String returns a one-line version string such as "1.2.0 (abc1234, go1.25.0)".
func (i Info) String() string {
	commit := i.GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit != "" && i.IsDirty {
		commit += "-dirty"
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{commit, i.BuildTime, i.GoVersion} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return i.Version
	}
	return fmt.Sprintf("%s (%s)", i.Version, strings.Join(parts, ", "))
}
