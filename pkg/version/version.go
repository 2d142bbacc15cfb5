// Package version exposes build identification for the fistsum binary.
package version

import "runtime/debug"

// Build identification, overridable at link time with -ldflags.
var (
	Version = "dev"
	Commit  = "<unknown>"
	Date    = "<unknown>"
)

// InitBinaryVersion fills unset build identification from the module
// build info embedded by the Go toolchain.
func InitBinaryVersion() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && Commit == "<unknown>" {
			Commit = setting.Value
		}

		if setting.Key == "vcs.time" && Date == "<unknown>" {
			Date = setting.Value
		}
	}
}
