package version

import (
	"github.com/fatih/color"

	"slate/internal/semver"
)

// Version information for the slate CLI.
// These variables can be overridden at build time via -ldflags.

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colorized renders Version with per-component coloring. If Version
// does not parse as a semantic version it is returned unstyled.
func Colorized() string {
	v, ok := semver.TryParse(Version)
	if !ok {
		return Version
	}
	out := versionMajorColor.Sprintf("%d", v.Major()) + "." +
		versionMinorColor.Sprintf("%d", v.Minor()) + "." +
		versionPatchColor.Sprintf("%d", v.Patch())
	if v.PreReleaseLabel() != "" {
		out += "-" + v.PreReleaseLabel()
	}
	if v.BuildLabel() != "" {
		out += "+" + v.BuildLabel()
	}
	return out
}
