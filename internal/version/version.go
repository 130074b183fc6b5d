package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the yulfmt binaries.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the tools.
	Version = "0.1.0"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colored renders Version with each component highlighted.
func Colored() string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	out := versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// String returns the full build description.
func String() string {
	var b strings.Builder
	b.WriteString(Colored())
	if GitCommit != "" {
		b.WriteString(" (" + GitCommit + ")")
	}
	if BuildDate != "" {
		b.WriteString(" built " + BuildDate)
	}
	return b.String()
}
