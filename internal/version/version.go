// Package version holds build metadata for the asmir CLI.
// The variables are overridden at build time via -ldflags.
package version

import "github.com/fatih/color"

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colored returns Version with major, minor and patch in distinct colors.
// Color output follows color.NoColor; versions that are not dotted triples
// are returned unchanged.
func Colored() string {
	major, rest, ok := cut(Version, '.')
	if !ok {
		return Version
	}
	minor, rest, ok := cut(rest, '.')
	if !ok {
		return Version
	}
	patch, suffix := rest, ""
	for i := 0; i < len(rest); i++ {
		if rest[i] == '-' || rest[i] == '+' {
			patch, suffix = rest[:i], rest[i:]
			break
		}
	}
	return majorColor.Sprint(major) + "." + minorColor.Sprint(minor) + "." + patchColor.Sprint(patch) + suffix
}

func cut(s string, sep byte) (before, after string, found bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}
