package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestColored_PlainWithoutColor(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	origVersion := Version
	defer func() { Version = origVersion }()

	Version = "1.2.3-rc1"
	if got := Colored(); got != "1.2.3-rc1" {
		t.Errorf("Colored() = %q, want %q", got, "1.2.3-rc1")
	}

	Version = "dev"
	if got := Colored(); got != "dev" {
		t.Errorf("Colored() = %q, want %q", got, "dev")
	}
}

func TestString_IncludesBuildInfo(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version = "1.2.3"
	GitCommit = "abc123"
	BuildDate = "2024-01-15T10:30:00Z"

	want := "1.2.3 (abc123) built 2024-01-15T10:30:00Z"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
