package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestDefaultVersionParses(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	if got := Colorized(); got != Version {
		t.Errorf("Colorized() = %q, want %q with color disabled", got, Version)
	}
}

func TestColorizedPassesThroughNonSemver(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "not a version"
	if got := Colorized(); got != "not a version" {
		t.Errorf("Colorized() = %q, want passthrough", got)
	}
}

func TestVersionCanBeOverridden(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	// Simulates a build-time -ldflags override.
	Version = "1.2.3+build.9"
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	if got := Colorized(); got != "1.2.3+build.9" {
		t.Errorf("Colorized() = %q, want %q", got, "1.2.3+build.9")
	}
}
