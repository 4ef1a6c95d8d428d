package semver

import (
	"fmt"
	"regexp"
	"strings"
)

// SemanticVersion is an immutable four-part semantic version per SemVer
// 2.0: a major.minor.patch core, an optional pre-release label, and an
// optional build label that never participates in ordering or equality.
type SemanticVersion struct {
	major      int
	minor      int
	patch      int
	preRelease string
	build      string

	// Canonical form, computed on first String(). Recomputation under a
	// concurrent first render is idempotent, so no synchronization.
	str string
}

// labelRx is the whole-label grammar shared by pre-release and build
// labels. Dot-separated identifiers must additionally be non-empty,
// which the character class alone does not enforce.
var labelRx = regexp.MustCompile(`^[0-9A-Za-z][0-9A-Za-z\-.]*$`)

func validLabel(label string) bool {
	if !labelRx.MatchString(label) {
		return false
	}
	if strings.Contains(label, "..") || strings.HasSuffix(label, ".") {
		return false
	}
	return true
}

func checkComponents(major, minor, patch int) error {
	if major < 0 {
		return fmt.Errorf("%w: major component %d is negative", ErrArgument, major)
	}
	if minor < 0 {
		return fmt.Errorf("%w: minor component %d is negative", ErrArgument, minor)
	}
	if patch < 0 {
		return fmt.Errorf("%w: patch component %d is negative", ErrArgument, patch)
	}
	return nil
}

// New constructs a version from bare numeric components.
func New(major, minor, patch int) (*SemanticVersion, error) {
	if err := checkComponents(major, minor, patch); err != nil {
		return nil, err
	}
	return &SemanticVersion{major: major, minor: minor, patch: patch}, nil
}

// NewFull constructs a version with separate pre-release and build
// labels. Empty labels mean absent.
func NewFull(major, minor, patch int, preRelease, build string) (*SemanticVersion, error) {
	if err := checkComponents(major, minor, patch); err != nil {
		return nil, err
	}
	if preRelease != "" && !validLabel(preRelease) {
		return nil, fmt.Errorf("%w: pre-release label %q", ErrFormat, preRelease)
	}
	if build != "" && !validLabel(build) {
		return nil, fmt.Errorf("%w: build label %q", ErrFormat, build)
	}
	return &SemanticVersion{
		major:      major,
		minor:      minor,
		patch:      patch,
		preRelease: preRelease,
		build:      build,
	}, nil
}

// NewWithLabel constructs a version from a combined label in the
// "pre+build", "pre", or "+build" form.
func NewWithLabel(major, minor, patch int, label string) (*SemanticVersion, error) {
	pre := label
	build := ""
	if i := strings.IndexByte(label, '+'); i >= 0 {
		pre, build = label[:i], label[i+1:]
		if build == "" {
			return nil, fmt.Errorf("%w: empty build segment in label %q", ErrFormat, label)
		}
	}
	return NewFull(major, minor, patch, pre, build)
}

// Major returns the major component.
func (v *SemanticVersion) Major() int { return v.major }

// Minor returns the minor component.
func (v *SemanticVersion) Minor() int { return v.minor }

// Patch returns the patch component.
func (v *SemanticVersion) Patch() int { return v.patch }

// PreReleaseLabel returns the pre-release label, empty if absent.
func (v *SemanticVersion) PreReleaseLabel() string { return v.preRelease }

// BuildLabel returns the build label, empty if absent.
func (v *SemanticVersion) BuildLabel() string { return v.build }

// String renders the canonical "major.minor.patch[-pre][+build]" form.
// The result is cached; a canonical string always round-trips through
// Parse to an equal version.
func (v *SemanticVersion) String() string {
	if v.str == "" {
		var b strings.Builder
		fmt.Fprintf(&b, "%d.%d.%d", v.major, v.minor, v.patch)
		if v.preRelease != "" {
			b.WriteByte('-')
			b.WriteString(v.preRelease)
		}
		if v.build != "" {
			b.WriteByte('+')
			b.WriteString(v.build)
		}
		v.str = b.String()
	}
	return v.str
}

// MarshalText implements encoding.TextMarshaler.
func (v *SemanticVersion) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *SemanticVersion) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}
