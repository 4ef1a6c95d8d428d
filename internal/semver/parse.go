package semver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse parses s in the "major[.minor[.patch]][-pre][+build]" form and
// fails fast on malformed input. Missing minor and patch default to 0.
func Parse(s string) (*SemanticVersion, error) {
	return parse(s)
}

// TryParse is the fail-soft counterpart of Parse: it shares the same
// core and converts every failure into (nil, false).
func TryParse(s string) (*SemanticVersion, bool) {
	v, err := parse(s)
	if err != nil {
		return nil, false
	}
	return v, true
}

func parse(s string) (*SemanticVersion, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty version string", ErrArgument)
	}

	// A trailing separator means a started-but-missing segment.
	switch s[len(s)-1] {
	case '-', '+', '.':
		return nil, fmt.Errorf("%w: %q ends with a separator", ErrFormat, s)
	}

	dash := strings.IndexByte(s, '-')
	plus := strings.IndexByte(s, '+')

	var core, pre, build string
	switch {
	case dash >= 0 && (plus < 0 || dash < plus):
		// First dash precedes any plus: it starts the pre-release
		// label. Later dashes are ordinary label characters.
		core = s[:dash]
		if plus >= 0 {
			pre = s[dash+1 : plus]
			build = s[plus+1:]
		} else {
			pre = s[dash+1:]
		}
		if pre == "" {
			return nil, fmt.Errorf("%w: %q has an empty pre-release segment", ErrFormat, s)
		}
	case plus >= 0:
		// A dash after the first plus belongs to the build label.
		core = s[:plus]
		build = s[plus+1:]
	default:
		core = s
	}

	major, minor, patch, err := parseCore(core, s)
	if err != nil {
		return nil, err
	}
	if pre != "" && !validLabel(pre) {
		return nil, fmt.Errorf("%w: %q has a malformed pre-release label %q", ErrFormat, s, pre)
	}
	if build != "" && !validLabel(build) {
		return nil, fmt.Errorf("%w: %q has a malformed build label %q", ErrFormat, s, build)
	}

	return &SemanticVersion{
		major:      major,
		minor:      minor,
		patch:      patch,
		preRelease: pre,
		build:      build,
	}, nil
}

// parseCore parses the dotted numeric core: major required, minor and
// patch optional, digits only. full is the original input for error
// context.
func parseCore(core, full string) (major, minor, patch int, err error) {
	if core == "" {
		return 0, 0, 0, fmt.Errorf("%w: %q has no version core", ErrFormat, full)
	}
	parts := strings.Split(core, ".")
	if len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q has %d core components, want at most 3", ErrFormat, full, len(parts))
	}
	nums := [3]int{}
	for i, part := range parts {
		n, err := parseComponent(part)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w in %q", err, full)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

func parseComponent(part string) (int, error) {
	if part == "" {
		return 0, fmt.Errorf("%w: empty core component", ErrFormat)
	}
	for i := 0; i < len(part); i++ {
		if part[i] < '0' || part[i] > '9' {
			return 0, fmt.Errorf("%w: non-digit core component %q", ErrFormat, part)
		}
	}
	n, err := strconv.Atoi(part)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: component %q", ErrOverflow, part)
		}
		return 0, fmt.Errorf("%w: core component %q", ErrFormat, part)
	}
	return n, nil
}
