package semver

import "errors"

var (
	// ErrFormat indicates a version string that does not match the
	// semantic-version grammar.
	ErrFormat = errors.New("invalid semantic version format")
	// ErrOverflow indicates a numeric component too large to represent.
	ErrOverflow = errors.New("version component overflows")
	// ErrArgument indicates an empty input or a negative component
	// passed to a direct constructor.
	ErrArgument = errors.New("invalid version argument")
	// ErrRange indicates a version outside a caller-supplied range.
	ErrRange = errors.New("version out of range")
)
