package semver

import "fmt"

// NumericVersion is the plain three-component interop form used by
// tooling that predates semantic versions. Revision is its legacy
// fourth slot; -1 means unset.
type NumericVersion struct {
	Major    int
	Minor    int
	Patch    int
	Revision int
}

// LabelMetadata is the explicit side channel that keeps labels
// recoverable across a numeric conversion round trip.
type LabelMetadata struct {
	PreRelease string
	Build      string
}

// ToNumeric converts to the plain numeric form. When the version
// carries labels they are returned as side metadata; the round-trip law
// FromNumeric(v.ToNumeric()) == v holds including labels.
func (v *SemanticVersion) ToNumeric() (NumericVersion, *LabelMetadata) {
	n := NumericVersion{
		Major:    v.major,
		Minor:    v.minor,
		Patch:    v.patch,
		Revision: -1,
	}
	if v.preRelease == "" && v.build == "" {
		return n, nil
	}
	return n, &LabelMetadata{PreRelease: v.preRelease, Build: v.build}
}

// FromNumeric converts a numeric version back, reattaching label
// metadata if present. A positive Revision has no semantic-version
// equivalent and is rejected.
func FromNumeric(n NumericVersion, labels *LabelMetadata) (*SemanticVersion, error) {
	if n.Revision > 0 {
		return nil, fmt.Errorf("%w: revision component %d has no semantic version equivalent", ErrArgument, n.Revision)
	}
	if labels == nil {
		return New(n.Major, n.Minor, n.Patch)
	}
	return NewFull(n.Major, n.Minor, n.Patch, labels.PreRelease, labels.Build)
}
