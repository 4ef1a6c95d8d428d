package semver

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Compare realizes the SemVer 2.0 total order: core components first,
// then pre-release precedence. Build labels never participate. A nil
// other sorts below any version.
func (v *SemanticVersion) Compare(other *SemanticVersion) int {
	if other == nil {
		return 1
	}
	if c := cmpInt(v.major, other.major); c != 0 {
		return c
	}
	if c := cmpInt(v.minor, other.minor); c != 0 {
		return c
	}
	if c := cmpInt(v.patch, other.patch); c != 0 {
		return c
	}
	return comparePreRelease(v.preRelease, other.preRelease)
}

// Equal reports structural equality on the core components and the
// pre-release label. Build labels are excluded per SemVer 2.0.
func (v *SemanticVersion) Equal(other *SemanticVersion) bool {
	if other == nil {
		return false
	}
	return v.major == other.major &&
		v.minor == other.minor &&
		v.patch == other.patch &&
		v.preRelease == other.preRelease
}

// InRange reports whether min <= v <= max. A nil bound is open.
func (v *SemanticVersion) InRange(min, max *SemanticVersion) error {
	if min != nil && v.Compare(min) < 0 {
		return fmt.Errorf("%w: %s below minimum %s", ErrRange, v, min)
	}
	if max != nil && v.Compare(max) > 0 {
		return fmt.Errorf("%w: %s above maximum %s", ErrRange, v, max)
	}
	return nil
}

// Sort orders versions ascending, in place.
func Sort(versions []*SemanticVersion) {
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].Compare(versions[j]) < 0
	})
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// comparePreRelease orders pre-release labels: absence of a label ranks
// above any label, then dot-split identifiers compare element-wise with
// numeric identifiers below alphanumeric ones, and on an equal prefix
// the longer identifier sequence ranks higher.
func comparePreRelease(a, b string) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}

	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		if c := compareIdentifier(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return cmpInt(len(as), len(bs))
}

func compareIdentifier(a, b string) int {
	an, aNum := numericIdentifier(a)
	bn, bNum := numericIdentifier(b)
	switch {
	case aNum && bNum:
		return cmpInt(an, bn)
	case aNum:
		return -1
	case bNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func numericIdentifier(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	// Degenerate all-digit identifiers too large for int compare as
	// plain strings.
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
