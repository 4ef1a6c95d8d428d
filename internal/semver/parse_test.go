package semver

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, s string) *SemanticVersion {
	t.Helper()
	v, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", s, err)
	}
	return v
}

func TestParseValid(t *testing.T) {
	cases := []struct {
		in         string
		major      int
		minor      int
		patch      int
		preRelease string
		build      string
	}{
		{"1.2.3", 1, 2, 3, "", ""},
		{"0.0.0", 0, 0, 0, "", ""},
		{"1", 1, 0, 0, "", ""},
		{"1.2", 1, 2, 0, "", ""},
		{"10.20.30", 10, 20, 30, "", ""},
		{"1.0.0-alpha", 1, 0, 0, "alpha", ""},
		{"1.0.0-alpha.1", 1, 0, 0, "alpha.1", ""},
		{"1.0.0-0.3.7", 1, 0, 0, "0.3.7", ""},
		{"1.0.0+build.5", 1, 0, 0, "", "build.5"},
		{"1.2.3-alpha.1+build.5", 1, 2, 3, "alpha.1", "build.5"},
		{"1.0.0-rc-1", 1, 0, 0, "rc-1", ""},
		// A dash after the plus belongs to the build label.
		{"1.0.0+build-1", 1, 0, 0, "", "build-1"},
		{"1.0.0-pre-1+b-2", 1, 0, 0, "pre-1", "b-2"},
		{"2-beta", 2, 0, 0, "beta", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			v := mustParse(t, tc.in)
			if v.Major() != tc.major || v.Minor() != tc.minor || v.Patch() != tc.patch {
				t.Errorf("core = %d.%d.%d, want %d.%d.%d",
					v.Major(), v.Minor(), v.Patch(), tc.major, tc.minor, tc.patch)
			}
			if v.PreReleaseLabel() != tc.preRelease {
				t.Errorf("PreReleaseLabel = %q, want %q", v.PreReleaseLabel(), tc.preRelease)
			}
			if v.BuildLabel() != tc.build {
				t.Errorf("BuildLabel = %q, want %q", v.BuildLabel(), tc.build)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []string{
		"",
		"1.0.0-",
		"1.0.0+",
		"1.0.0.",
		"1.0.0-+build",  // empty pre-release segment
		"1.0.0-alpha..1", // empty identifier inside the label
		"1.2.3.4",
		"1.a.3",
		"01x",
		"-alpha",
		"+build",
		".1.2",
		"1..2",
		"1.0.0-_alpha",
		"1.0.0+build!",
		"v1.2.3",
		" 1.2.3",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			if _, err := Parse(in); err == nil {
				t.Errorf("Parse(%q) unexpectedly succeeded", in)
			}
			if v, ok := TryParse(in); ok || v != nil {
				t.Errorf("TryParse(%q) = (%v, %v), want (nil, false)", in, v, ok)
			}
		})
	}
}

func TestParseErrorKinds(t *testing.T) {
	if _, err := Parse(""); !errors.Is(err, ErrArgument) {
		t.Errorf("empty input: got %v, want ErrArgument", err)
	}
	if _, err := Parse("1.0.0-"); !errors.Is(err, ErrFormat) {
		t.Errorf("trailing dash: got %v, want ErrFormat", err)
	}
	if _, err := Parse("99999999999999999999.0.0"); !errors.Is(err, ErrOverflow) {
		t.Errorf("huge component: got %v, want ErrOverflow", err)
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	canonical := []string{
		"0.0.0",
		"1.2.3",
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0+build.5",
		"1.2.3-alpha.1+build.5",
		"1.0.0-pre-1+b-2",
	}
	for _, s := range canonical {
		if got := mustParse(t, s).String(); got != s {
			t.Errorf("Parse(%q).String() = %q", s, got)
		}
	}
}

func TestShorthandNormalizes(t *testing.T) {
	cases := []struct{ in, want string }{
		{"1", "1.0.0"},
		{"1.2", "1.2.0"},
		{"2-beta", "2.0.0-beta"},
		{"3+b", "3.0.0+b"},
	}
	for _, tc := range cases {
		if got := mustParse(t, tc.in).String(); got != tc.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTryParseSuccess(t *testing.T) {
	v, ok := TryParse("1.2.3-rc.1")
	if !ok || v == nil {
		t.Fatal("TryParse of a valid version failed")
	}
	if v.String() != "1.2.3-rc.1" {
		t.Errorf("String() = %q, want %q", v.String(), "1.2.3-rc.1")
	}
}
