package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRunSemverCompare(t *testing.T) {
	cases := []struct {
		a, b string
		want string
	}{
		{"1.2.3", "1.10.0", "1.2.3 < 1.10.0"},
		{"2.0.0", "2.0.0-rc.1", "2.0.0 > 2.0.0-rc.1"},
		{"1.0.0+b1", "1.0.0+b2", "1.0.0+b1 == 1.0.0+b2"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&buf)

		if err := runSemverCompare(cmd, []string{tc.a, tc.b}); err != nil {
			t.Fatalf("compare %s %s: %v", tc.a, tc.b, err)
		}
		if got := strings.TrimSpace(buf.String()); got != tc.want {
			t.Errorf("compare %s %s = %q, want %q", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestRunSemverCompareRejectsMalformed(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	if err := runSemverCompare(cmd, []string{"1.0.0-", "1.0.0"}); err == nil {
		t.Error("expected error for malformed version")
	}
}

func TestRunSemverSort(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	args := []string{"1.0.0", "1.0.0-alpha", "0.9.0", "1.0.0-alpha.1"}
	if err := runSemverSort(cmd, args); err != nil {
		t.Fatalf("sort: %v", err)
	}

	want := "0.9.0\n1.0.0-alpha\n1.0.0-alpha.1\n1.0.0\n"
	if buf.String() != want {
		t.Errorf("sort output = %q, want %q", buf.String(), want)
	}
}

func TestRunSemverParseJSON(t *testing.T) {
	var buf bytes.Buffer
	semverParseCmd.SetOut(&buf)
	defer semverParseCmd.SetOut(nil)

	if err := semverParseCmd.Flags().Set("format", "json"); err != nil {
		t.Fatalf("failed to set format flag: %v", err)
	}
	defer func() { _ = semverParseCmd.Flags().Set("format", "pretty") }()

	if err := runSemverParse(semverParseCmd, []string{"1.2.3-rc.1+b.5"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"major": 1`, `"preReleaseLabel": "rc.1"`, `"buildLabel": "b.5"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}
