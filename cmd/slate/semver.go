package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"slate/internal/semver"
)

var semverCmd = &cobra.Command{
	Use:   "semver",
	Short: "Parse and compare semantic versions",
}

var semverParseCmd = &cobra.Command{
	Use:   "parse [flags] version",
	Short: "Parse a version string into its components",
	Args:  cobra.ExactArgs(1),
	RunE:  runSemverParse,
}

var semverCompareCmd = &cobra.Command{
	Use:   "compare a b",
	Short: "Compare two versions by SemVer precedence",
	Args:  cobra.ExactArgs(2),
	RunE:  runSemverCompare,
}

var semverSortCmd = &cobra.Command{
	Use:   "sort version...",
	Short: "Sort versions ascending by SemVer precedence",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSemverSort,
}

func init() {
	semverParseCmd.Flags().String("format", "pretty", "output format (pretty|json)")

	semverCmd.AddCommand(semverParseCmd)
	semverCmd.AddCommand(semverCompareCmd)
	semverCmd.AddCommand(semverSortCmd)
}

type semverPayload struct {
	Version         string `json:"version"`
	Major           int    `json:"major"`
	Minor           int    `json:"minor"`
	Patch           int    `json:"patch"`
	PreReleaseLabel string `json:"preReleaseLabel,omitempty"`
	BuildLabel      string `json:"buildLabel,omitempty"`
}

func runSemverParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	v, err := semver.Parse(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return renderSemverJSON(out, v)
	case "pretty":
		fmt.Fprintf(out, "version:     %s\n", v)
		fmt.Fprintf(out, "major:       %d\n", v.Major())
		fmt.Fprintf(out, "minor:       %d\n", v.Minor())
		fmt.Fprintf(out, "patch:       %d\n", v.Patch())
		if v.PreReleaseLabel() != "" {
			fmt.Fprintf(out, "pre-release: %s\n", v.PreReleaseLabel())
		}
		if v.BuildLabel() != "" {
			fmt.Fprintf(out, "build:       %s\n", v.BuildLabel())
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func renderSemverJSON(out io.Writer, v *semver.SemanticVersion) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(semverPayload{
		Version:         v.String(),
		Major:           v.Major(),
		Minor:           v.Minor(),
		Patch:           v.Patch(),
		PreReleaseLabel: v.PreReleaseLabel(),
		BuildLabel:      v.BuildLabel(),
	})
}

func runSemverCompare(cmd *cobra.Command, args []string) error {
	a, err := semver.Parse(args[0])
	if err != nil {
		return err
	}
	b, err := semver.Parse(args[1])
	if err != nil {
		return err
	}

	rel := "=="
	switch a.Compare(b) {
	case -1:
		rel = "<"
	case 1:
		rel = ">"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", a, rel, b)
	return nil
}

func runSemverSort(cmd *cobra.Command, args []string) error {
	versions := make([]*semver.SemanticVersion, 0, len(args))
	for _, arg := range args {
		v, err := semver.Parse(arg)
		if err != nil {
			return err
		}
		versions = append(versions, v)
	}
	semver.Sort(versions)

	out := cmd.OutOrStdout()
	for _, v := range versions {
		fmt.Fprintln(out, v)
	}
	return nil
}
