package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slate/internal/driver"
	"slate/internal/highlight"
	"slate/internal/tokfmt"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [flags] dump...",
	Short: "Classify raw token dumps",
	Long:  `Classify reads token dumps produced by the tokenizer and maps each raw token to its public category`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClassify,
}

func init() {
	classifyCmd.Flags().String("format", "pretty", "output format (pretty|json|ansi)")
	classifyCmd.Flags().String("theme", "", "TOML theme file for ansi output")
	classifyCmd.Flags().Bool("stats", false, "print a per-category token count summary")
}

func runClassify(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "ansi":
		// supported
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	themePath, err := cmd.Flags().GetString("theme")
	if err != nil {
		return fmt.Errorf("failed to get theme flag: %w", err)
	}
	theme := highlight.DefaultTheme()
	if themePath != "" {
		if theme, err = highlight.LoadTheme(themePath); err != nil {
			return err
		}
	}

	stats, _ := cmd.Flags().GetBool("stats")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	results, err := driver.ClassifyPaths(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		if len(results) > 1 && !quiet {
			fmt.Fprintf(out, "== %s ==\n", res.Path)
		}
		switch format {
		case "pretty":
			err = tokfmt.Pretty(out, res.Tokens)
		case "json":
			err = tokfmt.JSON(out, res.Tokens)
		case "ansi":
			err = highlight.Render(out, res.Source, res.Tokens, theme)
		}
		if err != nil {
			return err
		}
		if stats {
			fmt.Fprint(out, highlight.Legend(res.Tokens))
		}
	}
	return nil
}
