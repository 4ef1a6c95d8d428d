package highlight

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"slate/internal/classify"
)

// Render repaints src with per-token styling. Bytes not covered by any
// token (whitespace, gaps) pass through verbatim, so the output differs
// from the input only by escape sequences.
func Render(w io.Writer, src string, tokens []classify.ClassifiedToken, theme Theme) error {
	ordered := make([]classify.ClassifiedToken, len(tokens))
	copy(ordered, tokens)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start() < ordered[j].Start()
	})

	var cursor uint32
	srcLen := uint32(len(src))
	for _, t := range ordered {
		start, end := t.Start(), t.Start()+t.Length()
		if end > srcLen {
			return fmt.Errorf("token at offset %d extends past source length %d", start, srcLen)
		}
		// Overlapping tokens keep the earlier paint.
		if start < cursor {
			continue
		}
		if start > cursor {
			if _, err := io.WriteString(w, src[cursor:start]); err != nil {
				return err
			}
		}
		text := src[start:end]
		if c, ok := theme[t.Category()]; ok {
			text = c.Sprint(text)
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
		cursor = end
	}
	if cursor < srcLen {
		if _, err := io.WriteString(w, src[cursor:]); err != nil {
			return err
		}
	}
	return nil
}

var (
	legendTitleStyle = lipgloss.NewStyle().Bold(true)
	legendCountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	legendZeroStyle  = lipgloss.NewStyle().Faint(true)
)

// Legend renders a per-category token count summary.
func Legend(tokens []classify.ClassifiedToken) string {
	counts := make(map[classify.Category]int)
	for _, t := range tokens {
		counts[t.Category()]++
	}

	out := legendTitleStyle.Render(fmt.Sprintf("%d tokens", len(tokens))) + "\n"
	for _, cat := range classify.Categories() {
		n := counts[cat]
		line := fmt.Sprintf("  %-18s %s", cat.String(), legendCountStyle.Render(fmt.Sprintf("%d", n)))
		if n == 0 {
			line = legendZeroStyle.Render(fmt.Sprintf("  %-18s 0", cat.String()))
		}
		out += line + "\n"
	}
	return out
}
