package tokfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"slate/internal/classify"
)

// Output is the stable JSON shape for one classified token.
type Output struct {
	Category    string `json:"category"`
	Content     string `json:"content,omitempty"`
	Start       uint32 `json:"start"`
	Length      uint32 `json:"length"`
	StartLine   uint32 `json:"startLine"`
	StartColumn uint32 `json:"startColumn"`
	EndLine     uint32 `json:"endLine"`
	EndColumn   uint32 `json:"endColumn"`
}

// Pretty writes a human-readable token listing: index, category,
// content, and position range.
func Pretty(w io.Writer, tokens []classify.ClassifiedToken) error {
	contentWidth := 0
	for _, t := range tokens {
		if w := runewidth.StringWidth(t.Content()); w > contentWidth {
			contentWidth = w
		}
	}
	if contentWidth > 40 {
		contentWidth = 40
	}

	for i, t := range tokens {
		content := runewidth.Truncate(t.Content(), contentWidth, "…")
		pad := contentWidth - runewidth.StringWidth(content)

		if _, err := fmt.Fprintf(w, "%3d: %-18s %q%*s at %d:%d-%d:%d (offset %d, len %d)\n",
			i+1, t.Category().String(), content, pad, "",
			t.StartLine(), t.StartColumn(), t.EndLine(), t.EndColumn(),
			t.Start(), t.Length()); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes the token listing as indented JSON.
func JSON(w io.Writer, tokens []classify.ClassifiedToken) error {
	out := make([]Output, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, Output{
			Category:    t.Category().String(),
			Content:     t.Content(),
			Start:       t.Start(),
			Length:      t.Length(),
			StartLine:   t.StartLine(),
			StartColumn: t.StartColumn(),
			EndLine:     t.EndLine(),
			EndColumn:   t.EndColumn(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
