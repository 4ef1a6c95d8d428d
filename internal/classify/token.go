package classify

import (
	"slate/internal/token"
)

// ClassifiedToken is the public view of one classified raw token.
// It is immutable: created once per raw token and owned by the caller.
type ClassifiedToken struct {
	category Category
	content  string

	start       uint32
	length      uint32
	startLine   uint32
	startColumn uint32
	endLine     uint32
	endColumn   uint32
}

// New classifies a raw token and derives its content and position view.
func New(t token.RawToken) ClassifiedToken {
	return ClassifiedToken{
		category:    Classify(t),
		content:     resolveContent(t),
		start:       t.Extent.StartOffset,
		length:      t.Extent.Length(),
		startLine:   t.Extent.StartLine,
		startColumn: t.Extent.StartColumn,
		endLine:     t.Extent.EndLine,
		endColumn:   t.Extent.EndColumn,
	}
}

// resolveContent picks the textual value the consumer should display:
// decoded value for strings, resolved path for variables, raw source
// text otherwise.
func resolveContent(t token.RawToken) string {
	switch {
	case t.IsStringLiteral():
		return t.Value
	case t.IsVariable():
		return t.Path
	default:
		return t.Extent.Text
	}
}

// Category returns the public classification.
func (t ClassifiedToken) Category() Category { return t.category }

// Content returns the resolved textual value of the token.
func (t ClassifiedToken) Content() string { return t.content }

// Start returns the 0-based byte offset where the token begins.
func (t ClassifiedToken) Start() uint32 { return t.start }

// Length returns the number of source bytes the token covers.
func (t ClassifiedToken) Length() uint32 { return t.length }

// StartLine returns the 1-based line the token begins on.
func (t ClassifiedToken) StartLine() uint32 { return t.startLine }

// StartColumn returns the 1-based column the token begins at.
func (t ClassifiedToken) StartColumn() uint32 { return t.startColumn }

// EndLine returns the 1-based line the token ends on.
func (t ClassifiedToken) EndLine() uint32 { return t.endLine }

// EndColumn returns the 1-based column just past the token's last rune.
func (t ClassifiedToken) EndColumn() uint32 { return t.endColumn }

// ClassifyAll classifies a token stream in order, one output per input.
func ClassifyAll(tokens []token.RawToken) []ClassifiedToken {
	out := make([]ClassifiedToken, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, New(t))
	}
	return out
}
