package token

import (
	"slate/internal/source"
)

// RawToken is a single lexical unit handed over by the upstream
// tokenizer. Value and Path are optional side channels: Value carries
// the decoded text of string literals (quotes and escapes resolved),
// Path carries the resolved path of variable references.
type RawToken struct {
	Kind   Kind
	Flags  Flags
	Extent source.Extent
	Value  string
	Path   string
}

// IsStringLiteral reports whether the token is one of the string-literal
// kind variants.
func (t RawToken) IsStringLiteral() bool {
	_, ok := stringSet[t.Kind]
	return ok
}

// IsVariable reports whether the token is a variable reference.
func (t RawToken) IsVariable() bool {
	_, ok := variableSet[t.Kind]
	return ok
}

// IsOperator reports whether the token is an operator.
func (t RawToken) IsOperator() bool {
	_, ok := operatorSet[t.Kind]
	return ok
}

// IsKeyword reports whether the token is a language keyword.
func (t RawToken) IsKeyword() bool {
	_, ok := keywordSet[t.Kind]
	return ok
}

// Text returns the raw source text the token covers.
func (t RawToken) Text() string { return t.Extent.Text }
