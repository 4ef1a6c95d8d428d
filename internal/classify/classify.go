package classify

import (
	"slate/internal/token"
)

// overrideRule recategorizes a token by context flag regardless of its
// lexical kind. Rules are evaluated top to bottom; the first match wins.
type overrideRule struct {
	flag     token.Flags
	category Category
}

// Order matters: a token carrying both CommandName and MemberName (the
// tokenizer should not produce one, but dumps are external input)
// classifies as Command.
var overrideRules = []overrideRule{
	{token.FlagCommandName, Command},
	{token.FlagMemberName, Member},
	{token.FlagAttributeName, Attribute},
	{token.FlagTypeName, Type},
}

// kindCategories maps every classifiable raw kind to its category.
// Kinds absent from the table (reserved slots in newer tokenizer
// revisions) classify as Unknown.
var kindCategories = buildKindTable()

func buildKindTable() map[token.Kind]Category {
	m := map[token.Kind]Category{
		token.Unknown:          Unknown,
		token.EndOfInput:       Unknown,
		token.NewLine:          NewLine,
		token.LineContinuation: LineContinuation,
		token.Comment:          Comment,

		token.Identifier:       CommandArgument,
		token.Generic:          CommandArgument,
		token.Variable:         Variable,
		token.SplattedVariable: Variable,
		token.Parameter:        CommandParameter,
		token.Number:           Number,
		token.Label:            LoopLabel,

		// Parens and curlies group; brackets are operators. The
		// asymmetry is part of the public contract.
		token.LParen:      GroupStart,
		token.RParen:      GroupEnd,
		token.LCurly:      GroupStart,
		token.RCurly:      GroupEnd,
		token.LBracket:    Operator,
		token.RBracket:    Operator,
		token.AtParen:     GroupStart,
		token.AtCurly:     GroupStart,
		token.DollarParen: GroupStart,
		token.Semi:        StatementSeparator,
		token.Comma:       Operator,
	}
	for _, k := range token.StringKinds() {
		m[k] = String
	}
	for _, k := range token.OperatorKinds() {
		m[k] = Operator
	}
	for _, k := range token.KeywordKinds() {
		m[k] = Keyword
	}
	return m
}

// Classify maps a raw token to its public category. It is pure and
// total: identical (Kind, Flags) inputs always produce the same
// category, and unmapped kinds fall back to Unknown rather than fail.
func Classify(t token.RawToken) Category {
	for _, rule := range overrideRules {
		if t.Flags.Has(rule.flag) {
			return rule.category
		}
	}
	if c, ok := kindCategories[t.Kind]; ok {
		return c
	}
	return Unknown
}
