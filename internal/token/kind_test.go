package token_test

import (
	"testing"

	"slate/internal/token"
)

func TestKindNameRoundTrip(t *testing.T) {
	kinds := []token.Kind{
		token.Unknown, token.EndOfInput, token.NewLine, token.Comment,
		token.Generic, token.Variable, token.Parameter, token.Number,
		token.StringLit, token.HereStringExpandable,
		token.LParen, token.RBracket, token.AtCurly, token.Semi,
		token.AndAnd, token.Ieq, token.Csplit, token.QuestionQuestionEquals,
		token.KwBegin, token.KwWorkflow,
	}
	for _, k := range kinds {
		name := k.String()
		if name == "" {
			t.Fatalf("kind %d has empty name", k)
		}
		back, ok := token.KindFromName(name)
		if !ok {
			t.Fatalf("KindFromName(%q) not found", name)
		}
		if back != k {
			t.Errorf("KindFromName(%q) = %v, want %v", name, back, k)
		}
	}
}

func TestKindFromNameUnknown(t *testing.T) {
	if _, ok := token.KindFromName("FutureReservedKind"); ok {
		t.Error("unexpected hit for a name from a newer tokenizer revision")
	}
}

func TestReservedKindStringIsUnknown(t *testing.T) {
	if got := token.Kind(250).String(); got != "Unknown" {
		t.Errorf("reserved kind String() = %q, want Unknown", got)
	}
}

func tok(k token.Kind) token.RawToken {
	return token.RawToken{Kind: k}
}

func TestIsOperator(t *testing.T) {
	ops := []token.Kind{
		token.AndAnd, token.OrOr, token.Pipe, token.Dot, token.DotDot,
		token.Plus, token.Minus, token.Equals, token.PlusEquals,
		token.Redirection, token.Format, token.Not, token.Band,
		token.Ieq, token.Inotmatch, token.Ceq, token.Cnotin,
		token.Is, token.IsNot, token.As,
		token.QuestionDot, token.QuestionQuestion, token.QuestionMark,
	}
	for _, k := range ops {
		if !tok(k).IsOperator() {
			t.Errorf("%v should be operator", k)
		}
	}
	non := []token.Kind{token.Generic, token.KwIf, token.Number, token.LParen, token.Semi}
	for _, k := range non {
		if tok(k).IsOperator() {
			t.Errorf("%v must NOT be operator", k)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	kws := []token.Kind{
		token.KwBegin, token.KwBreak, token.KwCatch, token.KwDo,
		token.KwForeach, token.KwFunction, token.KwIf, token.KwParam,
		token.KwSwitch, token.KwTry, token.KwWhile, token.KwWorkflow,
	}
	for _, k := range kws {
		if !tok(k).IsKeyword() {
			t.Errorf("%v should be keyword", k)
		}
	}
	if tok(token.Generic).IsKeyword() {
		t.Error("Generic must NOT be keyword")
	}
}

func TestIsStringLiteral(t *testing.T) {
	strs := []token.Kind{
		token.StringLit, token.StringExpandable,
		token.HereStringLit, token.HereStringExpandable,
	}
	for _, k := range strs {
		if !tok(k).IsStringLiteral() {
			t.Errorf("%v should be string literal", k)
		}
	}
	if tok(token.Number).IsStringLiteral() {
		t.Error("Number must NOT be string literal")
	}
}

func TestIsVariable(t *testing.T) {
	if !tok(token.Variable).IsVariable() {
		t.Error("Variable should be variable")
	}
	if !tok(token.SplattedVariable).IsVariable() {
		t.Error("SplattedVariable should be variable")
	}
	if tok(token.Generic).IsVariable() {
		t.Error("Generic must NOT be variable")
	}
}
