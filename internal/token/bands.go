package token

// Band accessors expose the kind groups the classifier's table is built
// from. Returned slices are shared; callers must not mutate them.

var operatorKinds = []Kind{
	AndAnd, OrOr, Ampersand, Pipe, Dot, DotDot, ColonColon, Exclaim,
	Multiply, Divide, Rem, Plus, Minus,
	Equals, PlusEquals, MinusEquals, MultiplyEquals, DivideEquals, RemainderEquals,
	PlusPlus, MinusMinus, PostfixPlusPlus, PostfixMinusMinus,
	Redirection, RedirectInStd, Format,
	Not, Bnot, And, Or, Xor, Band, Bor, Bxor, Join, Shl, Shr,
	Ieq, Ine, Ige, Igt, Ilt, Ile, Ilike, Inotlike, Imatch, Inotmatch,
	Ireplace, Icontains, Inotcontains, Iin, Inotin, Isplit,
	Ceq, Cne, Cge, Cgt, Clt, Cle, Clike, Cnotlike, Cmatch, Cnotmatch,
	Creplace, Ccontains, Cnotcontains, Cin, Cnotin, Csplit,
	Is, IsNot, As,
	QuestionDot, QuestionLBracket, QuestionQuestion, QuestionQuestionEquals,
	QuestionMark, Colon,
}

var keywordKinds = []Kind{
	KwBegin, KwBreak, KwCatch, KwClass, KwClean, KwContinue, KwData,
	KwDefine, KwDo, KwDynamicparam, KwElse, KwElseIf, KwEnd, KwEnum,
	KwExit, KwFilter, KwFinally, KwFor, KwForeach, KwFrom, KwFunction,
	KwHidden, KwIf, KwIn, KwInlineScript, KwParallel, KwParam, KwProcess,
	KwReturn, KwSequence, KwStatic, KwSwitch, KwThrow, KwTrap, KwTry,
	KwUntil, KwUsing, KwVar, KwWhile, KwWorkflow,
}

var stringKinds = []Kind{
	StringLit, StringExpandable, HereStringLit, HereStringExpandable,
}

var variableKinds = []Kind{
	Variable, SplattedVariable,
}

// OperatorKinds returns every operator kind, comparison and arithmetic
// alike.
func OperatorKinds() []Kind { return operatorKinds }

// KeywordKinds returns every language keyword kind.
func KeywordKinds() []Kind { return keywordKinds }

// StringKinds returns the string-literal kind variants.
func StringKinds() []Kind { return stringKinds }

// VariableKinds returns the variable-reference kind variants.
func VariableKinds() []Kind { return variableKinds }

var (
	operatorSet = kindSet(operatorKinds)
	keywordSet  = kindSet(keywordKinds)
	stringSet   = kindSet(stringKinds)
	variableSet = kindSet(variableKinds)
)

func kindSet(kinds []Kind) map[Kind]struct{} {
	m := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		m[k] = struct{}{}
	}
	return m
}
