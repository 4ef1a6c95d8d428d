package token

// Kind represents the lexical kind of a raw token as produced by the
// upstream tokenizer. The enumeration is versioned with the tokenizer;
// reserved slots may appear in dumps produced by newer tokenizers and
// must be tolerated by consumers.
type Kind uint8

const (
	// Unknown indicates an unrecognized or erroneous token.
	Unknown Kind = iota
	// EndOfInput marks the end of the token stream.
	EndOfInput
	// NewLine represents a statement-terminating line break.
	NewLine
	// LineContinuation represents an escaped line break joining two lines.
	LineContinuation
	// Comment represents a single-line or block comment.
	Comment

	// Identifier represents a bare identifier in an expression position.
	Identifier
	// Generic represents a generic bareword whose role depends on context.
	Generic
	// Variable represents a variable reference.
	Variable
	// SplattedVariable represents a variable reference being splatted
	// into a command's arguments.
	SplattedVariable
	// Parameter represents a command parameter such as -Name.
	Parameter
	// Number represents a numeric literal.
	Number
	// Label represents a loop label such as :outer.
	Label

	// StringLit represents a single-quoted (verbatim) string literal.
	StringLit
	// StringExpandable represents a double-quoted string literal with
	// embedded expansions.
	StringExpandable
	// HereStringLit represents a verbatim here-string.
	HereStringLit
	// HereStringExpandable represents an expandable here-string.
	HereStringExpandable

	// Punctuators. Parens and curlies open or close groups; brackets are
	// index/type operators and deliberately do not group.

	LParen       // (
	RParen       // )
	LCurly       // {
	RCurly       // }
	LBracket     // [
	RBracket     // ]
	AtParen      // @(
	AtCurly      // @{
	DollarParen  // $(
	Semi         // ;
	Comma        // ,

	// Operators.

	AndAnd             // &&
	OrOr               // ||
	Ampersand          // &
	Pipe               // |
	Dot                // .
	DotDot             // ..
	ColonColon         // ::
	Exclaim            // !
	Multiply           // *
	Divide             // /
	Rem                // %
	Plus               // +
	Minus              // -
	Equals             // =
	PlusEquals         // +=
	MinusEquals        // -=
	MultiplyEquals     // *=
	DivideEquals       // /=
	RemainderEquals    // %=
	PlusPlus           // ++ (prefix)
	MinusMinus         // -- (prefix)
	PostfixPlusPlus    // ++ (postfix)
	PostfixMinusMinus  // -- (postfix)
	Redirection        // 2>&1, >, >>
	RedirectInStd      // <
	Format             // -f
	Not                // -not
	Bnot               // -bnot
	And                // -and
	Or                 // -or
	Xor                // -xor
	Band               // -band
	Bor                // -bor
	Bxor               // -bxor
	Join               // -join
	Shl                // -shl
	Shr                // -shr
	Ieq                // -eq, -ieq
	Ine                // -ne, -ine
	Ige                // -ge, -ige
	Igt                // -gt, -igt
	Ilt                // -lt, -ilt
	Ile                // -le, -ile
	Ilike              // -like, -ilike
	Inotlike           // -notlike, -inotlike
	Imatch             // -match, -imatch
	Inotmatch          // -notmatch, -inotmatch
	Ireplace           // -replace, -ireplace
	Icontains          // -contains, -icontains
	Inotcontains       // -notcontains, -inotcontains
	Iin                // -in, -iin
	Inotin             // -notin, -inotin
	Isplit             // -split, -isplit
	Ceq                // -ceq
	Cne                // -cne
	Cge                // -cge
	Cgt                // -cgt
	Clt                // -clt
	Cle                // -cle
	Clike              // -clike
	Cnotlike           // -cnotlike
	Cmatch             // -cmatch
	Cnotmatch          // -cnotmatch
	Creplace           // -creplace
	Ccontains          // -ccontains
	Cnotcontains       // -cnotcontains
	Cin                // -cin
	Cnotin             // -cnotin
	Csplit             // -csplit
	Is                 // -is
	IsNot              // -isnot
	As                 // -as
	QuestionDot        // ?.
	QuestionLBracket   // ?[
	QuestionQuestion   // ??
	QuestionQuestionEquals // ??=
	QuestionMark       // ? (ternary)
	Colon              // : (ternary)

	// Keywords.

	KwBegin        // begin
	KwBreak        // break
	KwCatch        // catch
	KwClass        // class
	KwClean        // clean
	KwContinue     // continue
	KwData         // data
	KwDefine       // define
	KwDo           // do
	KwDynamicparam // dynamicparam
	KwElse         // else
	KwElseIf       // elseif
	KwEnd          // end
	KwEnum         // enum
	KwExit         // exit
	KwFilter       // filter
	KwFinally      // finally
	KwFor          // for
	KwForeach      // foreach
	KwFrom         // from
	KwFunction     // function
	KwHidden       // hidden
	KwIf           // if
	KwIn           // in
	KwInlineScript // inlinescript
	KwParallel     // parallel
	KwParam        // param
	KwProcess      // process
	KwReturn       // return
	KwSequence     // sequence
	KwStatic       // static
	KwSwitch       // switch
	KwThrow        // throw
	KwTrap         // trap
	KwTry          // try
	KwUntil        // until
	KwUsing        // using
	KwVar          // var
	KwWhile        // while
	KwWorkflow     // workflow

	kindCount // sentinel, keep last
)

// String returns the canonical name of the kind, as used in token dumps.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// KindFromName resolves a dump kind name back to a Kind. Names produced
// by newer tokenizer revisions resolve to (Unknown, false).
func KindFromName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()
