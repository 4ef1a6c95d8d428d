package token

// kindNames is the canonical Kind -> dump-name table. Names match the
// constant identifiers so dumps stay greppable against this file.
var kindNames = map[Kind]string{
	Unknown:          "Unknown",
	EndOfInput:       "EndOfInput",
	NewLine:          "NewLine",
	LineContinuation: "LineContinuation",
	Comment:          "Comment",

	Identifier:       "Identifier",
	Generic:          "Generic",
	Variable:         "Variable",
	SplattedVariable: "SplattedVariable",
	Parameter:        "Parameter",
	Number:           "Number",
	Label:            "Label",

	StringLit:            "StringLit",
	StringExpandable:     "StringExpandable",
	HereStringLit:        "HereStringLit",
	HereStringExpandable: "HereStringExpandable",

	LParen:      "LParen",
	RParen:      "RParen",
	LCurly:      "LCurly",
	RCurly:      "RCurly",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	AtParen:     "AtParen",
	AtCurly:     "AtCurly",
	DollarParen: "DollarParen",
	Semi:        "Semi",
	Comma:       "Comma",

	AndAnd:                 "AndAnd",
	OrOr:                   "OrOr",
	Ampersand:              "Ampersand",
	Pipe:                   "Pipe",
	Dot:                    "Dot",
	DotDot:                 "DotDot",
	ColonColon:             "ColonColon",
	Exclaim:                "Exclaim",
	Multiply:               "Multiply",
	Divide:                 "Divide",
	Rem:                    "Rem",
	Plus:                   "Plus",
	Minus:                  "Minus",
	Equals:                 "Equals",
	PlusEquals:             "PlusEquals",
	MinusEquals:            "MinusEquals",
	MultiplyEquals:         "MultiplyEquals",
	DivideEquals:           "DivideEquals",
	RemainderEquals:        "RemainderEquals",
	PlusPlus:               "PlusPlus",
	MinusMinus:             "MinusMinus",
	PostfixPlusPlus:        "PostfixPlusPlus",
	PostfixMinusMinus:      "PostfixMinusMinus",
	Redirection:            "Redirection",
	RedirectInStd:          "RedirectInStd",
	Format:                 "Format",
	Not:                    "Not",
	Bnot:                   "Bnot",
	And:                    "And",
	Or:                     "Or",
	Xor:                    "Xor",
	Band:                   "Band",
	Bor:                    "Bor",
	Bxor:                   "Bxor",
	Join:                   "Join",
	Shl:                    "Shl",
	Shr:                    "Shr",
	Ieq:                    "Ieq",
	Ine:                    "Ine",
	Ige:                    "Ige",
	Igt:                    "Igt",
	Ilt:                    "Ilt",
	Ile:                    "Ile",
	Ilike:                  "Ilike",
	Inotlike:               "Inotlike",
	Imatch:                 "Imatch",
	Inotmatch:              "Inotmatch",
	Ireplace:               "Ireplace",
	Icontains:              "Icontains",
	Inotcontains:           "Inotcontains",
	Iin:                    "Iin",
	Inotin:                 "Inotin",
	Isplit:                 "Isplit",
	Ceq:                    "Ceq",
	Cne:                    "Cne",
	Cge:                    "Cge",
	Cgt:                    "Cgt",
	Clt:                    "Clt",
	Cle:                    "Cle",
	Clike:                  "Clike",
	Cnotlike:               "Cnotlike",
	Cmatch:                 "Cmatch",
	Cnotmatch:              "Cnotmatch",
	Creplace:               "Creplace",
	Ccontains:              "Ccontains",
	Cnotcontains:           "Cnotcontains",
	Cin:                    "Cin",
	Cnotin:                 "Cnotin",
	Csplit:                 "Csplit",
	Is:                     "Is",
	IsNot:                  "IsNot",
	As:                     "As",
	QuestionDot:            "QuestionDot",
	QuestionLBracket:       "QuestionLBracket",
	QuestionQuestion:       "QuestionQuestion",
	QuestionQuestionEquals: "QuestionQuestionEquals",
	QuestionMark:           "QuestionMark",
	Colon:                  "Colon",

	KwBegin:        "KwBegin",
	KwBreak:        "KwBreak",
	KwCatch:        "KwCatch",
	KwClass:        "KwClass",
	KwClean:        "KwClean",
	KwContinue:     "KwContinue",
	KwData:         "KwData",
	KwDefine:       "KwDefine",
	KwDo:           "KwDo",
	KwDynamicparam: "KwDynamicparam",
	KwElse:         "KwElse",
	KwElseIf:       "KwElseIf",
	KwEnd:          "KwEnd",
	KwEnum:         "KwEnum",
	KwExit:         "KwExit",
	KwFilter:       "KwFilter",
	KwFinally:      "KwFinally",
	KwFor:          "KwFor",
	KwForeach:      "KwForeach",
	KwFrom:         "KwFrom",
	KwFunction:     "KwFunction",
	KwHidden:       "KwHidden",
	KwIf:           "KwIf",
	KwIn:           "KwIn",
	KwInlineScript: "KwInlineScript",
	KwParallel:     "KwParallel",
	KwParam:        "KwParam",
	KwProcess:      "KwProcess",
	KwReturn:       "KwReturn",
	KwSequence:     "KwSequence",
	KwStatic:       "KwStatic",
	KwSwitch:       "KwSwitch",
	KwThrow:        "KwThrow",
	KwTrap:         "KwTrap",
	KwTry:          "KwTry",
	KwUntil:        "KwUntil",
	KwUsing:        "KwUsing",
	KwVar:          "KwVar",
	KwWhile:        "KwWhile",
	KwWorkflow:     "KwWorkflow",
}
