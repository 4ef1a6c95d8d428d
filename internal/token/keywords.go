package token

var keywords = map[string]Kind{
	"begin":        KwBegin,
	"break":        KwBreak,
	"catch":        KwCatch,
	"class":        KwClass,
	"clean":        KwClean,
	"continue":     KwContinue,
	"data":         KwData,
	"define":       KwDefine,
	"do":           KwDo,
	"dynamicparam": KwDynamicparam,
	"else":         KwElse,
	"elseif":       KwElseIf,
	"end":          KwEnd,
	"enum":         KwEnum,
	"exit":         KwExit,
	"filter":       KwFilter,
	"finally":      KwFinally,
	"for":          KwFor,
	"foreach":      KwForeach,
	"from":         KwFrom,
	"function":     KwFunction,
	"hidden":       KwHidden,
	"if":           KwIf,
	"in":           KwIn,
	"inlinescript": KwInlineScript,
	"parallel":     KwParallel,
	"param":        KwParam,
	"process":      KwProcess,
	"return":       KwReturn,
	"sequence":     KwSequence,
	"static":       KwStatic,
	"switch":       KwSwitch,
	"throw":        KwThrow,
	"trap":         KwTrap,
	"try":          KwTry,
	"until":        KwUntil,
	"using":        KwUsing,
	"var":          KwVar,
	"while":        KwWhile,
	"workflow":     KwWorkflow,
}

// LookupKeyword returns the keyword kind for ident, if ident is a
// keyword. The language is case-insensitive but dumps carry keywords
// lowercased, so only lowercase spellings are recognized here.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
