package classify

// Category is the public, stable classification assigned to a token.
// Editor integrations key highlighting off these values, so the set
// changes far more slowly than the raw Kind enumeration behind it.
type Category uint8

const (
	// Unknown is the fallback for unmapped or reserved kinds.
	Unknown Category = iota
	// Command is a token naming the command being invoked.
	Command
	// CommandParameter is a parameter to a command, such as -Name.
	CommandParameter
	// CommandArgument is a bare argument to a command.
	CommandArgument
	// Number is a numeric literal.
	Number
	// String is any string literal variant.
	String
	// Variable is a variable reference.
	Variable
	// Member is a property or method name.
	Member
	// LoopLabel is a loop label such as :outer.
	LoopLabel
	// Attribute is an attribute name.
	Attribute
	// Type is a type name.
	Type
	// Operator is any operator, including brackets.
	Operator
	// GroupStart opens a grouping construct.
	GroupStart
	// GroupEnd closes a grouping construct.
	GroupEnd
	// Keyword is a language keyword.
	Keyword
	// Comment is a comment.
	Comment
	// StatementSeparator separates statements on one line.
	StatementSeparator
	// NewLine is a statement-terminating line break.
	NewLine
	// LineContinuation is an escaped line break.
	LineContinuation
	// Position is a positional marker with no lexical content.
	Position
)

var categoryNames = map[Category]string{
	Unknown:            "Unknown",
	Command:            "Command",
	CommandParameter:   "CommandParameter",
	CommandArgument:    "CommandArgument",
	Number:             "Number",
	String:             "String",
	Variable:           "Variable",
	Member:             "Member",
	LoopLabel:          "LoopLabel",
	Attribute:          "Attribute",
	Type:               "Type",
	Operator:           "Operator",
	GroupStart:         "GroupStart",
	GroupEnd:           "GroupEnd",
	Keyword:            "Keyword",
	Comment:            "Comment",
	StatementSeparator: "StatementSeparator",
	NewLine:            "NewLine",
	LineContinuation:   "LineContinuation",
	Position:           "Position",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// CategoryFromName resolves a category name, as used in theme files.
func CategoryFromName(name string) (Category, bool) {
	for c, n := range categoryNames {
		if n == name {
			return c, true
		}
	}
	return Unknown, false
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryNames))
	for c := Unknown; c <= Position; c++ {
		out = append(out, c)
	}
	return out
}
