package token

import "strings"

// Flags carries orthogonal context markers the tokenizer attaches to a
// token based on its syntactic position. A Generic or Identifier token
// in command position arrives with FlagCommandName set, and so on.
type Flags uint32

const (
	// FlagNone marks a token with no contextual role.
	FlagNone Flags = 0

	// FlagCommandName marks the token naming the command being invoked.
	FlagCommandName Flags = 1 << iota
	// FlagMemberName marks the token naming a member being accessed.
	FlagMemberName
	// FlagAttributeName marks the token naming an attribute.
	FlagAttributeName
	// FlagTypeName marks the token naming a type.
	FlagTypeName
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagCommandName, "CommandName"},
	{FlagMemberName, "MemberName"},
	{FlagAttributeName, "AttributeName"},
	{FlagTypeName, "TypeName"},
}

// Has reports whether all bits of f are set.
func (fl Flags) Has(f Flags) bool { return fl&f == f }

func (fl Flags) String() string {
	if fl == FlagNone {
		return "None"
	}
	var parts []string
	for _, fn := range flagNames {
		if fl.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}

// FlagFromName resolves a dump flag name back to its bit.
func FlagFromName(name string) (Flags, bool) {
	for _, fn := range flagNames {
		if fn.name == name {
			return fn.flag, true
		}
	}
	return FlagNone, false
}

// Names returns the set flag names in declaration order, for dumps.
func (fl Flags) Names() []string {
	if fl == FlagNone {
		return nil
	}
	var out []string
	for _, fn := range flagNames {
		if fl.Has(fn.flag) {
			out = append(out, fn.name)
		}
	}
	return out
}
