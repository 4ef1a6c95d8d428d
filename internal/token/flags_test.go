package token_test

import (
	"testing"

	"slate/internal/token"
)

func TestFlagsHas(t *testing.T) {
	fl := token.FlagCommandName | token.FlagTypeName
	if !fl.Has(token.FlagCommandName) {
		t.Error("expected CommandName set")
	}
	if !fl.Has(token.FlagTypeName) {
		t.Error("expected TypeName set")
	}
	if fl.Has(token.FlagMemberName) {
		t.Error("MemberName must not be set")
	}
	if !token.FlagNone.Has(token.FlagNone) {
		t.Error("None always contains None")
	}
}

func TestFlagsString(t *testing.T) {
	cases := []struct {
		fl   token.Flags
		want string
	}{
		{token.FlagNone, "None"},
		{token.FlagCommandName, "CommandName"},
		{token.FlagMemberName | token.FlagAttributeName, "MemberName|AttributeName"},
	}
	for _, tc := range cases {
		if got := tc.fl.String(); got != tc.want {
			t.Errorf("Flags(%d).String() = %q, want %q", tc.fl, got, tc.want)
		}
	}
}

func TestFlagNamesRoundTrip(t *testing.T) {
	fl := token.FlagCommandName | token.FlagAttributeName
	var back token.Flags
	for _, name := range fl.Names() {
		f, ok := token.FlagFromName(name)
		if !ok {
			t.Fatalf("FlagFromName(%q) not found", name)
		}
		back |= f
	}
	if back != fl {
		t.Errorf("round trip = %v, want %v", back, fl)
	}

	if names := token.FlagNone.Names(); names != nil {
		t.Errorf("FlagNone.Names() = %v, want nil", names)
	}
	if _, ok := token.FlagFromName("NotAFlag"); ok {
		t.Error("unexpected hit for unknown flag name")
	}
}
