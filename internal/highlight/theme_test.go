package highlight

import (
	"os"
	"path/filepath"
	"testing"

	"slate/internal/classify"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write theme file: %v", err)
	}
	return path
}

func TestLoadTheme(t *testing.T) {
	path := writeTheme(t, `
[theme]
Keyword = "red,bold"
String  = "hiblue"
`)
	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme returned error: %v", err)
	}
	if theme[classify.Keyword] == nil {
		t.Error("Keyword override missing")
	}
	if theme[classify.String] == nil {
		t.Error("String override missing")
	}
	// Unmentioned categories keep their defaults.
	if theme[classify.Command] == nil {
		t.Error("default Command style lost")
	}
}

func TestLoadThemeWithoutSection(t *testing.T) {
	path := writeTheme(t, `# no theme table`)
	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme returned error: %v", err)
	}
	if theme[classify.Keyword] == nil {
		t.Error("expected default palette")
	}
}

func TestLoadThemeErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"unknown category", "[theme]\nNotACategory = \"red\"\n"},
		{"unknown attribute", "[theme]\nKeyword = \"sparkly\"\n"},
		{"empty spec", "[theme]\nKeyword = \",\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadTheme(writeTheme(t, tc.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseStyle(t *testing.T) {
	if _, err := parseStyle("green, bold"); err != nil {
		t.Errorf("spaced spec should parse: %v", err)
	}
	if _, err := parseStyle("HiCyan"); err != nil {
		t.Errorf("case-insensitive attr should parse: %v", err)
	}
}
