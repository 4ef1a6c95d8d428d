package highlight

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"

	"slate/internal/classify"
)

// Theme maps token categories to terminal styles. Categories without an
// entry render unstyled.
type Theme map[classify.Category]*color.Color

// DefaultTheme is the built-in editor-like palette.
func DefaultTheme() Theme {
	return Theme{
		classify.Command:          color.New(color.FgYellow),
		classify.CommandParameter: color.New(color.FgHiBlack),
		classify.Number:           color.New(color.FgHiWhite),
		classify.String:           color.New(color.FgCyan),
		classify.Variable:         color.New(color.FgGreen),
		classify.Member:           color.New(color.FgHiCyan),
		classify.LoopLabel:        color.New(color.FgHiYellow),
		classify.Attribute:        color.New(color.FgHiCyan),
		classify.Type:             color.New(color.FgHiCyan),
		classify.Operator:         color.New(color.FgHiBlack),
		classify.GroupStart:       color.New(color.FgHiBlack),
		classify.GroupEnd:         color.New(color.FgHiBlack),
		classify.Keyword:          color.New(color.FgGreen, color.Bold),
		classify.Comment:          color.New(color.FgHiGreen, color.Faint),
	}
}

type themeFile struct {
	Theme map[string]string `toml:"theme"`
}

// LoadTheme reads a TOML theme file. Entries override the default
// palette; category names are case-sensitive, attribute names are not.
//
//	[theme]
//	Keyword = "green,bold"
//	String  = "cyan"
func LoadTheme(path string) (Theme, error) {
	var cfg themeFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	theme := DefaultTheme()
	if !meta.IsDefined("theme") {
		return theme, nil
	}
	for name, spec := range cfg.Theme {
		cat, ok := classify.CategoryFromName(name)
		if !ok {
			return nil, fmt.Errorf("%s: unknown category %q", path, name)
		}
		c, err := parseStyle(spec)
		if err != nil {
			return nil, fmt.Errorf("%s: category %q: %w", path, name, err)
		}
		theme[cat] = c
	}
	return theme, nil
}

var styleAttrs = map[string]color.Attribute{
	"black":     color.FgBlack,
	"red":       color.FgRed,
	"green":     color.FgGreen,
	"yellow":    color.FgYellow,
	"blue":      color.FgBlue,
	"magenta":   color.FgMagenta,
	"cyan":      color.FgCyan,
	"white":     color.FgWhite,
	"hiblack":   color.FgHiBlack,
	"hired":     color.FgHiRed,
	"higreen":   color.FgHiGreen,
	"hiyellow":  color.FgHiYellow,
	"hiblue":    color.FgHiBlue,
	"himagenta": color.FgHiMagenta,
	"hicyan":    color.FgHiCyan,
	"hiwhite":   color.FgHiWhite,
	"bold":      color.Bold,
	"faint":     color.Faint,
	"italic":    color.Italic,
	"underline": color.Underline,
}

func parseStyle(spec string) (*color.Color, error) {
	var attrs []color.Attribute
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		attr, ok := styleAttrs[part]
		if !ok {
			return nil, fmt.Errorf("unknown style attribute %q", part)
		}
		attrs = append(attrs, attr)
	}
	if len(attrs) == 0 {
		return nil, fmt.Errorf("empty style spec")
	}
	return color.New(attrs...), nil
}
