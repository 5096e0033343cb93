// Package tokens defines the design-token document consumed by Tailwind-style
// build tools: color scales, font stacks, a backdrop-blur scale and the
// dark-mode strategy.
package tokens

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DarkMode selects how the build tool activates the dark color scheme.
type DarkMode string

const (
	// DarkModeClass toggles dark mode with a class on a root element.
	DarkModeClass DarkMode = "class"
	// DarkModeMedia follows the prefers-color-scheme media query.
	DarkModeMedia DarkMode = "media"
)

// Token errors.
var (
	ErrUnknownTheme    = errors.New("unknown theme")
	ErrUnknownDarkMode = errors.New("unknown dark mode")
	ErrTokenNotFound   = errors.New("token not found")
)

// ParseDarkMode converts a string to a DarkMode.
func ParseDarkMode(value string) (DarkMode, error) {
	switch mode := DarkMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case DarkModeClass, DarkModeMedia:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDarkMode, value)
	}
}

// ColorScale maps a step ("500") or variant name ("DEFAULT") to a hex color.
type ColorScale = Entries[string]

// FontStack is a fallback-ordered list of font family names. The first
// entry is the primary typeface.
type FontStack []string

// Primary returns the preferred typeface, or "" for an empty stack.
func (f FontStack) Primary() string {
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

// Extend holds tokens appended to the build tool's base theme.
type Extend struct {
	Colors       Entries[ColorScale] `json:"colors,omitempty" yaml:"colors,omitempty"`
	FontFamily   Entries[FontStack]  `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	BackdropBlur Entries[string]     `json:"backdropBlur,omitempty" yaml:"backdropBlur,omitempty"`
}

// Theme wraps the extension block.
type Theme struct {
	Extend Extend `json:"extend" yaml:"extend"`
}

// Config is the full token document.
type Config struct {
	DarkMode DarkMode `json:"darkMode" yaml:"darkMode"`
	Theme    Theme    `json:"theme" yaml:"theme"`
}

// New validates cfg and returns a private copy of it.
func New(cfg Config) (Config, error) {
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg.Clone(), nil
}

// MustNew is like New but panics on invalid input. Use it for literals only.
func MustNew(cfg Config) Config {
	out, err := New(cfg)
	if err != nil {
		panic(fmt.Sprintf("tokens: invalid config: %v", err))
	}
	return out
}

// Clone returns a deep copy of the config. Empty sections come back nil,
// matching what a decoded document holds after omitempty encoding.
func (c Config) Clone() Config {
	out := Config{DarkMode: c.DarkMode}
	ext := c.Theme.Extend

	if len(ext.Colors) > 0 {
		out.Theme.Extend.Colors = make(Entries[ColorScale], len(ext.Colors))
		for i, palette := range ext.Colors {
			out.Theme.Extend.Colors[i] = Entry[ColorScale]{Key: palette.Key, Value: palette.Value.Clone()}
		}
	}
	if len(ext.FontFamily) > 0 {
		out.Theme.Extend.FontFamily = make(Entries[FontStack], len(ext.FontFamily))
		for i, role := range ext.FontFamily {
			out.Theme.Extend.FontFamily[i] = Entry[FontStack]{Key: role.Key, Value: append(FontStack(nil), role.Value...)}
		}
	}
	out.Theme.Extend.BackdropBlur = ext.BackdropBlur.Clone()
	return out
}

// Palette returns the named color scale.
func (c Config) Palette(name string) (ColorScale, bool) {
	scale, ok := c.Theme.Extend.Colors.Get(name)
	if !ok {
		return nil, false
	}
	return scale.Clone(), true
}

// Color returns a single color by palette and key ("500", "DEFAULT").
func (c Config) Color(palette, key string) (string, bool) {
	scale, ok := c.Theme.Extend.Colors.Get(palette)
	if !ok {
		return "", false
	}
	return scale.Get(key)
}

// Font returns the fallback stack for a role.
func (c Config) Font(role string) (FontStack, bool) {
	stack, ok := c.Theme.Extend.FontFamily.Get(role)
	if !ok {
		return nil, false
	}
	return append(FontStack(nil), stack...), true
}

// Blur returns the backdrop-blur length for a size label.
func (c Config) Blur(label string) (string, bool) {
	return c.Theme.Extend.BackdropBlur.Get(label)
}

// Lookup resolves a dotted token path. Accepted forms are
// "colors.<palette>[.<key>]", "fontFamily.<role>", "backdropBlur.<label>"
// and "darkMode", optionally prefixed by "theme.extend.".
func (c Config) Lookup(path string) (any, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(path), "theme.extend.")
	if trimmed == "darkMode" {
		return string(c.DarkMode), nil
	}

	section, rest, _ := strings.Cut(trimmed, ".")
	switch section {
	case "colors":
		palette, key, hasKey := strings.Cut(rest, ".")
		scale, ok := c.Palette(palette)
		if !ok {
			break
		}
		if !hasKey {
			return scale, nil
		}
		if value, ok := scale.Get(key); ok {
			return value, nil
		}
	case "fontFamily":
		if stack, ok := c.Font(rest); ok {
			return stack, nil
		}
	case "backdropBlur":
		if value, ok := c.Blur(rest); ok {
			return value, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrTokenNotFound, path)
}

// ScaleKind describes the key shape of a color scale.
type ScaleKind int

const (
	// ScaleEmpty has no entries.
	ScaleEmpty ScaleKind = iota
	// ScaleNumeric keys are ordinal steps such as 50..950.
	ScaleNumeric
	// ScaleNamed keys are variant names such as DEFAULT and dark.
	ScaleNamed
	// ScaleMixed combines both shapes and is rejected by validation.
	ScaleMixed
)

func (k ScaleKind) String() string {
	switch k {
	case ScaleNumeric:
		return "numeric"
	case ScaleNamed:
		return "named"
	case ScaleMixed:
		return "mixed"
	default:
		return "empty"
	}
}

// KindOf classifies a color scale by its keys.
func KindOf(scale ColorScale) ScaleKind {
	var numeric, named int
	for _, entry := range scale {
		if _, ok := parseStep(entry.Key); ok {
			numeric++
		} else {
			named++
		}
	}
	switch {
	case numeric == 0 && named == 0:
		return ScaleEmpty
	case named == 0:
		return ScaleNumeric
	case numeric == 0:
		return ScaleNamed
	default:
		return ScaleMixed
	}
}

// parseStep reads a numeric step key. Non-canonical spellings such as
// "0500" or "+500" still count as numeric so that validation rejects them
// instead of treating them as variant names.
func parseStep(key string) (int, bool) {
	step, err := strconv.Atoi(key)
	if err != nil || step < 0 {
		return 0, false
	}
	return step, true
}
