package render

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/tailtokens/internal/tokens"
)

type cssVar struct {
	Name  string
	Value string
}

type cssData struct {
	DarkMode string
	Vars     []cssVar
}

var genericFamilies = map[string]bool{
	"serif":         true,
	"sans-serif":    true,
	"monospace":     true,
	"cursive":       true,
	"fantasy":       true,
	"system-ui":     true,
	"ui-serif":      true,
	"ui-sans-serif": true,
	"ui-monospace":  true,
	"ui-rounded":    true,
	"emoji":         true,
	"math":          true,
}

func cssVars(cfg tokens.Config) ([]cssVar, error) {
	ext := cfg.Theme.Extend
	vars := make([]cssVar, 0)
	origins := make(map[string]string)

	add := func(name, value, origin string) error {
		if !isCSSName(name) {
			return fmt.Errorf("%w: --%s from %s", ErrInvalidCSSName, name, origin)
		}
		if prev, ok := origins[name]; ok {
			return fmt.Errorf("%w: --%s from %s and %s", ErrCSSNameConflict, name, prev, origin)
		}
		origins[name] = origin
		vars = append(vars, cssVar{Name: name, Value: value})
		return nil
	}

	for _, palette := range ext.Colors {
		for _, entry := range palette.Value {
			name := "color-" + palette.Key
			if entry.Key != "DEFAULT" {
				name += "-" + entry.Key
			}
			if err := add(name, entry.Value, "colors."+palette.Key+"."+entry.Key); err != nil {
				return nil, err
			}
		}
	}

	for _, role := range ext.FontFamily {
		families := make([]string, 0, len(role.Value))
		for _, family := range role.Value {
			families = append(families, cssFamily(family))
		}
		if err := add("font-"+role.Key, strings.Join(families, ", "), "fontFamily."+role.Key); err != nil {
			return nil, err
		}
	}

	for _, size := range ext.BackdropBlur {
		if err := add("blur-"+size.Key, size.Value, "backdropBlur."+size.Key); err != nil {
			return nil, err
		}
	}

	return vars, nil
}

// isCSSName reports whether name can follow "--" in a custom property
// without escaping.
func isCSSName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r == '-' || r == '_':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r >= 0x80:
		default:
			return false
		}
	}
	return true
}

// cssFamily quotes a family name unless it is a generic keyword.
func cssFamily(family string) string {
	if genericFamilies[strings.ToLower(family)] {
		return family
	}
	return `"` + strings.ReplaceAll(family, `"`, `\"`) + `"`
}
