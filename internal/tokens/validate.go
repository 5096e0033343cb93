package tokens

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ConventionalSteps lists the ordinal steps a numeric color scale may use.
var ConventionalSteps = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

var (
	hexColorPattern   = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	blurLengthPattern = regexp.MustCompile(`^(0|[0-9]+(\.[0-9]+)?(px|rem|em))$`)
)

const extendPath = "theme.extend"

// ValidationError describes one malformed value in a Config.
type ValidationError struct {
	// Path is the dotted location of the value, e.g. theme.extend.colors.primary.500.
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// IsHexColor reports whether value is a #RRGGBB color.
func IsHexColor(value string) bool {
	return hexColorPattern.MatchString(value)
}

// IsConventionalStep reports whether step is one of ConventionalSteps.
func IsConventionalStep(step int) bool {
	for _, s := range ConventionalSteps {
		if s == step {
			return true
		}
	}
	return false
}

// Validate checks every invariant of the document and returns all
// violations joined together, or nil.
func (c Config) Validate() error {
	var errs []error
	add := func(path, format string, args ...any) {
		errs = append(errs, &ValidationError{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if c.DarkMode != DarkModeClass && c.DarkMode != DarkModeMedia {
		add("darkMode", "must be %q or %q, got %q", DarkModeClass, DarkModeMedia, c.DarkMode)
	}

	ext := c.Theme.Extend
	colorsPath := extendPath + ".colors"
	for _, dup := range ext.Colors.duplicates() {
		add(colorsPath+"."+dup, "duplicate palette name")
	}
	for _, palette := range ext.Colors {
		validateScale(colorsPath+"."+palette.Key, palette.Key, palette.Value, add)
	}

	fontPath := extendPath + ".fontFamily"
	for _, dup := range ext.FontFamily.duplicates() {
		add(fontPath+"."+dup, "duplicate font role")
	}
	for _, role := range ext.FontFamily {
		path := fontPath + "." + role.Key
		if strings.TrimSpace(role.Key) == "" {
			add(path, "font role name is empty")
		}
		if len(role.Value) == 0 {
			add(path, "fallback sequence must contain at least one family")
		}
		for i, family := range role.Value {
			if strings.TrimSpace(family) == "" {
				add(fmt.Sprintf("%s[%d]", path, i), "font family name is empty")
			}
		}
	}

	blurPath := extendPath + ".backdropBlur"
	for _, dup := range ext.BackdropBlur.duplicates() {
		add(blurPath+"."+dup, "duplicate blur label")
	}
	for _, size := range ext.BackdropBlur {
		path := blurPath + "." + size.Key
		if strings.TrimSpace(size.Key) == "" {
			add(path, "blur label is empty")
		}
		if !blurLengthPattern.MatchString(size.Value) {
			add(path, "invalid length %q", size.Value)
		}
	}

	return errors.Join(errs...)
}

func validateScale(path, name string, scale ColorScale, add func(path, format string, args ...any)) {
	if strings.TrimSpace(name) == "" {
		add(path, "palette name is empty")
	}
	for _, dup := range scale.duplicates() {
		add(path+"."+dup, "duplicate scale key")
	}

	switch KindOf(scale) {
	case ScaleEmpty:
		add(path, "color scale is empty")
	case ScaleMixed:
		add(path, "color scale mixes numeric steps and named variants")
	case ScaleNumeric:
		prev := -1
		for _, entry := range scale {
			step, _ := parseStep(entry.Key)
			if strconv.Itoa(step) != entry.Key {
				add(path+"."+entry.Key, "step key %q is not in canonical form %q", entry.Key, strconv.Itoa(step))
				continue
			}
			if !IsConventionalStep(step) {
				add(path+"."+entry.Key, "step %d is not one of %v", step, ConventionalSteps)
			}
			if step <= prev {
				add(path+"."+entry.Key, "step %d must follow a smaller step, got it after %d", step, prev)
			}
			prev = step
		}
	}

	for _, entry := range scale {
		if strings.TrimSpace(entry.Key) == "" {
			add(path, "scale key is empty")
		}
		if !IsHexColor(entry.Value) {
			add(path+"."+entry.Key, "invalid color %q, want #RRGGBB", entry.Value)
		}
	}
}

// ValidationErrors flattens the result of Validate into its individual
// violations.
func ValidationErrors(err error) []*ValidationError {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case *ValidationError:
		return []*ValidationError{e}
	case interface{ Unwrap() []error }:
		var out []*ValidationError
		for _, inner := range e.Unwrap() {
			out = append(out, ValidationErrors(inner)...)
		}
		return out
	default:
		return ValidationErrors(errors.Unwrap(err))
	}
}
