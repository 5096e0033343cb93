package tokens

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Warning is a convention violation that does not make the document invalid.
type Warning struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Path, w.Message)
}

// Lightness returns the CIE L* of a hex color in [0, 1].
func Lightness(hex string) (float64, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", hex, err)
	}
	l, _, _ := c.Lab()
	return l, nil
}

// Lint reports numeric scales whose colors do not get darker as the step
// grows. Scales that fail validation are skipped.
func (c Config) Lint() []Warning {
	var warnings []Warning
	for _, palette := range c.Theme.Extend.Colors {
		if KindOf(palette.Value) != ScaleNumeric {
			continue
		}
		path := extendPath + ".colors." + palette.Key

		prevKey := ""
		prevL := 0.0
		for _, entry := range palette.Value {
			l, err := Lightness(entry.Value)
			if err != nil {
				prevKey = ""
				continue
			}
			if prevKey != "" && l >= prevL {
				warnings = append(warnings, Warning{
					Path:    path + "." + entry.Key,
					Message: fmt.Sprintf("step %s (L*=%.3f) is not darker than step %s (L*=%.3f)", entry.Key, l, prevKey, prevL),
				})
			}
			prevKey, prevL = entry.Key, l
		}
	}
	return warnings
}
