package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/tailtokens/internal/tokens"
	"github.com/opencode-ai/tailtokens/internal/tui/styles"
)

// RenderFontStacks lists each font role with its primary face highlighted
// and fallbacks in order.
func RenderFontStacks(styleSet styles.Styles, fonts tokens.Entries[tokens.FontStack]) string {
	if len(fonts) == 0 {
		return RenderNotice(styleSet, Notice{Title: "No font families"})
	}

	width := 0
	for _, role := range fonts {
		width = max(width, len(role.Key))
	}

	lines := make([]string, 0, len(fonts))
	for _, role := range fonts {
		parts := make([]string, 0, len(role.Value))
		for i, family := range role.Value {
			if i == 0 {
				parts = append(parts, styleSet.Accent.Render(family))
				continue
			}
			parts = append(parts, styleSet.Muted.Render(family))
		}
		label := styleSet.Heading.Render(fmt.Sprintf("%-*s", width, role.Key))
		lines = append(lines, fmt.Sprintf("%s  %s", label, strings.Join(parts, styleSet.Muted.Render(" > "))))
	}
	return strings.Join(lines, "\n")
}

// RenderBlurScale lists backdrop-blur sizes.
func RenderBlurScale(styleSet styles.Styles, blur tokens.Entries[string]) string {
	if len(blur) == 0 {
		return RenderNotice(styleSet, Notice{Title: "No backdrop-blur sizes"})
	}

	lines := make([]string, 0, len(blur))
	for _, size := range blur {
		lines = append(lines, fmt.Sprintf("%s  %s", styleSet.Heading.Render(size.Key), styleSet.Text.Render(size.Value)))
	}
	return strings.Join(lines, "\n")
}
