package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/tailtokens/internal/tokens"
	"github.com/opencode-ai/tailtokens/internal/tui/styles"
)

// Notice is a short message shown in place of an empty section.
type Notice struct {
	Title string
	// Hint is an optional next step.
	Hint string
}

// RenderNotice renders a notice with the muted style.
func RenderNotice(styleSet styles.Styles, n Notice) string {
	lines := []string{styleSet.Muted.Render(n.Title)}
	if n.Hint != "" {
		lines = append(lines, styleSet.Muted.Render("  # "+n.Hint))
	}
	return strings.Join(lines, "\n")
}

// RenderWarnings lists lint warnings, or nothing when there are none.
func RenderWarnings(styleSet styles.Styles, warnings []tokens.Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, 0, len(warnings)+1)
	lines = append(lines, styleSet.Warning.Render(fmt.Sprintf("%d warning(s)", len(warnings))))
	for _, w := range warnings {
		lines = append(lines, fmt.Sprintf("  %s %s", styleSet.Warning.Render("!"), styleSet.Text.Render(w.String())))
	}
	return strings.Join(lines, "\n")
}
