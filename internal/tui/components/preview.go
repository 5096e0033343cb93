package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/tailtokens/internal/tokens"
	"github.com/opencode-ai/tailtokens/internal/tui/styles"
)

// RenderPreview renders a whole token document: title line, palettes,
// fonts, blur sizes and any lint warnings.
func RenderPreview(styleSet styles.Styles, name string, cfg tokens.Config) string {
	styleSet = styleSet.WithAccent(styles.AccentFor(cfg))
	ext := cfg.Theme.Extend

	sections := []string{
		fmt.Sprintf("%s %s", styleSet.Title.Render(name), styleSet.Muted.Render("darkMode: "+string(cfg.DarkMode))),
		styleSet.Heading.Render("Colors"),
		RenderPalettes(styleSet, ext.Colors),
		styleSet.Heading.Render("Font families"),
		RenderFontStacks(styleSet, ext.FontFamily),
		styleSet.Heading.Render("Backdrop blur"),
		RenderBlurScale(styleSet, ext.BackdropBlur),
	}
	if warnings := RenderWarnings(styleSet, cfg.Lint()); warnings != "" {
		sections = append(sections, warnings)
	}
	return strings.Join(sections, "\n\n") + "\n"
}
