// Package components renders token previews for the terminal.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/tailtokens/internal/tokens"
	"github.com/opencode-ai/tailtokens/internal/tui/styles"
)

const swatchWidth = 9

// RenderScale renders one palette as a row of swatch cells, each labeled
// with its key above the hex value.
func RenderScale(styleSet styles.Styles, name string, scale tokens.ColorScale) string {
	header := fmt.Sprintf("%s %s", styleSet.Heading.Render(name), styleSet.Muted.Render("("+tokens.KindOf(scale).String()+")"))
	if len(scale) == 0 {
		return header
	}

	cells := make([]string, 0, len(scale))
	for _, entry := range scale {
		swatch := styleSet.Swatch(entry.Value).Width(swatchWidth).Render(entry.Key)
		hex := styleSet.Muted.Copy().Width(swatchWidth).Render(entry.Value)
		cells = append(cells, lipgloss.JoinVertical(lipgloss.Left, swatch, hex))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

// RenderPalettes renders every palette in authored order.
func RenderPalettes(styleSet styles.Styles, colors tokens.Entries[tokens.ColorScale]) string {
	if len(colors) == 0 {
		return RenderNotice(styleSet, Notice{Title: "No color palettes", Hint: "add theme.extend.colors to the theme file"})
	}
	blocks := make([]string, 0, len(colors))
	for _, palette := range colors {
		blocks = append(blocks, RenderScale(styleSet, palette.Key, palette.Value))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
