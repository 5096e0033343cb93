// Package styles turns preview chrome and token colors into lipgloss styles.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/tailtokens/internal/tokens"
)

// swatchLightThreshold is the L* above which swatch labels are drawn dark.
const swatchLightThreshold = 0.6

// Styles contains lipgloss styles derived from chrome tokens.
type Styles struct {
	Chrome  Chrome
	Plain   bool
	Title   lipgloss.Style
	Heading lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Border  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles builds styles from the default chrome.
func DefaultStyles() Styles {
	return BuildStyles(DefaultChrome)
}

// PlainStyles returns styles that add no color, for pipes and dumb terminals.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Chrome:  DefaultChrome,
		Plain:   true,
		Title:   plain,
		Heading: plain,
		Text:    plain,
		Muted:   plain,
		Accent:  plain,
		Border:  plain,
		Success: plain,
		Warning: plain,
		Error:   plain,
	}
}

// BuildStyles converts chrome tokens into lipgloss styles.
func BuildStyles(chrome Chrome) Styles {
	t := chrome.Tokens

	return Styles{
		Chrome:  chrome,
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)).Bold(true),
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.TextMuted)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		Border:  lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(t.Border)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)),
	}
}

// WithAccent returns a copy whose accent follows a document color.
func (s Styles) WithAccent(hex string) Styles {
	if s.Plain || !tokens.IsHexColor(hex) {
		return s
	}
	s.Chrome.Tokens.Accent = hex
	s.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	s.Title = s.Title.Copy().Foreground(lipgloss.Color(hex))
	return s
}

// Swatch returns a style that fills a cell with hex and picks a readable
// label color for it.
func (s Styles) Swatch(hex string) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)
	if s.Plain {
		return style
	}

	label := "#FFFFFF"
	if l, err := tokens.Lightness(hex); err == nil && l > swatchLightThreshold {
		label = "#000000"
	}
	return style.Background(lipgloss.Color(hex)).Foreground(lipgloss.Color(label))
}

// AccentFor picks the color a preview should use for its title: the first
// palette's DEFAULT or 500 entry, else its first entry.
func AccentFor(cfg tokens.Config) string {
	if len(cfg.Theme.Extend.Colors) == 0 {
		return ""
	}
	scale := cfg.Theme.Extend.Colors[0].Value
	for _, key := range []string{"DEFAULT", "500"} {
		if value, ok := scale.Get(key); ok {
			return value
		}
	}
	if len(scale) > 0 {
		return scale[0].Value
	}
	return ""
}
