package styles

// DefaultChrome uses the built-in token set's own greens and reds.
var DefaultChrome = Chrome{
	Name: "default",
	Tokens: ChromeTokens{
		Text:      "#E5E7EB",
		TextMuted: "#9CA3AF",
		Border:    "#374151",
		Accent:    "#22c55e",
		Success:   "#4ade80",
		Warning:   "#F59E0B",
		Error:     "#E11D48",
	},
}
