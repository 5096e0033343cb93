package styles

// HighContrastChrome favors visibility on low-contrast terminals.
var HighContrastChrome = Chrome{
	Name: "high-contrast",
	Tokens: ChromeTokens{
		Text:      "#FFFFFF",
		TextMuted: "#D1D5DB",
		Border:    "#FFFFFF",
		Accent:    "#00FF5A",
		Success:   "#00FF5A",
		Warning:   "#FFD400",
		Error:     "#FF4040",
	},
}
