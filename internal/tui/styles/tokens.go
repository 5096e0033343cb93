package styles

// ChromeTokens are the colors used around the swatches in a preview.
type ChromeTokens struct {
	Text      string
	TextMuted string
	Border    string
	Accent    string
	Success   string
	Warning   string
	Error     string
}

// Chrome bundles preview colors with a name.
type Chrome struct {
	Name   string
	Tokens ChromeTokens
}

// Chromes lists available preview chromes by name.
var Chromes = map[string]Chrome{
	"default":       DefaultChrome,
	"high-contrast": HighContrastChrome,
}
