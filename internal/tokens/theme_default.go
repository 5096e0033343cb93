package tokens

// defaultTheme is the baseline token set.
var defaultTheme = MustNew(Config{
	DarkMode: DarkModeClass,
	Theme: Theme{
		Extend: Extend{
			Colors: Entries[ColorScale]{
				{Key: "primary", Value: ColorScale{
					{Key: "50", Value: "#f0fdf4"},
					{Key: "100", Value: "#dcfce7"},
					{Key: "200", Value: "#bbf7d0"},
					{Key: "300", Value: "#86efac"},
					{Key: "400", Value: "#4ade80"},
					{Key: "500", Value: "#22c55e"},
					{Key: "600", Value: "#16a34a"},
					{Key: "700", Value: "#15803d"},
					{Key: "800", Value: "#166534"},
					{Key: "900", Value: "#14532d"},
					{Key: "950", Value: "#052e16"},
				}},
				{Key: "accent", Value: ColorScale{
					{Key: "500", Value: "#ec4899"},
					{Key: "600", Value: "#db2777"},
					{Key: "700", Value: "#be185d"},
				}},
				{Key: "brand-red", Value: ColorScale{
					{Key: "DEFAULT", Value: "#E11D48"},
					{Key: "dark", Value: "#BE123C"},
				}},
			},
			FontFamily: Entries[FontStack]{
				{Key: "sans", Value: FontStack{"Inter", "sans-serif"}},
				{Key: "display", Value: FontStack{"Space Grotesk", "sans-serif"}},
			},
			BackdropBlur: Entries[string]{
				{Key: "xs", Value: "2px"},
			},
		},
	},
})

// Default returns a copy of the built-in token set.
func Default() Config {
	return defaultTheme.Clone()
}
