package tokens

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultThemeValues(t *testing.T) {
	cfg := Default()

	require.Equal(t, DarkModeClass, cfg.DarkMode)

	value, ok := cfg.Color("primary", "500")
	require.True(t, ok)
	require.Equal(t, "#22c55e", value)

	value, ok = cfg.Color("brand-red", "DEFAULT")
	require.True(t, ok)
	require.Equal(t, "#E11D48", value)

	value, ok = cfg.Color("brand-red", "dark")
	require.True(t, ok)
	require.Equal(t, "#BE123C", value)

	stack, ok := cfg.Font("display")
	require.True(t, ok)
	require.Equal(t, FontStack{"Space Grotesk", "sans-serif"}, stack)
	require.Equal(t, "Space Grotesk", stack.Primary())

	blur, ok := cfg.Blur("xs")
	require.True(t, ok)
	require.Equal(t, "2px", blur)

	require.Equal(t, []string{"primary", "accent", "brand-red"}, cfg.Theme.Extend.Colors.Keys())
	require.Equal(t, []string{"sans", "display"}, cfg.Theme.Extend.FontFamily.Keys())
}

func TestDefaultThemeContract(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Empty(t, cfg.Lint())

	for _, palette := range cfg.Theme.Extend.Colors {
		for _, entry := range palette.Value {
			require.Truef(t, IsHexColor(entry.Value), "%s.%s = %q", palette.Key, entry.Key, entry.Value)
		}
		if KindOf(palette.Value) != ScaleNumeric {
			continue
		}
		prev := 0
		for _, entry := range palette.Value {
			step, err := strconv.Atoi(entry.Key)
			require.NoError(t, err)
			require.True(t, IsConventionalStep(step))
			require.Greater(t, step, prev)
			prev = step
		}
	}

	for _, role := range cfg.Theme.Extend.FontFamily {
		require.NotEmpty(t, role.Value, role.Key)
	}
	require.Len(t, cfg.Theme.Extend.FontFamily, 2)
}

func TestDefaultReturnsCopy(t *testing.T) {
	cfg := Default()
	cfg.Theme.Extend.Colors[0].Value[5].Value = "#000000"
	cfg.Theme.Extend.FontFamily[1].Value[0] = "Comic Sans"
	cfg.DarkMode = DarkModeMedia

	fresh := Default()
	value, _ := fresh.Color("primary", "500")
	require.Equal(t, "#22c55e", value)
	stack, _ := fresh.Font("display")
	require.Equal(t, "Space Grotesk", stack.Primary())
	require.Equal(t, DarkModeClass, fresh.DarkMode)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name  string
		scale ColorScale
		want  ScaleKind
	}{
		{"empty", nil, ScaleEmpty},
		{"numeric", ColorScale{{Key: "50", Value: "#ffffff"}, {Key: "900", Value: "#000000"}}, ScaleNumeric},
		{"named", ColorScale{{Key: "DEFAULT", Value: "#ffffff"}, {Key: "dark", Value: "#000000"}}, ScaleNamed},
		{"mixed", ColorScale{{Key: "DEFAULT", Value: "#ffffff"}, {Key: "900", Value: "#000000"}}, ScaleMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, KindOf(tt.scale))
		})
	}
}

func TestParseDarkMode(t *testing.T) {
	mode, err := ParseDarkMode(" Media ")
	require.NoError(t, err)
	require.Equal(t, DarkModeMedia, mode)

	_, err = ParseDarkMode("selector")
	require.ErrorIs(t, err, ErrUnknownDarkMode)
}

func TestLookup(t *testing.T) {
	cfg := Default()

	tests := []struct {
		path string
		want any
	}{
		{"colors.primary.500", "#22c55e"},
		{"theme.extend.colors.brand-red.DEFAULT", "#E11D48"},
		{"fontFamily.display", FontStack{"Space Grotesk", "sans-serif"}},
		{"backdropBlur.xs", "2px"},
		{"darkMode", "class"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := cfg.Lookup(tt.path)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	scale, err := cfg.Lookup("colors.accent")
	require.NoError(t, err)
	require.Equal(t, []string{"500", "600", "700"}, scale.(ColorScale).Keys())

	for _, missing := range []string{"colors.primary.550", "colors.nope", "fontFamily.mono", "spacing.4", ""} {
		_, err := cfg.Lookup(missing)
		require.ErrorIs(t, err, ErrTokenNotFound, missing)
	}
}

func TestEntriesJSONPreservesOrder(t *testing.T) {
	entries := Entries[string]{{Key: "xs", Value: "2px"}, {Key: "100", Value: "4px"}, {Key: "a", Value: "8px"}}

	data, err := json.Marshal(entries)
	require.NoError(t, err)
	require.JSONEq(t, `{"xs":"2px","100":"4px","a":"8px"}`, string(data))
	require.Equal(t, `{"xs":"2px","100":"4px","a":"8px"}`, string(data))

	var decoded Entries[string]
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, entries, decoded)
}

func TestEntriesJSONKeepsDuplicates(t *testing.T) {
	var decoded Entries[string]
	require.NoError(t, json.Unmarshal([]byte(`{"xs":"2px","xs":"3px"}`), &decoded))
	require.Len(t, decoded, 2)
	require.Equal(t, []string{"xs"}, decoded.duplicates())

	value, ok := decoded.Get("xs")
	require.True(t, ok)
	require.Equal(t, "2px", value)
}

func TestEntriesJSONRejectsNonObject(t *testing.T) {
	var decoded Entries[string]
	require.Error(t, json.Unmarshal([]byte(`["xs"]`), &decoded))
}

func TestEntriesYAMLPreservesOrder(t *testing.T) {
	entries := Entries[FontStack]{
		{Key: "sans", Value: FontStack{"Inter", "sans-serif"}},
		{Key: "display", Value: FontStack{"Space Grotesk", "sans-serif"}},
	}

	data, err := yaml.Marshal(entries)
	require.NoError(t, err)

	var decoded Entries[FontStack]
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Equal(t, entries, decoded)
}

func TestValidationErrorsFlatten(t *testing.T) {
	cfg := Default()
	cfg.DarkMode = "auto"
	cfg.Theme.Extend.BackdropBlur = append(cfg.Theme.Extend.BackdropBlur, Entry[string]{Key: "sm", Value: "4 px"})

	err := cfg.Validate()
	require.Error(t, err)

	violations := ValidationErrors(err)
	require.Len(t, violations, 2)
	require.Equal(t, "darkMode", violations[0].Path)
	require.Equal(t, "theme.extend.backdropBlur.sm", violations[1].Path)

	var single *ValidationError
	require.True(t, errors.As(err, &single))
}

func TestValidationErrorsThroughWrapping(t *testing.T) {
	err := Config{DarkMode: "auto", Theme: Theme{Extend: Extend{
		FontFamily: Entries[FontStack]{{Key: "sans"}},
	}}}.Validate()
	wrapped := &LoadError{Path: "themes/bad.yaml", Err: fmt.Errorf("invalid theme: %w", err)}

	violations := ValidationErrors(wrapped)
	require.Len(t, violations, 2)
	require.Equal(t, "darkMode", violations[0].Path)
	require.Equal(t, "theme.extend.fontFamily.sans", violations[1].Path)
}

func TestCloneDropsEmptySections(t *testing.T) {
	cfg, err := New(Config{DarkMode: DarkModeClass, Theme: Theme{Extend: Extend{
		Colors:       Entries[ColorScale]{},
		FontFamily:   Entries[FontStack]{},
		BackdropBlur: Entries[string]{},
	}}})
	require.NoError(t, err)
	require.Equal(t, Config{DarkMode: DarkModeClass}, cfg)
}
