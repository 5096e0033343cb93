package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencode-ai/tailtokens/internal/render"
	"github.com/stretchr/testify/require"
)

const oceanTheme = `darkMode: media
theme:
  extend:
    colors:
      ocean:
        100: "#e0f2fe"
        500: "#0ea5e9"
        900: "#0c4a6e"
    fontFamily:
      body: [Lato, sans-serif]
`

func resetFlags() {
	configFile = ""
	themeName = ""
	projectDir = ""
	jsonOutput = false
	logLevel = ""
	nonInteractive = false
	exportFormat = ""
	exportOutput = ""
	validateStrict = false
	previewChrome = "default"
	initDir = ""
	initForce = false
	appConfig = nil
}

// sandbox points HOME and the working directory at temp dirs and returns
// the working directory.
func sandbox(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)
	return dir
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeTheme(t *testing.T, dir, name, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	sandbox(t)
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	require.Equal(t, "tailtokens dev\n", out)
}

func TestExportDefaultToStdout(t *testing.T) {
	sandbox(t)
	out, err := runCLI(t, "export")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "tailwind.config = {"))
	require.Contains(t, out, `"500": "#22c55e"`)
	require.Contains(t, out, `"display": [`)

	decoded, err := render.Decode(strings.NewReader(out), render.FormatJS)
	require.NoError(t, err)
	require.NoError(t, decoded.Validate())
}

func TestExportToFileInfersFormat(t *testing.T) {
	dir := sandbox(t)
	path := filepath.Join(dir, "dist", "tokens.css")

	out, err := runCLI(t, "export", "-o", path)
	require.NoError(t, err)
	require.Contains(t, out, "Wrote "+path+" (css,")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "--color-brand-red: #E11D48;")
}

func TestExportJSONResult(t *testing.T) {
	dir := sandbox(t)
	path := filepath.Join(dir, "tailwind.config.js")

	out, err := runCLI(t, "export", "--format", "cjs", "-o", path, "--json")
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, "default", result["theme"])
	require.Equal(t, "cjs", result["format"])
	require.Equal(t, path, result["path"])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "module.exports = {")
}

func TestExportUnknownFormat(t *testing.T) {
	sandbox(t)
	_, err := runCLI(t, "export", "--format", "toml")
	require.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestExportUsesConfigFile(t *testing.T) {
	dir := sandbox(t)
	writeTheme(t, filepath.Join(dir, ".tailtokens", "themes"), "ocean.yaml", oceanTheme)
	writeTheme(t, filepath.Join(dir, ".tailtokens"), "config.yaml", "theme: ocean\nformat: yaml\n")

	out, err := runCLI(t, "export")
	require.NoError(t, err)
	require.Contains(t, out, "darkMode: media")
	require.Contains(t, out, "ocean:")
	require.NotContains(t, out, "brand-red")
}

func TestThemeFlagSelectsProjectTheme(t *testing.T) {
	dir := sandbox(t)
	writeTheme(t, filepath.Join(dir, ".tailtokens", "themes"), "ocean.yaml", oceanTheme)

	out, err := runCLI(t, "get", "--theme", "ocean", "colors.ocean.500")
	require.NoError(t, err)
	require.Equal(t, "#0ea5e9\n", out)

	_, err = runCLI(t, "get", "--theme", "missing", "colors.ocean.500")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown theme")
}

func TestGet(t *testing.T) {
	sandbox(t)

	out, err := runCLI(t, "get", "colors.primary.500")
	require.NoError(t, err)
	require.Equal(t, "#22c55e\n", out)

	out, err = runCLI(t, "get", "fontFamily.display")
	require.NoError(t, err)
	require.Equal(t, "Space Grotesk, sans-serif\n", out)

	out, err = runCLI(t, "get", "colors.brand-red")
	require.NoError(t, err)
	require.Equal(t, "DEFAULT\t#E11D48\ndark\t#BE123C\n", out)

	out, err = runCLI(t, "get", "--json", "theme.extend.backdropBlur.xs")
	require.NoError(t, err)
	require.Equal(t, "\"2px\"\n", out)

	_, err = runCLI(t, "get", "colors.primary.555")
	require.Error(t, err)
}

func TestValidateSelectedTheme(t *testing.T) {
	sandbox(t)
	out, err := runCLI(t, "validate")
	require.NoError(t, err)
	require.Equal(t, "default (builtin): ok\n", out)
}

func TestValidateFiles(t *testing.T) {
	dir := sandbox(t)
	good := writeTheme(t, dir, "ocean.yaml", oceanTheme)
	bad := writeTheme(t, dir, "bad.json", `{"darkMode":"auto","theme":{"extend":{"fontFamily":{"sans":[]}}}}`)

	out, err := runCLI(t, "validate", good, bad)
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Contains(t, out, "ocean ("+good+"): ok\n")
	require.Contains(t, out, "bad ("+bad+"): invalid\n")
	require.Contains(t, out, "error   darkMode:")
	require.Contains(t, out, "error   theme.extend.fontFamily.sans: fallback sequence must contain at least one family")
}

func TestValidateExportedFile(t *testing.T) {
	dir := sandbox(t)
	for _, name := range []string{"tailwind.config.js", "tailwind.config.cjs", "tokens.json", "tokens.yaml"} {
		path := filepath.Join(dir, name)
		format := "js"
		switch filepath.Ext(name) {
		case ".cjs":
			format = "cjs"
		case ".json":
			format = "json"
		case ".yaml":
			format = "yaml"
		}
		_, err := runCLI(t, "export", "--format", format, "-o", path)
		require.NoError(t, err)

		out, err := runCLI(t, "validate", path)
		require.NoError(t, err, name)
		require.Contains(t, out, ": ok\n", name)
	}
}

func TestValidateStrict(t *testing.T) {
	dir := sandbox(t)
	path := writeTheme(t, dir, "inverted.yaml", `darkMode: class
theme:
  extend:
    colors:
      gray:
        100: "#111827"
        900: "#f9fafb"
`)

	out, err := runCLI(t, "validate", path)
	require.NoError(t, err)
	require.Contains(t, out, "ok with warnings")
	require.Contains(t, out, "warning theme.extend.colors.gray.900")

	out, err = runCLI(t, "validate", "--strict", "--json", path)
	require.ErrorIs(t, err, ErrValidationFailed)

	var reports []validationReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	require.True(t, reports[0].Valid)
	require.Len(t, reports[0].Warnings, 1)
}

func TestValidateUnreadableFile(t *testing.T) {
	dir := sandbox(t)
	out, err := runCLI(t, "validate", filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Contains(t, out, "missing (")
	require.Contains(t, out, "invalid")
}

func TestList(t *testing.T) {
	dir := sandbox(t)
	writeTheme(t, filepath.Join(dir, ".tailtokens", "themes"), "ocean.yaml", oceanTheme)

	out, err := runCLI(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "NAME"))
	require.True(t, strings.HasPrefix(lines[1], "ocean"))
	require.Contains(t, lines[1], "media")
	require.True(t, strings.HasPrefix(lines[2], "default"))
	require.Contains(t, lines[2], "builtin")

	out, err = runCLI(t, "list", "--json")
	require.NoError(t, err)
	var summaries []themeSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	require.Len(t, summaries, 2)
	require.Equal(t, []string{"primary", "accent", "brand-red"}, summaries[1].Palettes)
}

func TestPreviewPlain(t *testing.T) {
	sandbox(t)
	out, err := runCLI(t, "preview", "--non-interactive")
	require.NoError(t, err)
	require.NotContains(t, out, "\x1b[")
	require.Contains(t, out, "darkMode: class")
	require.Contains(t, out, "#22c55e")
	require.Contains(t, out, "Space Grotesk > sans-serif")

	_, err = runCLI(t, "preview", "--chrome", "neon")
	require.Error(t, err)
}

func TestInit(t *testing.T) {
	dir := sandbox(t)
	target := filepath.Join(dir, "conf")

	out, err := runCLI(t, "init", "--dir", target)
	require.NoError(t, err)
	require.Contains(t, out, "Created "+filepath.Join(target, "config.yaml"))

	out, err = runCLI(t, "init", "--dir", target)
	require.NoError(t, err)
	require.Contains(t, out, "already exists")

	_, err = runCLI(t, "export", "--config", filepath.Join(target, "config.yaml"))
	require.NoError(t, err)
}

func TestExportFormatFor(t *testing.T) {
	tests := []struct {
		flag, output, configured string
		want                     render.Format
	}{
		{"yaml", "out.css", "js", render.FormatYAML},
		{"", "out.css", "js", render.FormatCSS},
		{"", "tailwind.config.js", "cjs", render.FormatCJS},
		{"", "", "json", render.FormatJSON},
		{"", "tokens.txt", "js", render.FormatJS},
	}
	for _, tt := range tests {
		got, err := exportFormatFor(tt.flag, tt.output, tt.configured)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "%+v", tt)
	}
}

func TestDebugLogsResolvedTheme(t *testing.T) {
	sandbox(t)
	resetFlags()
	t.Cleanup(resetFlags)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() { rootCmd.SetErr(io.Discard) })
	rootCmd.SetArgs([]string{"--log-level", "debug", "get", "colors.accent.600"})

	require.NoError(t, rootCmd.Execute())
	require.Equal(t, "#db2777\n", out.String())
	require.Contains(t, errOut.String(), "resolved theme")
}

func TestInvalidThemeFileDoesNotBlockOthers(t *testing.T) {
	dir := sandbox(t)
	themesDir := filepath.Join(dir, ".tailtokens", "themes")
	broken := writeTheme(t, themesDir, "broken.yaml", "darkMode: auto\n")
	writeTheme(t, themesDir, "ocean.yaml", oceanTheme)

	out, err := runCLI(t, "export")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "tailwind.config = {"))

	out, err = runCLI(t, "get", "--theme", "ocean", "colors.ocean.100")
	require.NoError(t, err)
	require.Equal(t, "#e0f2fe\n", out)

	out, err = runCLI(t, "validate")
	require.NoError(t, err)
	require.Equal(t, "default (builtin): ok\n", out)

	out, err = runCLI(t, "list")
	require.NoError(t, err)
	require.Contains(t, out, "broken")
	require.Contains(t, out, "invalid")

	_, err = runCLI(t, "export", "--theme", "broken")
	require.Error(t, err)
	require.Contains(t, err.Error(), "darkMode")

	out, err = runCLI(t, "validate", "--theme", "broken")
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Contains(t, out, "broken ("+broken+"): invalid\n")
	require.Contains(t, out, "error   darkMode:")
}

func TestValidateHandWrittenConfig(t *testing.T) {
	dir := sandbox(t)
	path := writeTheme(t, dir, "tailwind.config.js", `tailwind.config = {
  darkMode: 'class',
  theme: {
    extend: {
      colors: {
        'brand-red': { DEFAULT: '#E11D48', 'dark': '#BE123C', },
      },
      backdropBlur: { xs: '2px', },
    },
  },
}
`)

	out, err := runCLI(t, "validate", path)
	require.NoError(t, err)
	require.Equal(t, "tailwind.config ("+path+"): ok\n", out)
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
