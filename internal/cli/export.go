package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencode-ai/tailtokens/internal/logging"
	"github.com/opencode-ai/tailtokens/internal/render"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "output format: js, cjs, json, yaml, css (default from config or output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a theme",
	Long:  "Export the selected theme in a build-tool-facing format: Tailwind CDN config (js), CommonJS module (cjs), JSON, YAML or CSS custom properties.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.Component("export")

		theme, err := resolveTheme()
		if err != nil {
			return err
		}

		output := exportOutput
		if output == "" {
			output = GetConfig().Output
		}
		format, err := exportFormatFor(exportFormat, output, GetConfig().Format)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := render.Encode(&buf, theme.Config, format); err != nil {
			return err
		}

		if output == "" {
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}

		if dir := filepath.Dir(output); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}

		logger.Info().Str("theme", theme.Name).Str("format", string(format)).Str("path", output).Msg("exported theme")
		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), exportResult{Theme: theme.Name, Format: format, Path: output, Bytes: buf.Len()})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s, %d bytes)\n", output, format, buf.Len())
		return nil
	},
}

type exportResult struct {
	Theme  string        `json:"theme"`
	Format render.Format `json:"format"`
	Path   string        `json:"path"`
	Bytes  int           `json:"bytes"`
}

// exportFormatFor picks the format: flag, then output extension, then config.
// A .js extension does not decide between js and cjs.
func exportFormatFor(flag, output, configured string) (render.Format, error) {
	if flag != "" {
		return render.ParseFormat(flag)
	}
	if ext := strings.ToLower(filepath.Ext(output)); ext != "" && ext != ".js" {
		if format, err := render.ParseFormat(ext); err == nil {
			return format, nil
		}
	}
	return render.ParseFormat(configured)
}
