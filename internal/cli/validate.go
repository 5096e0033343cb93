package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencode-ai/tailtokens/internal/logging"
	"github.com/opencode-ai/tailtokens/internal/render"
	"github.com/opencode-ai/tailtokens/internal/tokens"
	"github.com/spf13/cobra"
)

var validateStrict bool

// ErrValidationFailed is returned when any validated document has errors,
// or warnings under --strict.
var ErrValidationFailed = errors.New("validation failed")

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "treat lint warnings (scales not darkening with step) as errors")
}

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Validate themes",
	Long:  "Validate the selected theme, or the given theme files (.yaml, .yml, .json, .js, .cjs). Checks hex colors, step order, duplicate keys, font stacks, blur lengths and dark mode. JavaScript files must hold a plain object literal assigned to tailwind.config or module.exports; comments, single quotes, bare keys and trailing commas are accepted, but expressions, spreads and require calls are not.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var reports []validationReport
		if len(args) == 0 {
			theme, err := resolveTheme()
			var loadErr *tokens.LoadError
			switch {
			case errors.As(err, &loadErr):
				reports = append(reports, validateFile(loadErr.Path))
			case err != nil:
				return err
			default:
				reports = append(reports, newValidationReport(theme.Name, theme.Source, theme.Config, nil))
			}
		}
		for _, path := range args {
			reports = append(reports, validateFile(path))
		}

		failed := false
		for _, report := range reports {
			if !report.Valid || (validateStrict && len(report.Warnings) > 0) {
				failed = true
			}
		}

		if IsJSONOutput() {
			if err := WriteOutput(cmd.OutOrStdout(), reports); err != nil {
				return err
			}
		} else {
			printValidationReports(cmd.OutOrStdout(), reports)
		}

		if failed {
			return ErrValidationFailed
		}
		return nil
	},
}

type violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type validationReport struct {
	Name     string           `json:"name"`
	Source   string           `json:"source"`
	Valid    bool             `json:"valid"`
	Errors   []violation      `json:"errors,omitempty"`
	Warnings []tokens.Warning `json:"warnings,omitempty"`
}

func newValidationReport(name, source string, cfg tokens.Config, err error) validationReport {
	report := validationReport{Name: name, Source: source}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		violations := tokens.ValidationErrors(err)
		if len(violations) == 0 {
			report.Errors = append(report.Errors, violation{Path: source, Message: err.Error()})
		}
		for _, v := range violations {
			report.Errors = append(report.Errors, violation{Path: v.Path, Message: v.Message})
		}
		return report
	}
	report.Valid = true
	report.Warnings = cfg.Lint()
	return report
}

func validateFile(path string) validationReport {
	logger := logging.Component("validate")
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	cfg, err := decodeFile(path)
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("decode failed")
		return newValidationReport(name, path, tokens.Config{}, err)
	}
	return newValidationReport(name, path, cfg, nil)
}

// decodeFile reads a theme document in any decodable format, choosing the
// decoder by extension.
func decodeFile(path string) (tokens.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tokens.Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".cjs", ".mjs":
		if bytes.Contains(data, []byte("module.exports")) {
			return render.Decode(bytes.NewReader(data), render.FormatCJS)
		}
		return render.Decode(bytes.NewReader(data), render.FormatJS)
	default:
		return tokens.Parse(data)
	}
}

func printValidationReports(out io.Writer, reports []validationReport) {
	for _, report := range reports {
		status := "ok"
		switch {
		case !report.Valid:
			status = "invalid"
		case len(report.Warnings) > 0:
			status = "ok with warnings"
		}
		fmt.Fprintf(out, "%s (%s): %s\n", report.Name, report.Source, status)
		for _, v := range report.Errors {
			fmt.Fprintf(out, "  error   %s: %s\n", v.Path, v.Message)
		}
		for _, w := range report.Warnings {
			fmt.Fprintf(out, "  warning %s\n", w)
		}
	}
}
