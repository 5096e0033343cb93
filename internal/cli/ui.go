package cli

import (
	"fmt"

	"github.com/opencode-ai/tailtokens/internal/tui/components"
	"github.com/opencode-ai/tailtokens/internal/tui/styles"
	"github.com/spf13/cobra"
)

var previewChrome string

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewChrome, "chrome", "default", "preview chrome: default, high-contrast")
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a theme in the terminal",
	Long:  "Render color swatches, font stacks and blur sizes of the selected theme. Output is plain text when stdout is not a terminal.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, err := resolveTheme()
		if err != nil {
			return err
		}

		styleSet, err := previewStyles()
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), components.RenderPreview(styleSet, theme.Name, theme.Config))
		return err
	},
}

func previewStyles() (styles.Styles, error) {
	chrome, ok := styles.Chromes[previewChrome]
	if !ok {
		return styles.Styles{}, fmt.Errorf("unknown chrome %q", previewChrome)
	}
	if IsNonInteractive() {
		return styles.PlainStyles(), nil
	}
	return styles.BuildStyles(chrome), nil
}
