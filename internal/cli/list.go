package cli

import (
	"os"
	"strconv"

	"github.com/opencode-ai/tailtokens/internal/tokens"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Long:  "List themes from --project-dir/.tailtokens/themes, ~/.config/tailtokens/themes, /usr/share/tailtokens/themes and the built-ins. The first theme found with a name wins.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		dir := projectDir
		if dir == "" {
			dir = cfg.ProjectDir
		}
		if dir == "" {
			dir, _ = os.Getwd()
		}

		themes, err := tokens.LoadFromSearchPaths(dir, cfg.ThemeDirs...)
		if err != nil {
			return err
		}

		summaries := make([]themeSummary, 0, len(themes))
		for _, theme := range themes {
			ext := theme.Config.Theme.Extend
			summary := themeSummary{
				Name:     theme.Name,
				Source:   theme.Source,
				DarkMode: theme.Config.DarkMode,
				Palettes: ext.Colors.Keys(),
				Fonts:    ext.FontFamily.Keys(),
			}
			if theme.Err != nil {
				summary.Error = theme.Err.Error()
			}
			summaries = append(summaries, summary)
		}

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), summaries)
		}

		rows := make([][]string, 0, len(summaries))
		for _, s := range summaries {
			darkMode := string(s.DarkMode)
			if s.Error != "" {
				darkMode = "invalid"
			}
			rows = append(rows, []string{s.Name, darkMode, strconv.Itoa(len(s.Palettes)), strconv.Itoa(len(s.Fonts)), s.Source})
		}
		return writeTable(cmd.OutOrStdout(), []string{"NAME", "DARK MODE", "PALETTES", "FONTS", "SOURCE"}, rows)
	},
}

type themeSummary struct {
	Name     string          `json:"name"`
	Source   string          `json:"source"`
	DarkMode tokens.DarkMode `json:"dark_mode"`
	Palettes []string        `json:"palettes"`
	Fonts    []string        `json:"fonts"`
	Error    string          `json:"error,omitempty"`
}
