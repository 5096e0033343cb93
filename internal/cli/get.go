package cli

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/tailtokens/internal/tokens"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Print a single token",
	Long: `Print a token by dotted path, for example:

  tailtokens get colors.primary.500
  tailtokens get colors.brand-red
  tailtokens get fontFamily.display
  tailtokens get theme.extend.backdropBlur.xs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, err := resolveTheme()
		if err != nil {
			return err
		}

		value, err := theme.Config.Lookup(args[0])
		if err != nil {
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), value)
		}

		out := cmd.OutOrStdout()
		switch v := value.(type) {
		case tokens.ColorScale:
			for _, entry := range v {
				fmt.Fprintf(out, "%s\t%s\n", entry.Key, entry.Value)
			}
		case tokens.FontStack:
			fmt.Fprintln(out, strings.Join(v, ", "))
		default:
			fmt.Fprintln(out, v)
		}
		return nil
	},
}
