package cli

import (
	"fmt"

	"github.com/opencode-ai/tailtokens/internal/config"
	"github.com/spf13/cobra"
)

var (
	initDir   string
	initForce bool
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initDir, "dir", "", "directory for config.yaml (default: ~/.config/tailtokens)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config.yaml")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := initDir
		if dir == "" {
			dir = config.DefaultDir()
		}

		path, written, err := config.WriteDefault(dir, initForce)
		if err != nil {
			return err
		}
		if written {
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s (use --force to overwrite)\n", path)
		}
		return nil
	},
}
