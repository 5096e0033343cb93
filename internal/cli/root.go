// Package cli implements the tailtokens command line.
package cli

import (
	"fmt"
	"os"

	"github.com/opencode-ai/tailtokens/internal/config"
	"github.com/opencode-ai/tailtokens/internal/logging"
	"github.com/opencode-ai/tailtokens/internal/tokens"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags.
var Version = "dev"

var (
	configFile     string
	themeName      string
	projectDir     string
	jsonOutput     bool
	logLevel       string
	nonInteractive bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "tailtokens",
	Short:         "Validate and export design tokens",
	Long:          "tailtokens validates design tokens (colors, fonts, blur sizes) and exports them as Tailwind config, JSON, YAML or CSS variables.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cmd.ErrOrStderr()})
		if cfg.File != "" {
			logger := logging.Component("config")
			logger.Debug().Str("file", cfg.File).Msg("loaded config")
		}
		appConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./.tailtokens/config.yaml or ~/.config/tailtokens/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&themeName, "theme", "t", "", "theme name (default from config, else \"default\")")
	rootCmd.PersistentFlags().StringVar(&projectDir, "project-dir", "", "project directory searched for .tailtokens/themes (default: current directory)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "disable color and terminal detection")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetConfig returns the loaded configuration, or defaults before load.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// resolveTheme finds the selected theme: --theme, then config, then default.
func resolveTheme() (*tokens.NamedTheme, error) {
	cfg := GetConfig()

	name := themeName
	if name == "" {
		name = cfg.Theme
	}

	dir := projectDir
	if dir == "" {
		dir = cfg.ProjectDir
	}
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}

	theme, err := tokens.Resolve(name, dir, cfg.ThemeDirs...)
	if err != nil {
		return nil, fmt.Errorf("resolve theme: %w", err)
	}
	logger := logging.Component("themes")
	logger.Debug().Str("theme", theme.Name).Str("source", theme.Source).Msg("resolved theme")
	return theme, nil
}
