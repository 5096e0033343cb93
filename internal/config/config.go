// Package config loads tailtokens settings from config.yaml, the environment
// and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. TAILTOKENS_THEME.
	EnvPrefix = "tailtokens"

	KeyTheme      = "theme"
	KeyFormat     = "format"
	KeyOutput     = "output"
	KeyProjectDir = "project_dir"
	KeyThemeDirs  = "theme_dirs"
	KeyLogLevel   = "log.level"
	KeyLogFormat  = "log.format"
)

// DefaultConfigYAML is written by `tailtokens init`.
const DefaultConfigYAML = `# tailtokens configuration

# Theme to export when --theme is not given.
theme: default

# Output format: js, cjs, json, yaml or css.
format: js

# Output file. Empty writes to stdout.
output: ""

# Extra directories searched for theme files before the standard paths.
theme_dirs: []

log:
  level: warn
  format: console
`

// Config holds resolved settings.
type Config struct {
	Theme      string    `mapstructure:"theme"`
	Format     string    `mapstructure:"format"`
	Output     string    `mapstructure:"output"`
	ProjectDir string    `mapstructure:"project_dir"`
	ThemeDirs  []string  `mapstructure:"theme_dirs"`
	Log        LogConfig `mapstructure:"log"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// LogConfig mirrors logging.Config.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Theme:  "default",
		Format: "js",
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// SearchDirs returns the directories checked for config.yaml, in order.
func SearchDirs() []string {
	dirs := []string{filepath.Join(".", ".tailtokens")}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, filepath.Join(home, ".config", "tailtokens"))
	}
	return dirs
}

// DefaultDir is where `init` writes config.yaml.
func DefaultDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", "tailtokens")
	}
	return filepath.Join(".", ".tailtokens")
}

// Load reads configuration. An explicit path must exist; otherwise a missing
// config.yaml is not an error.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		for _, dir := range SearchDirs() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	return cfg, nil
}

func newViper() *viper.Viper {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetDefault(KeyTheme, defaults.Theme)
	v.SetDefault(KeyFormat, defaults.Format)
	v.SetDefault(KeyOutput, defaults.Output)
	v.SetDefault(KeyProjectDir, defaults.ProjectDir)
	v.SetDefault(KeyThemeDirs, []string{})
	v.SetDefault(KeyLogLevel, defaults.Log.Level)
	v.SetDefault(KeyLogFormat, defaults.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// WriteDefault creates dir/config.yaml unless it already exists. It reports
// whether a file was written.
func WriteDefault(dir string, force bool) (string, bool, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("create config dir: %w", err)
	}

	path := filepath.Join(dir, configFileExt)
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return path, false, nil
		}
		if !os.IsNotExist(err) {
			return "", false, fmt.Errorf("stat config file: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(DefaultConfigYAML), 0o644); err != nil {
		return "", false, fmt.Errorf("write config file: %w", err)
	}
	return path, true, nil
}
