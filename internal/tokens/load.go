package tokens

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/opencode-ai/tailtokens/internal/logging"
	"gopkg.in/yaml.v3"
)

// SourceBuiltin marks themes compiled into the binary.
const SourceBuiltin = "builtin"

// NamedTheme is a token set with its registry name and origin.
type NamedTheme struct {
	Name   string
	Source string // file path or "builtin"
	Config Config
	// Err is set when the file could not be loaded. Config is zero then.
	Err error
}

// LoadError reports a theme file that could not be read, parsed or validated.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

var builtinThemes = map[string]func() Config{
	"default": Default,
}

// BuiltinNames lists the built-in theme names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns a copy of a built-in theme.
func Builtin(name string) (Config, error) {
	build, ok := builtinThemes[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return build(), nil
}

// Parse decodes a token document. YAML is a superset of JSON, but JSON input
// goes through encoding/json so duplicate keys survive for validation.
func Parse(data []byte) (Config, error) {
	var cfg Config
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode json: %w", err)
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

// LoadFile reads and validates a theme file. The theme name is the file
// name without its extension.
func LoadFile(path string) (*NamedTheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("read theme %s: %w", path, err)}
	}
	parsed, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("parse theme %s: %w", path, err)}
	}
	cfg, err := New(parsed)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("invalid theme %s: %w", path, err)}
	}

	return &NamedTheme{Name: themeName(path), Source: path, Config: cfg}, nil
}

func themeName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadDir loads every theme file in dir. A missing directory yields no themes.
// A file that fails to load is returned with Err set, so one broken file
// does not hide its siblings.
func LoadDir(dir string) ([]*NamedTheme, error) {
	logger := logging.Component("themes")

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read theme dir %s: %w", dir, err)
	}

	themes := make([]*NamedTheme, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isThemeFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		theme, err := LoadFile(path)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("invalid theme file")
			theme = &NamedTheme{Name: themeName(path), Source: path, Err: err}
		}
		themes = append(themes, theme)
	}

	sort.Slice(themes, func(i, j int) bool {
		return themes[i].Name < themes[j].Name
	})
	return themes, nil
}

func isThemeFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
