package tokens

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// SearchPaths returns theme directories in precedence order.
func SearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".tailtokens", "themes"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "tailtokens", "themes"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "tailtokens", "themes"))
	return paths
}

// LoadFromSearchPaths loads themes with first-hit precedence: extra
// directories, then SearchPaths, then the built-ins. A file that failed to
// load still claims its name; check NamedTheme.Err.
func LoadFromSearchPaths(projectDir string, extra ...string) ([]*NamedTheme, error) {
	paths := append(append([]string(nil), extra...), SearchPaths(projectDir)...)
	seen := make(map[string]*NamedTheme)
	order := make([]string, 0)

	for _, path := range paths {
		themes, err := LoadDir(path)
		if err != nil {
			return nil, err
		}
		for _, theme := range themes {
			if _, exists := seen[theme.Name]; exists {
				continue
			}
			seen[theme.Name] = theme
			order = append(order, theme.Name)
		}
	}

	for _, name := range BuiltinNames() {
		if _, exists := seen[name]; exists {
			continue
		}
		cfg, err := Builtin(name)
		if err != nil {
			return nil, err
		}
		seen[name] = &NamedTheme{Name: name, Source: SourceBuiltin, Config: cfg}
		order = append(order, name)
	}

	resolved := make([]*NamedTheme, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}

	return resolved, nil
}

// Resolve finds a theme by name across the search paths and built-ins.
func Resolve(name, projectDir string, extra ...string) (*NamedTheme, error) {
	if name == "" {
		name = "default"
	}
	themes, err := LoadFromSearchPaths(projectDir, extra...)
	if err != nil {
		return nil, err
	}
	for _, theme := range themes {
		if theme.Name == name {
			if theme.Err != nil {
				return nil, theme.Err
			}
			return theme, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// IsUnknownTheme reports whether err is an unknown-theme lookup failure.
func IsUnknownTheme(err error) bool {
	return errors.Is(err, ErrUnknownTheme)
}
