// Package render converts token documents to and from the representations
// a build tool reads.
package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/opencode-ai/tailtokens/internal/tokens"
	"gopkg.in/yaml.v3"
)

// Format names an output representation.
type Format string

const (
	// FormatJS is the browser CDN form: tailwind.config = {...}
	FormatJS   Format = "js"
	FormatCJS  Format = "cjs"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	// FormatCSS emits :root custom properties. It cannot be decoded.
	FormatCSS Format = "css"
)

// Render errors.
var (
	ErrUnknownFormat     = errors.New("unknown format")
	ErrDecodeUnsupported = errors.New("format cannot be decoded")
	ErrInvalidCSSName    = errors.New("invalid css custom property name")
	ErrCSSNameConflict   = errors.New("css custom property defined twice")
)

// Formats lists every supported format.
var Formats = []Format{FormatJS, FormatCJS, FormatJSON, FormatYAML, FormatCSS}

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// ParseFormat converts a name or file extension to a Format.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(value), ".")) {
	case "js", "":
		return FormatJS, nil
	case "cjs":
		return FormatCJS, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "css":
		return FormatCSS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
	}
}

// Decodable reports whether Decode supports the format.
func (f Format) Decodable() bool {
	return f != FormatCSS
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg tokens.Config, format Format) error {
	switch format {
	case FormatJSON:
		body, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		body = append(body, '\n')
		_, err = w.Write(body)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJS, FormatCJS:
		body, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", format, err)
		}
		return execute(w, string(format), map[string]string{"Body": string(body)})
	case FormatCSS:
		vars, err := cssVars(cfg)
		if err != nil {
			return fmt.Errorf("encode css: %w", err)
		}
		return execute(w, "css", cssData{DarkMode: string(cfg.DarkMode), Vars: vars})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// EncodeToString is a convenience wrapper around Encode.
func EncodeToString(cfg tokens.Config, format Format) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, cfg, format); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Decode reads a document written by Encode. For js and cjs it also reads
// hand-written object literals with bare keys, single quotes, comments and
// trailing commas. The result is not validated.
func Decode(r io.Reader, format Format) (tokens.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return tokens.Config{}, fmt.Errorf("read %s: %w", format, err)
	}

	var cfg tokens.Config
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return tokens.Config{}, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return tokens.Config{}, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJS, FormatCJS:
		source, err := jsToJSON(string(data))
		if err != nil {
			return tokens.Config{}, fmt.Errorf("decode %s: %w", format, err)
		}
		body, err := assignedObject(source)
		if err != nil {
			return tokens.Config{}, fmt.Errorf("decode %s: %w", format, err)
		}
		if err := json.Unmarshal([]byte(body), &cfg); err != nil {
			return tokens.Config{}, fmt.Errorf("decode %s: %w", format, err)
		}
	case FormatCSS:
		return tokens.Config{}, fmt.Errorf("%w: %s", ErrDecodeUnsupported, format)
	default:
		return tokens.Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return cfg, nil
}

func execute(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name+".tmpl", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// assignedObject returns the object literal on the right-hand side of the
// module.exports or tailwind.config assignment.
func assignedObject(source string) (string, error) {
	idx := -1
	for _, target := range []string{"module.exports", "tailwind.config"} {
		if i := strings.Index(source, target); i >= 0 {
			idx = i + len(target)
			break
		}
	}
	if idx < 0 {
		return "", errors.New("no config assignment found")
	}

	rest := strings.TrimSpace(source[idx:])
	if !strings.HasPrefix(rest, "=") {
		return "", errors.New("expected '=' after config target")
	}
	rest = strings.TrimSpace(strings.TrimPrefix(rest, "="))
	rest = strings.TrimSpace(strings.TrimSuffix(rest, ";"))
	if !strings.HasPrefix(rest, "{") || !strings.HasSuffix(rest, "}") {
		return "", errors.New("config is not an object literal")
	}
	return rest, nil
}
