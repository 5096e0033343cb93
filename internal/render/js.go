package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// jsToJSON rewrites a hand-written config script so its object literal
// parses as JSON: comments are dropped, single-quoted strings and bare
// keys become JSON strings, and trailing commas are removed. Anything else
// passes through untouched and is left for encoding/json to reject.
func jsToJSON(src string) (string, error) {
	var out strings.Builder
	out.Grow(len(src))

	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '"' || c == '\'':
			value, n, err := readJSString(src[i:])
			if err != nil {
				return "", fmt.Errorf("offset %d: %w", i, err)
			}
			quoted, err := json.Marshal(value)
			if err != nil {
				return "", err
			}
			out.Write(quoted)
			i += n
		case c == '/' && i+1 < len(src) && (src[i+1] == '/' || src[i+1] == '*'):
			end, err := skipComment(src, i)
			if err != nil {
				return "", fmt.Errorf("offset %d: %w", i, err)
			}
			out.WriteByte(' ')
			i = end
		case c == ',':
			if next := skipSpaceAndComments(src, i+1); next < len(src) && (src[next] == '}' || src[next] == ']') {
				i++
				continue
			}
			out.WriteByte(c)
			i++
		case isWordByte(c):
			j := i
			for j < len(src) && isWordByte(src[j]) {
				j++
			}
			word := src[i:j]
			if next := skipSpaceAndComments(src, j); next < len(src) && src[next] == ':' {
				quoted, err := json.Marshal(word)
				if err != nil {
					return "", err
				}
				out.Write(quoted)
			} else {
				out.WriteString(word)
			}
			i = j
		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String(), nil
}

// readJSString decodes the quoted string at the start of src and returns
// its value and the number of bytes consumed.
func readJSString(src string) (string, int, error) {
	quote := src[0]
	var b strings.Builder
	for i := 1; i < len(src); i++ {
		c := src[i]
		switch {
		case c == quote:
			return b.String(), i + 1, nil
		case c == '\n':
			return "", 0, errors.New("unterminated string")
		case c != '\\':
			b.WriteByte(c)
			continue
		}

		i++
		if i >= len(src) {
			break
		}
		switch e := src[i]; e {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'u':
			if i+4 >= len(src) {
				return "", 0, errors.New("short unicode escape")
			}
			code, err := strconv.ParseUint(src[i+1:i+5], 16, 32)
			if err != nil {
				return "", 0, fmt.Errorf("bad unicode escape %q", src[i+1:i+5])
			}
			b.WriteRune(rune(code))
			i += 4
		case '\n':
			// line continuation
		default:
			b.WriteByte(e)
		}
	}
	return "", 0, errors.New("unterminated string")
}

// skipComment returns the offset just past the comment starting at i.
func skipComment(src string, i int) (int, error) {
	if src[i+1] == '/' {
		if end := strings.IndexByte(src[i:], '\n'); end >= 0 {
			return i + end, nil
		}
		return len(src), nil
	}
	end := strings.Index(src[i+2:], "*/")
	if end < 0 {
		return 0, errors.New("unterminated comment")
	}
	return i + 2 + end + 2, nil
}

func skipSpaceAndComments(src string, i int) int {
	for i < len(src) {
		switch c := src[i]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '/' && i+1 < len(src) && (src[i+1] == '/' || src[i+1] == '*'):
			end, err := skipComment(src, i)
			if err != nil {
				return len(src)
			}
			i = end
		default:
			return i
		}
	}
	return i
}

func isWordByte(c byte) bool {
	return c == '_' || c == '$' || c == '.' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
