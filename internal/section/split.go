package section

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidSplitRule is returned for split rules that cannot split a line.
var ErrInvalidSplitRule = errors.New("invalid split rule")

// Delimiter names with special meaning. Any other non-empty delimiter is
// matched literally.
const (
	// Whitespace splits on runs of blanks, ignoring leading ones.
	Whitespace = "whitespace"
	// Tab splits on every single tab character.
	Tab = "tab"
)

// SplitRule describes how one input line becomes a row.
type SplitRule struct {
	// Delimiter is Whitespace, Tab, or a literal separator. Empty means
	// Whitespace.
	Delimiter string
	// Fields caps the number of fields per line. The last field keeps the
	// rest of the line, delimiters included. Zero means unlimited.
	Fields int
}

// Validate reports whether r can be used to split lines.
func (r SplitRule) Validate() error {
	if r.Fields < 0 {
		return fmt.Errorf("%w: fields must not be negative, got %d", ErrInvalidSplitRule, r.Fields)
	}
	return nil
}

// Split breaks line into trimmed fields.
func (r SplitRule) Split(line string) []string {
	var parts []string
	switch r.Delimiter {
	case "", Whitespace:
		parts = splitFieldsN(line, r.Fields)
	case Tab:
		parts = splitN(line, "\t", r.Fields)
	default:
		parts = splitN(line, r.Delimiter, r.Fields)
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// String describes the rule, e.g. "tab, max 4 fields".
func (r SplitRule) String() string {
	d := r.Delimiter
	switch d {
	case "":
		d = Whitespace
	case Whitespace, Tab:
	default:
		d = fmt.Sprintf("%q", d)
	}
	if r.Fields > 0 {
		return fmt.Sprintf("%s, max %d fields", d, r.Fields)
	}
	return d
}

func splitN(s, sep string, n int) []string {
	if n <= 0 {
		n = -1
	}
	return strings.SplitN(s, sep, n)
}

// splitFieldsN is strings.Fields with a cap of n fields. Once n-1 fields are
// taken the remainder, minus surrounding blanks, is the last field.
func splitFieldsN(s string, n int) []string {
	if n <= 0 {
		return strings.Fields(s)
	}
	var out []string
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	for s != "" {
		if len(out) == n-1 {
			out = append(out, strings.TrimRightFunc(s, unicode.IsSpace))
			break
		}
		i := strings.IndexFunc(s, unicode.IsSpace)
		if i < 0 {
			out = append(out, s)
			break
		}
		out = append(out, s[:i])
		s = strings.TrimLeftFunc(s[i:], unicode.IsSpace)
	}
	return out
}
