package devopsfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnsupportedBorder = errors.New("unsupported border style")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format represents an output format.
type Format string

const (
	Table    Format = "table"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	HTML     Format = "html"
	Plain    Format = "plain"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Table, Markdown, CSV, TSV, JSON, JSONL, YAML, HTML, Plain}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Structured reports whether f is meant for other programs rather than
// people. Structured formats stay parseable when there are no rows.
func (f Format) Structured() bool {
	switch f {
	case CSV, TSV, JSON, JSONL, YAML:
		return true
	default:
		return false
	}
}

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each row using a Go text/template.
// The template is executed against the row's record, keyed by column.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings. The empty string selects Table.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return Table, nil
	}
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderGrid    BorderStyle = iota // +-+| with = under the header and - between rows
	BorderASCII                      // +-+|
	BorderRounded                    // ╭─╮╰╯│┬┴├┤┼
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
	BorderNone                       // No borders, space-separated columns
)

var borderNames = []string{"grid", "ascii", "rounded", "heavy", "double", "none"}

// String returns the border style name.
func (b BorderStyle) String() string {
	if b < 0 || int(b) >= len(borderNames) {
		return fmt.Sprintf("BorderStyle(%d)", int(b))
	}
	return borderNames[b]
}

// Borders returns all border style names.
func Borders() []string {
	out := make([]string, len(borderNames))
	copy(out, borderNames)
	return out
}

// ParseBorder parses a border style name. The empty string selects
// BorderGrid.
func ParseBorder(s string) (BorderStyle, error) {
	if s == "" {
		return BorderGrid, nil
	}
	for i, name := range borderNames {
		if name == s {
			return BorderStyle(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBorder, s)
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Data is a header and its rows, plus the presentation knobs used by the
// table format. Other formats ignore Title, Border and HeaderStyle.
type Data struct {
	// Title is drawn above bordered tables. Empty means no title.
	Title  string
	Header []string
	Rows   [][]string
	// Align sets per-column alignment. Missing entries are AlignLeft.
	Align  []Alignment
	Border BorderStyle
	// HeaderStyle wraps each fully padded header cell. Nil means unstyled.
	HeaderStyle func(string) string
}

// Write formats t and writes to w. A nil table writes nothing.
func Write(w io.Writer, f Format, t *Data) error {
	if t == nil {
		return nil
	}
	switch f {
	case Table:
		return writeTable(w, t)
	case Markdown:
		return writeMarkdown(w, t)
	case CSV:
		return writeCSV(w, t)
	case TSV:
		return writeTSV(w, t)
	case JSON:
		return writeJSON(w, t)
	case JSONL:
		return writeJSONL(w, t)
	case YAML:
		return writeYAML(w, t)
	case HTML:
		return writeHTML(w, t)
	case Plain:
		return writePlain(w, t)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, t)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal formats t and returns the bytes.
func Marshal(f Format, t *Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
