// Package devopsfmt renders rows of text fields as terminal tables and a
// handful of machine-readable formats.
//
// The central entry points are [Write] and [Marshal], which accept a [Format]
// and a [Data]. A Data is a header plus rows; rows may be shorter or longer
// than the header. Short rows render with blank cells and long rows widen the
// table with header-less columns. Neither is an error.
//
// # Table
//
// The default format. Column widths are measured in terminal cells, so wide
// runes stay aligned. The border is chosen with [BorderStyle]:
//
//   - [BorderGrid] (default): ASCII borders, a "=" rule under the header and a
//     rule between every data row
//   - [BorderASCII], [BorderRounded], [BorderHeavy], [BorderDouble]
//   - [BorderNone]: space-separated columns with a dashed header rule
//
// Set [Data.HeaderStyle] to decorate header cells. It runs after padding, so
// escape sequences never affect width calculations.
//
// # Records
//
// JSON, JSONL, YAML, and GoTemplate render each row as a record keyed by its
// column header ("IMAGE ID" becomes "image_id"). Keys keep column order.
// Fields past the end of the header get "column_N" keys.
//
//	devopsfmt.Write(os.Stdout, devopsfmt.GoTemplate("{{.port}}/{{.protocol}}"), t)
//
// # Format Selection
//
// Use [ParseFormat] and [ParseBorder] to convert flag values:
//
//	f, err := devopsfmt.ParseFormat(flagValue)
//	devopsfmt.Write(os.Stdout, f, t)
//
// # Errors
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrUnsupportedBorder] — unknown border style
//   - [ErrInvalidTemplate] — invalid go-template syntax
package devopsfmt
