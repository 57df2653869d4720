package devopsfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

var markdownEscaper = strings.NewReplacer("|", `\|`)

func writeMarkdown(w io.Writer, t *Data) error {
	numCols := colCount(t.Header, t.Rows)
	if numCols == 0 {
		return nil
	}

	header := escapeMarkdown(t.Header, numCols)
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = escapeMarkdown(row, numCols)
	}

	// Calculate column widths (minimum 3 for alignment markers).
	widths := make([]int, numCols)
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	aligns := extendAligns(t.Align, numCols)

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}

	sep := make([]string, numCols)
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

// escapeMarkdown pads cells to numCols and escapes pipe characters.
func escapeMarkdown(cells []string, numCols int) []string {
	out := make([]string, numCols)
	for i := range out {
		out[i] = markdownEscaper.Replace(cellAt(cells, i))
	}
	return out
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
