package devopsfmt

import (
	"fmt"
	"io"
	"strings"
)

// tsvReplacer keeps fields on one line and in one column.
var tsvReplacer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

func writeTSV(w io.Writer, t *Data) error {
	if len(t.Header) > 0 {
		if err := writeTSVRow(w, t.Header); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if err := writeTSVRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeTSVRow(w io.Writer, cells []string) error {
	clean := make([]string, len(cells))
	for i, c := range cells {
		clean[i] = tsvReplacer.Replace(c)
	}
	_, err := fmt.Fprintln(w, strings.Join(clean, "\t"))
	return err
}
