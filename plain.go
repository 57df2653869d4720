package devopsfmt

import (
	"fmt"
	"io"
	"strings"
)

// writePlain prints each row's fields separated by single spaces, without a
// header, for piping into line-oriented tools.
func writePlain(w io.Writer, t *Data) error {
	for _, row := range t.Rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return nil
}
