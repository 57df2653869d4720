package devopsfmt

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, t *Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(Records(t))
}
