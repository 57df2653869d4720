package devopsfmt

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, t *Data) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, rec := range Records(t) {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
