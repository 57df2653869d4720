package devopsfmt

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Record is one row keyed by column, in column order.
type Record struct {
	Keys   []string
	Values []string
}

// Records converts the rows of t into records. Short rows get empty values
// for the missing columns. Headers that map to a key already in use get a
// numeric suffix ("a", "a_2", "a_3").
func Records(t *Data) []Record {
	keys := recordKeys(t.Header, colCount(t.Header, t.Rows))
	out := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		n := len(t.Header)
		if len(row) > n {
			n = len(row)
		}
		values := make([]string, n)
		copy(values, row)
		out = append(out, Record{Keys: keys[:n], Values: values})
	}
	return out
}

func recordKeys(header []string, numCols int) []string {
	keys := make([]string, numCols)
	seen := make(map[string]bool, numCols)
	for i := range keys {
		base := ColumnKey(cellAt(header, i), i)
		key := base
		for n := 2; seen[key]; n++ {
			key = base + "_" + strconv.Itoa(n)
		}
		seen[key] = true
		keys[i] = key
	}
	return keys
}

// ColumnKey derives a record key from a column header: lower case, with runs
// of anything other than letters and digits collapsed to "_". An empty
// header becomes "column_N" where N is the 1-based column number.
func ColumnKey(header string, col int) string {
	var sb strings.Builder
	pendingSep := false
	for _, r := range header {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && sb.Len() > 0 {
				sb.WriteByte('_')
			}
			pendingSep = false
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		pendingSep = true
	}
	if sb.Len() == 0 {
		return "column_" + strconv.Itoa(col+1)
	}
	return sb.String()
}

// Map returns the record as a map, for template execution.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r.Keys))
	for i, k := range r.Keys {
		m[k] = r.Values[i]
	}
	return m
}

// MarshalJSON writes the record as an object with keys in column order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.Values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML returns a mapping node with keys in column order.
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i, k := range r.Keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.Values[i]},
		)
	}
	return node, nil
}
