package jx

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Project renders one output cell per requested field, in field order.
// A missing field renders as an empty cell. An empty field list
// projects the record's own keys in document order. When normalizeSpace
// is set every space in a cell becomes "_", which keeps columnar output
// cut- and awk-friendly.
func Project(rec *Record, fields []string, normalizeSpace bool) []string {
	if len(fields) == 0 {
		fields = rec.Keys()
	}
	cells := make([]string, len(fields))
	for i, name := range fields {
		if v, ok := rec.Get(name); ok {
			cells[i] = cellString(v)
		}
		if normalizeSpace {
			cells[i] = strings.ReplaceAll(cells[i], " ", "_")
		}
	}
	return cells
}

// cellString renders a decoded value as a single cell. Strings are
// verbatim and scalars keep their JSON form; containers re-serialize as
// compact JSON so unflattened nested values survive field selection.
func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	}
}
