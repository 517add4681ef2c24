package jx

import (
	"strconv"
	"strings"
)

// DefaultJoiner separates path segments in flattened keys unless the
// caller overrides it.
const DefaultJoiner = "_"

// A Flattener collapses nested objects and arrays into a single-level
// record keyed by joined path segments: {"a": {"b": 2, "d": [5, 6]}}
// flattens to a_b=2, a_d_0=5, a_d_1=6. Two distinct paths joining to
// the same string overwrite each other silently, last write wins.
type Flattener struct {
	// Joiner separates path segments; "." is a common alternative to
	// the default "_".
	Joiner string
}

// Flatten walks v depth-first and returns a flat record of its scalar
// leaves. Key order is the visit order, so a record flattens into the
// order its input declared. Flattening an already-flat record returns
// an equal record.
func (f Flattener) Flatten(v any) *Record {
	out := NewRecord()
	f.walk(v, nil, out)
	return out
}

func (f Flattener) walk(v any, path []string, out *Record) {
	switch val := v.(type) {
	case *Record:
		for _, key := range val.Keys() {
			child, _ := val.Get(key)
			f.walk(child, append(path, key), out)
		}
	case []any:
		for i, child := range val {
			f.walk(child, append(path, strconv.Itoa(i)), out)
		}
	default:
		out.Set(strings.Join(path, f.joiner()), val)
	}
}

func (f Flattener) joiner() string {
	if f.Joiner == "" {
		return DefaultJoiner
	}
	return f.Joiner
}
