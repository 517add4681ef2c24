package jx

import (
	"fmt"
	"io"
)

// PrintAllKeys writes the union of keys across all records, one per
// line, in the order they are first seen. Keys are emitted as they are
// discovered rather than buffered. When flatten is non-nil each record
// is flattened before its keys are read.
func PrintAllKeys(w io.Writer, stream *Stream, flatten *Flattener) error {
	seen := make(map[string]struct{})
	for {
		rec, err := stream.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if flatten != nil {
			rec = flatten.Flatten(rec)
		}
		for _, key := range rec.Keys() {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			if _, err := fmt.Fprintln(w, key); err != nil {
				return err
			}
		}
	}
}
