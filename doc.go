// Package jx extracts named fields from streams of JSON records and
// renders them as aligned columns or delimited text, a cut(1) for JSON.
//
// The entry point is [Run], which reads records from an io.Reader,
// projects the requested fields and writes rows to an io.Writer, driven
// by a resolved [Options] value:
//
//	delim := ","
//	err := jx.Run(os.Stdout, os.Stdin, jx.Options{
//		Smart:     true,
//		Delimiter: &delim,
//		Fields:    []string{"name", "age"},
//	})
//
// # Input shapes
//
// Input is classified from its first non-blank line by [Stream]:
//
//   - JSON Lines: one object per line, blank lines skipped
//   - a JSON array of objects, on one line or pretty-printed
//   - a pretty-printed object opening with a bare "{"
//   - a paginated envelope: an object with an "items" array, whose
//     elements become the records
//
// Array, multi-line and envelope detection are on when Options.Smart is
// set; without it every input is treated as JSON Lines. Decoding
// preserves object key order (see [Record]), which fixes header
// derivation and key enumeration order.
//
// # Flattening
//
// [Flattener] collapses nested objects and arrays into joined key
// paths, so "addresses_0_zipcode" (or "addresses.0.zipcode" with the
// "." joiner) selects a nested leaf.
//
// # Output
//
// Two [Printer] implementations render rows. [ColumnPrinter] buffers
// all rows and left-justifies each column to its widest cell, never
// padding the last cell:
//
//	name       age
//	loooooong  2
//
// [DelimitedPrinter] joins cells with a configured delimiter and writes
// each row immediately. A configured Options.Delimiter selects it;
// columnar output is the default.
//
// # Errors
//
// Malformed JSON is fatal: the run stops at the first decode error with
// no per-line recovery. A requested field missing from a record is not
// an error; it renders as an empty cell.
package jx
