package jx

import (
	"fmt"
	"io"
	"log/slog"
)

// Options is the resolved configuration for one run. Callers (the jx
// CLI, or anything else driving the library) resolve their own flag or
// config surface into this struct.
type Options struct {
	// Delimiter selects delimited output when non-nil ("\t" gives TSV).
	// Nil selects aligned columnar output.
	Delimiter *string

	// Flatten collapses nested structure before projection, joining key
	// path segments with Joiner (DefaultJoiner when empty).
	Flatten bool
	Joiner  string

	// Smart enables auto-detection of array, multi-line and paginated
	// envelope input shapes.
	Smart bool

	// SkipHeaders suppresses the header row. Without an explicit field
	// list it also stops field derivation: each record then projects
	// its own keys.
	SkipHeaders bool

	// NormalizeSpace replaces spaces with underscores in output cells.
	NormalizeSpace bool

	// Fields is the ordered field selection. Empty means derive the
	// selection from the first record.
	Fields []string

	// Names prints the first record's keys, one per line, and stops.
	Names bool

	// AllKeys prints the union of every record's keys in first-seen
	// order instead of projecting values. Mutually exclusive with
	// Names; callers enforce that.
	AllKeys bool

	// FlushEachRow flushes delimited output after every row when the
	// writer supports it, so terminal users get early feedback.
	FlushEachRow bool
}

// Run decodes records from r and writes the selected projection to w.
// Records are processed strictly in input order; the first decode
// failure aborts the run. Rows already written by the delimited printer
// stay written; the column printer emits nothing on failure since it
// only writes at flush.
func Run(w io.Writer, r io.Reader, opts Options) error {
	printer := newPrinter(w, opts)
	flattener := Flattener{Joiner: opts.Joiner}
	stream := NewStream(r, opts.Smart)

	fields := opts.Fields
	if len(fields) > 0 && !opts.SkipHeaders {
		if err := printer.Print(fields); err != nil {
			return err
		}
	}

	if opts.AllKeys {
		var fl *Flattener
		if opts.Flatten {
			fl = &flattener
		}
		return PrintAllKeys(w, stream, fl)
	}

	for {
		rec, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if opts.Flatten {
			rec = flattener.Flatten(rec)
		}

		if opts.Names {
			for _, key := range rec.Keys() {
				if _, err := fmt.Fprintln(w, key); err != nil {
					return err
				}
			}
			return nil
		}

		if len(fields) == 0 && !opts.SkipHeaders {
			slog.Warn("taking field names from first object, use -H to disable")
			fields = rec.Keys()
			if err := printer.Print(fields); err != nil {
				return err
			}
		}

		if err := printer.Print(Project(rec, fields, opts.NormalizeSpace)); err != nil {
			return err
		}
	}

	return printer.Flush()
}

func newPrinter(w io.Writer, opts Options) Printer {
	if opts.Delimiter == nil {
		return NewColumnPrinter(w)
	}
	p := NewDelimitedPrinter(w, *opts.Delimiter)
	if opts.FlushEachRow {
		if f, ok := w.(Flusher); ok {
			p.Flusher = f
		}
	}
	return p
}
