package jx

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// A Printer accepts output rows and writes them to its destination. The
// column printer buffers everything until Flush; the delimited printer
// writes each row immediately and its Flush is a no-op.
type Printer interface {
	Print(row []string) error
	Flush() error
}

// A Flusher can flush buffered output, e.g. a bufio.Writer.
type Flusher interface {
	Flush() error
}

// columnSep separates aligned columns in columnar output.
const columnSep = "  "

// ColumnPrinter buffers every row and aligns columns on Flush. The
// buffer grows with the input, a documented limitation for very large
// streams.
type ColumnPrinter struct {
	w    io.Writer
	rows [][]string
}

// NewColumnPrinter returns a column printer writing to w.
func NewColumnPrinter(w io.Writer) *ColumnPrinter {
	return &ColumnPrinter{w: w}
}

// Print buffers one row.
func (p *ColumnPrinter) Print(row []string) error {
	p.rows = append(p.rows, row)
	return nil
}

// Flush writes all buffered rows, left-justifying cells to their
// column's maximum display width. The column count comes from the first
// row: a ragged row prints only the cells it has and cells beyond the
// first row's count are dropped. The last printed cell of each row is
// never padded, so lines carry no trailing whitespace. Flushing with no
// buffered rows writes nothing.
func (p *ColumnPrinter) Flush() error {
	if len(p.rows) == 0 {
		return nil
	}
	n := len(p.rows[0])
	widths := make([]int, n)
	for _, row := range p.rows {
		for i, cell := range row {
			if i >= n {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for _, row := range p.rows {
		m := min(len(row), n)
		if m == 0 {
			continue
		}
		parts := make([]string, m)
		for i := 0; i < m; i++ {
			if i < m-1 {
				parts[i] = ljust(row[i], widths[i])
			} else {
				parts[i] = row[i]
			}
		}
		if _, err := fmt.Fprintln(p.w, strings.Join(parts, columnSep)); err != nil {
			return err
		}
	}
	p.rows = nil
	return nil
}

func ljust(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// DelimitedPrinter joins each row with a fixed delimiter and writes it
// immediately.
type DelimitedPrinter struct {
	// Flusher, when set, is flushed after every row so terminal users
	// see output as it is produced.
	Flusher Flusher

	w      io.Writer
	joiner string
}

// NewDelimitedPrinter returns a printer joining cells with joiner,
// writing one row per line to w.
func NewDelimitedPrinter(w io.Writer, joiner string) *DelimitedPrinter {
	return &DelimitedPrinter{w: w, joiner: joiner}
}

// Print writes one row.
func (p *DelimitedPrinter) Print(row []string) error {
	if _, err := fmt.Fprintln(p.w, strings.Join(row, p.joiner)); err != nil {
		return err
	}
	if p.Flusher != nil {
		return p.Flusher.Flush()
	}
	return nil
}

// Flush implements Printer; rows are already written.
func (p *DelimitedPrinter) Flush() error { return nil }
