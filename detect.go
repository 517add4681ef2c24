package jx

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// envelopeKey is the conventional wrapper key for paginated API
// responses: {"total": 2, "items": [...]}.
const envelopeKey = "items"

// A Stream yields decoded records from a byte stream, classifying the
// input shape from its first non-blank line:
//
//   - a line starting with "[" is a JSON array, possibly pretty-printed
//     across many lines; the rest of the stream is consumed and the
//     array elements become the records
//   - a line that is exactly "{" is a pretty-printed object; the rest of
//     the stream is consumed and parsed as one object
//   - an object whose "items" key holds an array is a paginated
//     envelope; the elements of that array become the records
//   - anything else is treated as JSON Lines: one object per line, blank
//     lines skipped
//
// Array, multi-line and envelope handling require smart mode; without it
// only the JSON Lines branch runs and an envelope object passes through
// whole. A Stream is single-pass and not restartable. Any invalid JSON,
// and any record that is not an object, is a fatal error.
type Stream struct {
	br       *bufio.Reader
	smart    bool
	started  bool
	buffered []*Record // records resolved from the first buffered portion
	lineMode bool      // keep reading one object per line after the buffer
	done     bool
	line     int // number of the last line read, 1-based
}

// NewStream returns a stream reading records from r. Smart mode enables
// array, multi-line and paginated envelope detection.
func NewStream(r io.Reader, smart bool) *Stream {
	return &Stream{br: bufio.NewReader(r), smart: smart}
}

// Next returns the next record in input order, or io.EOF when the
// stream is exhausted. A decode error terminates the stream.
func (s *Stream) Next() (*Record, error) {
	if !s.started {
		s.started = true
		if err := s.start(); err != nil {
			s.done = true
			return nil, err
		}
	}
	if len(s.buffered) > 0 {
		rec := s.buffered[0]
		s.buffered = s.buffered[1:]
		return rec, nil
	}
	if s.done || !s.lineMode {
		return nil, io.EOF
	}
	for {
		line, err := s.readLine()
		if err != nil {
			s.done = true
			return nil, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := decodeRecord([]byte(line))
		if err != nil {
			s.done = true
			return nil, fmt.Errorf("line %d: %w", s.line, err)
		}
		return rec, nil
	}
}

// start reads the first non-blank line and resolves the input shape.
func (s *Stream) start() error {
	first, err := s.readLine()
	for err == nil && strings.TrimSpace(first) == "" {
		first, err = s.readLine()
	}
	if err == io.EOF {
		// blank input: zero records
		return nil
	}
	if err != nil {
		return err
	}

	stripped := strings.TrimSpace(first)

	if s.smart && strings.HasPrefix(stripped, "[") {
		slog.Debug("array input detected", "line", s.line)
		rest, err := io.ReadAll(s.br)
		if err != nil {
			return err
		}
		return s.bufferArray(append([]byte(first), rest...))
	}

	if s.smart && stripped == "{" {
		slog.Debug("multi-line object detected", "line", s.line)
		rest, err := io.ReadAll(s.br)
		if err != nil {
			return err
		}
		rec, err := decodeRecord(append([]byte(first), rest...))
		if err != nil {
			return fmt.Errorf("multi-line object: %w", err)
		}
		return s.bufferObject(rec, false)
	}

	rec, err := decodeRecord([]byte(first))
	if err != nil {
		return fmt.Errorf("line %d: %w", s.line, err)
	}
	return s.bufferObject(rec, true)
}

// bufferObject resolves a leading object: in smart mode an envelope is
// unwrapped into its items, otherwise the object is a single record and
// lineMode decides whether the rest of the stream is read line by line.
func (s *Stream) bufferObject(rec *Record, lineMode bool) error {
	if s.smart {
		if items, ok := envelopeItems(rec); ok {
			slog.Debug("paginated envelope detected", "items", len(items))
			return s.bufferElements(items)
		}
	}
	s.buffered = []*Record{rec}
	s.lineMode = lineMode
	return nil
}

func (s *Stream) bufferArray(data []byte) error {
	v, err := decodeValue(data)
	if err != nil {
		return fmt.Errorf("array input: %w", err)
	}
	arr, ok := v.([]any)
	if !ok {
		return fmt.Errorf("array input: unexpected %s", jsonTypeName(v))
	}
	return s.bufferElements(arr)
}

func (s *Stream) bufferElements(arr []any) error {
	recs := make([]*Record, 0, len(arr))
	for i, el := range arr {
		rec, ok := el.(*Record)
		if !ok {
			return fmt.Errorf("element %d: %w: got %s", i, ErrNotObject, jsonTypeName(el))
		}
		recs = append(recs, rec)
	}
	s.buffered = recs
	return nil
}

// envelopeItems reports whether rec is a paginated envelope and returns
// its item list. A missing "items" key or a non-array value is not an
// error; the object simply is not an envelope.
func envelopeItems(rec *Record) ([]any, bool) {
	v, ok := rec.Get(envelopeKey)
	if !ok {
		return nil, false
	}
	arr, ok := v.([]any)
	return arr, ok
}

// readLine returns the next input line. A final line without a trailing
// newline is still returned; io.EOF only signals exhaustion.
func (s *Stream) readLine() (string, error) {
	line, err := s.br.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	s.line++
	return line, nil
}
