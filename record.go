package jx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotObject reports input where a JSON object was required.
var ErrNotObject = errors.New("record is not a JSON object")

// A Record is a decoded JSON object with its keys in document order.
// Decoding into map[string]any would lose key order, and jx derives
// headers and enumerates keys in the order the input declares them, so
// Record keeps an ordered key list alongside the lookup map.
//
// Values are the decoded variants produced by the token walk: string,
// json.Number, bool, nil, *Record for nested objects and []any for
// arrays.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// Set assigns value under key. A key keeps its original position when
// written again; a new key is appended to the order.
func (r *Record) Set(key string, value any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the record's keys in document order. The slice is owned
// by the record and must not be modified.
func (r *Record) Keys() []string { return r.keys }

// Len returns the number of keys.
func (r *Record) Len() int { return len(r.keys) }

// MarshalJSON writes the record as a compact JSON object with keys in
// document order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeValue parses data as a single JSON value, rejecting trailing
// content. Numbers stay in literal form as json.Number.
func decodeValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := parseValue(dec)
	if err != nil {
		return nil, err
	}
	switch _, err := dec.Token(); err {
	case io.EOF:
		return v, nil
	case nil:
		return nil, errors.New("unexpected data after JSON value")
	default:
		return nil, err
	}
}

// decodeRecord parses data as a single JSON object.
func decodeRecord(data []byte) (*Record, error) {
	v, err := decodeValue(data)
	if err != nil {
		return nil, err
	}
	rec, ok := v.(*Record)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotObject, jsonTypeName(v))
	}
	return rec, nil
}

// parseValue reads one value from dec via its token stream so that
// object key order survives decoding.
func parseValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		// string, json.Number, bool or nil
		return tok, nil
	}
	switch delim {
	case '{':
		rec := NewRecord()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			value, err := parseValue(dec)
			if err != nil {
				return nil, err
			}
			rec.Set(keyTok.(string), value)
		}
		if _, err := dec.Token(); err != nil { // closing '}'
			return nil, err
		}
		return rec, nil
	case '[':
		var arr []any
		for dec.More() {
			value, err := parseValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		if _, err := dec.Token(); err != nil { // closing ']'
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected %q", delim.String())
	}
}

// jsonTypeName names a decoded value's JSON type for error messages.
func jsonTypeName(v any) string {
	switch v.(type) {
	case *Record:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
