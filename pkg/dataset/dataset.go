// Package dataset reads and writes the benchmark dataset: a JSON array of
// schema-free row objects.
//
// Rows keep their members in file order and every value as the raw JSON
// text it was read with, so a load/write cycle changes nothing but the
// layout and the id field.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/benchorder/pkg/errors"
)

// Well-known row fields.
const (
	FieldID       = "id"
	FieldKeyTerms = "key_terms"
)

// Field is one member of a row object.
type Field struct {
	Key   string
	Value json.RawMessage
}

// Row is one dataset record with members in file order.
type Row struct {
	Fields []Field
}

// Get returns the raw value stored under key.
func (r Row) Get(key string) (json.RawMessage, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Set replaces the value under key in place, or appends the member when
// the key is new.
func (r *Row) Set(key string, value json.RawMessage) {
	for i := range r.Fields {
		if r.Fields[i].Key == key {
			r.Fields[i].Value = value
			return
		}
	}
	r.Fields = append(r.Fields, Field{Key: key, Value: value})
}

// SetID stores n as a zero-padded, at least four digit string id.
func (r *Row) SetID(n int) {
	r.Set(FieldID, json.RawMessage(fmt.Sprintf("%q", FormatID(n))))
}

// FormatID renders a 1-based position the way ids are stored ("0007").
func FormatID(n int) string {
	return fmt.Sprintf("%04d", n)
}

// Topic returns the normalised key_terms of the row.
//
// A string is trimmed. For an array only the first element counts, and only
// if it is a string. Anything else (missing, null, empty array, numbers,
// objects) yields "".
func (r Row) Topic() string {
	raw, ok := r.Get(FieldKeyTerms)
	if !ok {
		return ""
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch kt := v.(type) {
	case string:
		return strings.TrimSpace(kt)
	case []any:
		if len(kt) == 0 {
			return ""
		}
		if s, ok := kt[0].(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// UniqueTopics returns the distinct non-empty topics of rows in first-seen
// order.
func UniqueTopics(rows []Row) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range rows {
		t := r.Topic()
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// Load reads a dataset file.
func Load(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read dataset %s", path)
	}
	rows, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// Parse decodes a dataset document. The top level must be an array whose
// elements are all objects. A key repeated within one object keeps its first
// position and its last value.
func Parse(data []byte) ([]Row, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode dataset")
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "expected a JSON array of rows")
	}

	var rows []Row
	for i := 0; dec.More(); i++ {
		row, err := parseRow(dec)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "row %d", i)
		}
		rows = append(rows, row)
	}
	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode dataset")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "trailing data after dataset array")
	}
	return rows, nil
}

func parseRow(dec *json.Decoder) (Row, error) {
	tok, err := dec.Token()
	if err != nil {
		return Row{}, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return Row{}, fmt.Errorf("expected an object, got %v", tok)
	}

	var r Row
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Row{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Row{}, fmt.Errorf("unexpected token %v", tok)
		}
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return Row{}, fmt.Errorf("field %q: %w", key, err)
		}
		r.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return Row{}, err
	}
	return r, nil
}
