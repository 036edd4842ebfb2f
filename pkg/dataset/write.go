package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Marshal encodes rows in the dataset's on-disk layout: every array element
// and object member starts on its own unindented line, keys are followed by
// ": ", empty containers stay "[]" and "{}", non-ASCII text is written as
// UTF-8 and there is no trailing newline.
func Marshal(rows []Row) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('[')
	for i, r := range rows {
		if i > 0 {
			compact.WriteByte(',')
		}
		if err := writeCompactRow(&compact, r); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	compact.WriteByte(']')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", ""); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Write marshals rows to w.
func Write(w io.Writer, rows []Row) error {
	data, err := Marshal(rows)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeCompactRow(buf *bytes.Buffer, r Row) error {
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeString(f.Key)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := json.Compact(buf, f.Value); err != nil {
			return fmt.Errorf("field %q: %w", f.Key, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

// encodeString quotes s without HTML escaping.
func encodeString(s string) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}
