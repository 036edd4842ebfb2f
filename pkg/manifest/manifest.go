// Package manifest maps topics to the slugs their graphs were exported under.
//
// The export stage writes the manifest; the reorder stage reads it to find a
// row's graph. Entries keep insertion order so the file lists topics in
// dataset order.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/benchorder/pkg/errors"
	"github.com/matzehuels/benchorder/pkg/slug"
)

// FileName is the manifest's name inside the graphs directory.
const FileName = "manifest.json"

// Entry is one topic→slug mapping.
type Entry struct {
	Topic string
	Slug  string
}

// Manifest is an ordered topic→slug map.
type Manifest struct {
	entries []Entry
	index   map[string]int

	// Skipped lists topics whose value was not a well-formed slug when the
	// manifest was parsed.
	Skipped []string
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{index: make(map[string]int)}
}

// Add records topic→slug. Re-adding a topic replaces its slug in place.
func (m *Manifest) Add(topic, s string) {
	if i, ok := m.index[topic]; ok {
		m.entries[i].Slug = s
		return
	}
	m.index[topic] = len(m.entries)
	m.entries = append(m.entries, Entry{Topic: topic, Slug: s})
}

// Lookup returns the slug recorded for topic.
func (m *Manifest) Lookup(topic string) (string, bool) {
	i, ok := m.index[topic]
	if !ok {
		return "", false
	}
	return m.entries[i].Slug, true
}

// Len returns the number of topics.
func (m *Manifest) Len() int { return len(m.entries) }

// Entries returns the mappings in insertion order.
func (m *Manifest) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Slugs returns the distinct slugs in insertion order.
func (m *Manifest) Slugs() []string {
	seen := make(map[string]bool, len(m.entries))
	out := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		if !seen[e.Slug] {
			seen[e.Slug] = true
			out = append(out, e.Slug)
		}
	}
	return out
}

// Load reads a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read manifest %s", path)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest document. The top level must be an object.
// Members whose value is not a string are ignored; string values that are not
// slugs are recorded in Skipped and left out.
func Parse(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "expected a JSON object of topic to slug")
	}

	m := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
		}
		topic, _ := tok.(string)

		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "topic %q", topic)
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		if !slug.Valid(s) {
			m.Skipped = append(m.Skipped, topic)
			continue
		}
		m.Add(topic, s)
	}
	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "trailing data after manifest object")
	}
	return m, nil
}

// Marshal encodes the manifest as a two-space indented object in insertion
// order, without a trailing newline.
func (m *Manifest) Marshal() ([]byte, error) {
	if len(m.entries) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, e := range m.entries {
		k, err := quote(e.Topic)
		if err != nil {
			return nil, err
		}
		v, err := quote(e.Slug)
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.Write(k)
		buf.WriteString(": ")
		buf.Write(v)
		if i < len(m.entries)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func quote(s string) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}
