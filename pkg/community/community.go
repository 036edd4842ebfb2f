// Package community builds the per-graph community metadata file from a
// run's curated LLM package, and vets the community details document that is
// published alongside it.
package community

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Section is one community summary. Values keep the JSON text they had in the
// package; absent fields default to "" (or [] for TopFindings).
type Section struct {
	Title       json.RawMessage `json:"title"`
	Type        json.RawMessage `json:"type"`
	Summary     json.RawMessage `json:"summary"`
	TopFindings json.RawMessage `json:"top_findings"`
}

var (
	emptyString = json.RawMessage(`""`)
	emptyList   = json.RawMessage(`[]`)
)

// Meta is the content of a <slug>_meta.json file.
type Meta struct {
	Communities Communities `json:"communities"`
}

// Communities maps community id to its section, in first-seen order.
type Communities struct {
	keys []string
	byID map[string]Section
}

// Len returns the number of communities.
func (c Communities) Len() int { return len(c.keys) }

// IDs returns the community ids in first-seen order.
func (c Communities) IDs() []string { return append([]string(nil), c.keys...) }

// Get returns the section for id.
func (c Communities) Get(id string) (Section, bool) {
	s, ok := c.byID[id]
	return s, ok
}

func (c *Communities) put(id string, s Section) {
	if c.byID == nil {
		c.byID = make(map[string]Section)
	}
	if _, ok := c.byID[id]; !ok {
		c.keys = append(c.keys, id)
	}
	c.byID[id] = s
}

// MarshalJSON writes the communities as an object in first-seen order.
func (c Communities) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := encode(id)
		if err != nil {
			return nil, err
		}
		v, err := encode(c.byID[id])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Marshal encodes m with two-space indentation and no trailing newline.
func (m Meta) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// BuildMetaFile reads a curated package file and builds its metadata.
func BuildMetaFile(path string) (Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Meta{}, err
	}
	m, err := BuildMeta(data)
	if err != nil {
		return Meta{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// BuildMeta extracts community summaries from a curated package document.
//
// Every object in the package's "communities" array with a usable
// community_id contributes one section; later sections with the same id
// replace earlier ones. A missing "communities" member yields empty
// metadata.
func BuildMeta(pkg []byte) (Meta, error) {
	var doc struct {
		Communities json.RawMessage `json:"communities"`
	}
	if err := json.Unmarshal(pkg, &doc); err != nil {
		return Meta{}, fmt.Errorf("decode package: %w", err)
	}

	var m Meta
	if len(doc.Communities) == 0 || string(doc.Communities) == "null" {
		return m, nil
	}
	var sections []json.RawMessage
	if err := json.Unmarshal(doc.Communities, &sections); err != nil {
		return Meta{}, fmt.Errorf("communities: expected an array: %w", err)
	}

	for _, raw := range sections {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
			continue
		}
		id, ok := CommunityKey(fields["community_id"])
		if !ok {
			continue
		}
		m.Communities.put(id, Section{
			Title:       field(fields, "title", emptyString),
			Type:        field(fields, "type", emptyString),
			Summary:     field(fields, "summary", emptyString),
			TopFindings: field(fields, "top_findings", emptyList),
		})
	}
	return m, nil
}

// CommunityKey normalises a community_id value to its decimal key. Integers
// are used as is, floats are truncated toward zero and strings must hold an
// integer. Null, booleans, non-finite numbers and other types are rejected.
func CommunityKey(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", false
	}

	switch x := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(x.String(), 10, 64); err == nil {
			return strconv.FormatInt(i, 10), true
		}
		f, err := x.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return "", false
		}
		t := math.Trunc(f)
		if t == 0 {
			t = 0 // drop the sign of -0
		}
		return strconv.FormatFloat(t, 'f', 0, 64), true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return "", false
		}
		return strconv.FormatInt(i, 10), true
	}
	return "", false
}

func field(fields map[string]json.RawMessage, name string, def json.RawMessage) json.RawMessage {
	if v, ok := fields[name]; ok {
		return v
	}
	return def
}

// ValidDetails reports whether a community details document can be
// published as is.
func ValidDetails(data []byte) bool {
	return json.Valid(data)
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
