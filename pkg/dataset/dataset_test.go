package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/benchorder/pkg/errors"
)

func TestParseKeepsOrderAndRawValues(t *testing.T) {
	rows, err := Parse([]byte(`[
  {"id": 7, "question": "Q <1> & more", "key_terms": "  A  ", "score": 1.50, "meta": {"b": 1, "a": [ ]}},
  {"key_terms": ["B", "ignored"], "answer": "ünïcode"}
]`))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	keys := func(r Row) []string {
		var out []string
		for _, f := range r.Fields {
			out = append(out, f.Key)
		}
		return out
	}
	assert.Equal(t, []string{"id", "question", "key_terms", "score", "meta"}, keys(rows[0]))
	assert.Equal(t, []string{"key_terms", "answer"}, keys(rows[1]))

	score, ok := rows[0].Get("score")
	require.True(t, ok)
	assert.Equal(t, "1.50", string(score))

	assert.Equal(t, "A", rows[0].Topic())
	assert.Equal(t, "B", rows[1].Topic())
}

func TestParseDuplicateKeyKeepsFirstPositionLastValue(t *testing.T) {
	rows, err := Parse([]byte(`[{"a": 1, "b": 2, "a": 3}]`))
	require.NoError(t, err)
	require.Len(t, rows[0].Fields, 2)
	assert.Equal(t, "a", rows[0].Fields[0].Key)
	assert.Equal(t, "3", string(rows[0].Fields[0].Value))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"object top level", `{"rows": []}`},
		{"scalar top level", `42`},
		{"row is not an object", `[{"a": 1}, 2]`},
		{"truncated", `[{"a": 1}`},
		{"not json", `nope`},
		{"empty", ``},
		{"trailing data", `[] []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidDataset), "got %v", err)
		})
	}
}

func TestParseEmptyArray(t *testing.T) {
	rows, err := Parse([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestTopic(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"string", `"climate change"`, "climate change"},
		{"padded string", `"  climate change \n"`, "climate change"},
		{"array", `["first", "second"]`, "first"},
		{"array padded", `[" first "]`, "first"},
		{"empty array", `[]`, ""},
		{"array of numbers", `[1, 2]`, ""},
		{"null", `null`, ""},
		{"number", `12`, ""},
		{"object", `{"a": "b"}`, ""},
		{"bool", `true`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Row{Fields: []Field{{Key: FieldKeyTerms, Value: json.RawMessage(tt.raw)}}}
			assert.Equal(t, tt.want, r.Topic())
		})
	}

	assert.Equal(t, "", Row{}.Topic(), "missing key_terms")
}

func TestUniqueTopics(t *testing.T) {
	rows, err := Parse([]byte(`[
{"key_terms": "B"},
{"key_terms": " A"},
{"key_terms": ["B"]},
{"key_terms": ""},
{"other": 1},
{"key_terms": "C"},
{"key_terms": "A "}
]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, UniqueTopics(rows))
}

func TestSetID(t *testing.T) {
	r := Row{Fields: []Field{
		{Key: "id", Value: json.RawMessage(`99`)},
		{Key: "q", Value: json.RawMessage(`"x"`)},
	}}
	r.SetID(3)
	v, _ := r.Get("id")
	assert.Equal(t, `"0003"`, string(v))
	assert.Equal(t, "id", r.Fields[0].Key, "existing id keeps its position")

	var fresh Row
	fresh.Set("q", json.RawMessage(`1`))
	fresh.SetID(12345)
	require.Len(t, fresh.Fields, 2)
	assert.Equal(t, "id", fresh.Fields[1].Key, "missing id is appended")
	v, _ = fresh.Get("id")
	assert.Equal(t, `"12345"`, string(v))
}

func TestMarshalLayout(t *testing.T) {
	rows, err := Parse([]byte(`[{"id":"0001","key_terms":["A","B"],"q":"Q <x> & ü","meta":{},"tags":[],"n":{"k":[1,2]}},{"id":"0002"}]`))
	require.NoError(t, err)

	got, err := Marshal(rows)
	require.NoError(t, err)

	want := "[\n" +
		"{\n" +
		"\"id\": \"0001\",\n" +
		"\"key_terms\": [\n\"A\",\n\"B\"\n],\n" +
		"\"q\": \"Q <x> & ü\",\n" +
		"\"meta\": {},\n" +
		"\"tags\": [],\n" +
		"\"n\": {\n\"k\": [\n1,\n2\n]\n}\n" +
		"},\n" +
		"{\n\"id\": \"0002\"\n}\n" +
		"]"
	assert.Equal(t, want, string(got))
}

func TestMarshalEmpty(t *testing.T) {
	got, err := Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}

func TestRoundTrip(t *testing.T) {
	src := []byte(`[
{
"id": "0001",
"key_terms": "A",
"answer": "x\ny",
"score": 1e-05
}
]`)
	rows, err := Parse(src)
	require.NoError(t, err)
	got, err := Marshal(rows)
	require.NoError(t, err)
	assert.Equal(t, string(src), string(got))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"key_terms":"A"}]`), 0o644))

	rows, err := Load(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"rows": []}`), 0o644))
	_, err = Load(bad)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidDataset))
	assert.Contains(t, err.Error(), "expected a JSON array of rows")
}
