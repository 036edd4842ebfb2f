package community

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMeta(t *testing.T) {
	pkg := []byte(`{
  "topic": "climate change",
  "communities": [
    {"community_id": 10, "title": "Oceans", "type": "theme", "summary": "Heat <uptake>", "top_findings": ["warming", "acid"]},
    {"community_id": 2.0, "title": "Policy"},
    {"community_id": "3", "title": "Energy", "summary": null},
    {"community_id": null, "title": "dropped"},
    {"title": "no id"},
    "not an object",
    {"community_id": 10, "title": "Oceans v2"}
  ]
}`)

	m, err := BuildMeta(pkg)
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "2", "3"}, m.Communities.IDs())

	oceans, ok := m.Communities.Get("10")
	require.True(t, ok)
	assert.Equal(t, `"Oceans v2"`, string(oceans.Title))
	assert.Equal(t, `[]`, string(oceans.TopFindings), "replacement starts from defaults")

	policy, _ := m.Communities.Get("2")
	assert.Equal(t, `""`, string(policy.Summary))
	assert.Equal(t, `[]`, string(policy.TopFindings))

	energy, _ := m.Communities.Get("3")
	assert.Equal(t, `null`, string(energy.Summary), "explicit null is kept")
}

func TestMetaMarshal(t *testing.T) {
	m, err := BuildMeta([]byte(`{"communities": [
{"community_id": 10, "title": "A & B", "type": "t", "summary": "s", "top_findings": ["x"]},
{"community_id": 2, "title": "C"}
]}`))
	require.NoError(t, err)

	got, err := m.Marshal()
	require.NoError(t, err)

	want := `{
  "communities": {
    "10": {
      "title": "A & B",
      "type": "t",
      "summary": "s",
      "top_findings": [
        "x"
      ]
    },
    "2": {
      "title": "C",
      "type": "",
      "summary": "",
      "top_findings": []
    }
  }
}`
	assert.Equal(t, want, string(got))

	var back map[string]map[string]map[string]any
	require.NoError(t, json.Unmarshal(got, &back))
	assert.Len(t, back["communities"], 2)
}

func TestMetaMarshalEmpty(t *testing.T) {
	m, err := BuildMeta([]byte(`{"other": 1}`))
	require.NoError(t, err)
	got, err := m.Marshal()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"communities\": {}\n}", string(got))
}

func TestBuildMetaErrors(t *testing.T) {
	_, err := BuildMeta([]byte(`not json`))
	assert.Error(t, err)
	_, err = BuildMeta([]byte(`{"communities": {"a": 1}}`))
	assert.Error(t, err)
}

func TestCommunityKey(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{`3`, "3", true},
		{`-4`, "-4", true},
		{`3.0`, "3", true},
		{`3.9`, "3", true},
		{`-0.5`, "0", true},
		{`1e3`, "1000", true},
		{`"7"`, "7", true},
		{`" 8 "`, "8", true},
		{`"+9"`, "9", true},
		{`"3.0"`, "", false},
		{`"x"`, "", false},
		{`null`, "", false},
		{`true`, "", false},
		{`[1]`, "", false},
		{``, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := CommunityKey(json.RawMessage(tt.raw))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildMetaFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "curated_llm_package.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"communities": [{"community_id": 1}]}`), 0o644))

	m, err := BuildMetaFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Communities.Len())

	_, err = BuildMetaFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestValidDetails(t *testing.T) {
	assert.True(t, ValidDetails([]byte(`{"1": {"entities": []}}`)))
	assert.False(t, ValidDetails([]byte(`{"1": `)))
	assert.False(t, ValidDetails(nil))
}
