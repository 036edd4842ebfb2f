package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/benchorder/pkg/graphml"
	"github.com/matzehuels/benchorder/pkg/pipeline"
	"github.com/matzehuels/benchorder/pkg/rank"
)

func samplePlan() *pipeline.Plan {
	rows := []pipeline.PlannedRow{
		{Source: 2, ID: "0001", Topic: "B", Slug: "b", Stats: graphml.Stats{Nodes: 30, Edges: 50}, HasGraph: true, Score: 0, Band: 0},
		{Source: 0, ID: "0002", Topic: "A", Slug: "a", Stats: graphml.Stats{Nodes: 10, Edges: 10}, HasGraph: true, Score: 45, Band: 1},
		{Source: 3, ID: "0003", Topic: "B", Slug: "b", Stats: graphml.Stats{Nodes: 30, Edges: 50}, HasGraph: true, Score: 0, Band: 0},
		{Source: 1, ID: "0004", Topic: "C", Score: rank.NoGraphScore, Band: 2},
	}
	return &pipeline.Plan{
		Rows:       rows,
		Thresholds: []float64{0, 45, rank.NoGraphScore},
		Histogram:  []int{2, 1, 1},
		Options:    pipeline.ReorderOptions{Seed: 42},
	}
}

func TestGraphRows(t *testing.T) {
	rows := graphRows(samplePlan())
	if len(rows) != 3 {
		t.Fatalf("graphRows = %d entries, want 3", len(rows))
	}

	wantTopics := []string{"B", "A", "C"}
	for i, want := range wantTopics {
		if rows[i].Topic != want {
			t.Errorf("rows[%d].Topic = %q, want %q", i, rows[i].Topic, want)
		}
	}
	if rows[0].Rows != 2 {
		t.Errorf("topic B rows = %d, want 2", rows[0].Rows)
	}
	if rows[2].HasGraph {
		t.Error("topic C should have no graph")
	}
}

func TestRenderGraphTable(t *testing.T) {
	out := renderGraphTable(graphRows(samplePlan()))
	for _, want := range []string{"Band", "Topic", "45", "30", "50"} {
		if !strings.Contains(out, want) {
			t.Errorf("graph table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPlanTable(t *testing.T) {
	out := renderPlanTable(samplePlan().Rows)
	for _, want := range []string{"0001", "0004", "Was"} {
		if !strings.Contains(out, want) {
			t.Errorf("plan table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHistogram(t *testing.T) {
	out := renderHistogram([]int{2, 1, 1}, []float64{0, 45, rank.NoGraphScore})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("histogram lines = %d, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "≤ 45") {
		t.Errorf("band 1 line = %q, want ceiling ≤ 45", lines[1])
	}
	if !strings.Contains(lines[2], "no graph") {
		t.Errorf("band 2 line = %q, want no graph", lines[2])
	}
}

func TestPreviewModelNavigation(t *testing.T) {
	m := NewPreviewModel(samplePlan())
	m.Height = 2

	key := func(m PreviewModel, k string) PreviewModel {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		return next.(PreviewModel)
	}

	m = key(m, "up")
	if m.Cursor != 0 {
		t.Errorf("cursor after up at top = %d, want 0", m.Cursor)
	}

	m = key(m, "down")
	m = key(m, "down")
	if m.Cursor != 2 || m.Offset != 1 {
		t.Errorf("cursor/offset = %d/%d, want 2/1", m.Cursor, m.Offset)
	}

	m = key(m, "G")
	if m.Cursor != 3 {
		t.Errorf("cursor after G = %d, want 3", m.Cursor)
	}
	m = key(m, "down")
	if m.Cursor != 3 {
		t.Errorf("cursor past end = %d, want 3", m.Cursor)
	}

	m = key(m, "g")
	if m.Cursor != 0 || m.Offset != 0 {
		t.Errorf("cursor/offset after g = %d/%d, want 0/0", m.Cursor, m.Offset)
	}

	view := m.View()
	if !strings.Contains(view, "seed 42") || !strings.Contains(view, "[1/4]") {
		t.Errorf("unexpected view:\n%s", view)
	}
}

func TestPreviewModelQuit(t *testing.T) {
	m := NewPreviewModel(samplePlan())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
