package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/benchorder/pkg/pipeline"
	"github.com/matzehuels/benchorder/pkg/rank"
)

// graphRow is one topic of a plan with the number of dataset rows using it.
type graphRow struct {
	Topic    string
	Slug     string
	Nodes    int
	Edges    int
	HasGraph bool
	Score    float64
	Band     int
	Rows     int
}

// graphRows collapses a plan to one entry per topic, best score first.
func graphRows(plan *pipeline.Plan) []graphRow {
	index := make(map[string]int)
	var out []graphRow
	for _, r := range plan.Rows {
		if i, ok := index[r.Topic]; ok {
			out[i].Rows++
			continue
		}
		index[r.Topic] = len(out)
		out = append(out, graphRow{
			Topic:    r.Topic,
			Slug:     r.Slug,
			Nodes:    r.Stats.Nodes,
			Edges:    r.Stats.Edges,
			HasGraph: r.HasGraph,
			Score:    r.Score,
			Band:     r.Band,
			Rows:     1,
		})
	}
	slices.SortStableFunc(out, func(a, b graphRow) int {
		return cmp.Or(
			cmp.Compare(a.Score, b.Score),
			cmp.Compare(a.Topic, b.Topic),
		)
	})
	return out
}

// newTable returns a table in the house style.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// renderGraphTable lists one line per topic.
func renderGraphTable(rows []graphRow) string {
	t := newTable("Band", "Score", "Nodes", "Edges", "Rows", "Slug", "Topic")
	for _, r := range rows {
		nodes, edges, slug := "-", "-", r.Slug
		if r.HasGraph {
			nodes, edges = strconv.Itoa(r.Nodes), strconv.Itoa(r.Edges)
		}
		if slug == "" {
			slug = "-"
		}
		t.Row(strconv.Itoa(r.Band), formatScore(r.Score), nodes, edges, strconv.Itoa(r.Rows), slug, truncate(r.Topic, topicWidth))
	}
	return t.Render()
}

// renderPlanTable lists the rows of a plan in their new order.
func renderPlanTable(rows []pipeline.PlannedRow) string {
	t := newTable("ID", "Was", "Band", "Score", "Nodes", "Edges", "Topic")
	for _, r := range rows {
		t.Row(planCells(r)...)
	}
	return t.Render()
}

func planCells(r pipeline.PlannedRow) []string {
	nodes, edges := "-", "-"
	if r.HasGraph {
		nodes, edges = strconv.Itoa(r.Stats.Nodes), strconv.Itoa(r.Stats.Edges)
	}
	return []string{
		r.ID,
		strconv.Itoa(r.Source + 1),
		strconv.Itoa(r.Band),
		formatScore(r.Score),
		nodes,
		edges,
		truncate(r.Topic, topicWidth),
	}
}

// histogramWidth is the length of the longest histogram bar.
const histogramWidth = 30

// renderHistogram draws one bar per band with its score ceiling.
func renderHistogram(hist []int, thresholds []float64) string {
	peak := slices.Max(append([]int{1}, hist...))

	var b strings.Builder
	for i, n := range hist {
		ceiling := "no graph"
		if i < len(thresholds) && thresholds[i] < rank.NoGraphScore {
			ceiling = "≤ " + formatScore(thresholds[i])
		}
		bar := strings.Repeat("█", n*histogramWidth/peak)
		if n > 0 && bar == "" {
			bar = "▏"
		}
		fmt.Fprintf(&b, "band %-2d %-10s %s %s\n",
			i, ceiling, StyleNumber.Render(fmt.Sprintf("%4d", n)), StyleSuccess.Render(bar))
	}
	return b.String()
}
