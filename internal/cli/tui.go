package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/benchorder/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listNoGraphStyle  = lipgloss.NewStyle().Foreground(colorDim)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PreviewModel - Interactive browser over a planned ordering
// =============================================================================

// PreviewModel is the bubbletea model for browsing a reorder plan.
type PreviewModel struct {
	Plan   *pipeline.Plan
	Cursor int
	Height int
	Offset int
}

// NewPreviewModel creates a preview model positioned on the first row.
func NewPreviewModel(plan *pipeline.Plan) PreviewModel {
	return PreviewModel{
		Plan:   plan,
		Height: 15,
	}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	n := len(m.Plan.Rows)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.moveTo(m.Cursor - 1)
		case "down", "j":
			m.moveTo(m.Cursor + 1)
		case "pgup":
			m.moveTo(m.Cursor - m.Height)
		case "pgdown", " ":
			m.moveTo(m.Cursor + m.Height)
		case "home", "g":
			m.moveTo(0)
		case "end", "G":
			m.moveTo(n - 1)
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		m.moveTo(m.Cursor)
	}
	return m, nil
}

// moveTo places the cursor on row i (clamped) and scrolls it into view.
func (m *PreviewModel) moveTo(i int) {
	n := len(m.Plan.Rows)
	m.Cursor = max(0, min(i, n-1))
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Reorder preview · seed %d", m.Plan.Options.Seed)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  pgup/pgdn page  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Plan.Rows))
	t := newTable("", "ID", "Was", "Band", "Score", "Nodes", "Edges", "Topic")
	for i := m.Offset; i < end; i++ {
		cursor := " "
		if i == m.Cursor {
			cursor = "▸"
		}
		t.Row(append([]string{cursor}, planCells(m.Plan.Rows[i])...)...)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row < 0 {
			return styleHeader.Padding(0, 1)
		}
		idx := m.Offset + row
		if idx >= len(m.Plan.Rows) {
			return lipgloss.NewStyle()
		}
		base := listNormalStyle
		if !m.Plan.Rows[idx].HasGraph {
			base = listNoGraphStyle
		}
		if idx == m.Cursor {
			base = listSelectedStyle
		}
		return base.Padding(0, 1)
	})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	if len(m.Plan.Rows) > 0 {
		r := m.Plan.Rows[m.Cursor]
		if r.Slug != "" {
			b.WriteString(listDimStyle.Render("  slug " + r.Slug))
			b.WriteString("\n")
		}
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Plan.Rows))))

	return b.String()
}
