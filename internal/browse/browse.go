// Package browse is an interactive terminal view of a comparison table: a
// list of tests on the left and every column's result and tooltip for the
// selected test on the right.
package browse

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/privacytests/ptreport/pkg/render"
	"github.com/privacytests/ptreport/pkg/table"
)

// Run launches the browser and blocks until the user quits.
func Run(ctx context.Context, tbl *table.Table, theme render.Theme) error {
	program := tea.NewProgram(newModel(tbl, theme), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// entry is one line of the list: a section heading or a test.
type entry struct {
	section string
	row     *table.Row
}

type model struct {
	tbl         *table.Table
	theme       render.Theme
	entries     []entry
	tests       []int // indexes into entries of selectable rows
	selected    int   // index into tests
	viewport    viewport.Model
	ready       bool
	width       int
	height      int
	listWidth   int
	detailWidth int
}

func newModel(tbl *table.Table, theme render.Theme) model {
	m := model{tbl: tbl, theme: theme, viewport: viewport.New(0, 0)}
	for i := range tbl.Body {
		row := &tbl.Body[i]
		switch row.Kind {
		case table.RowSubheading:
			m.entries = append(m.entries, entry{section: row.Subheading.Name})
		case table.RowTest:
			m.tests = append(m.tests, len(m.entries))
			m.entries = append(m.entries, entry{row: row})
		}
	}
	m.viewport.SetContent("No tests")
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refreshViewport()
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tests)-1 {
				m.selected++
				m.refreshViewport()
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listWidth = min(max(m.calculateListWidth(), 22), m.width/2)
		m.detailWidth = m.width - m.listWidth - 1
		m.viewport.Width = max(m.detailWidth-2, 10)
		m.viewport.Height = max(m.height-4, 3)
		m.ready = true
		m.refreshViewport()
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) calculateListWidth() int {
	w := 0
	for _, e := range m.entries {
		if e.row != nil {
			w = max(w, lipgloss.Width(e.row.Label.Name)+4)
		} else {
			w = max(w, lipgloss.Width(e.section))
		}
	}
	return w + 2
}

func (m *model) current() *table.Row {
	if m.selected < 0 || m.selected >= len(m.tests) {
		return nil
	}
	return m.entries[m.tests[m.selected]].row
}

func (m *model) refreshViewport() {
	row := m.current()
	if row == nil {
		return
	}
	m.viewport.SetContent(m.detail(row))
	m.viewport.GotoTop()
}

// detail lists every column's result for a test row.
func (m *model) detail(row *table.Row) string {
	var sb strings.Builder
	if row.Label.Description != "" {
		sb.WriteString(m.theme.Muted.Render(row.Label.Description))
		sb.WriteString("\n\n")
	}
	for i, h := range m.tbl.Headers {
		icon, style := m.theme.Cell(row.Cells[i])
		sb.WriteString(style.Render(icon))
		sb.WriteString(" ")
		sb.WriteString(m.theme.Bold.Render(strings.Join(h.Lines(), " ")))
		sb.WriteString("\n")
		if tip := row.Cells[i].Tooltip; tip != "" {
			for _, line := range strings.Split(tip, "\n") {
				sb.WriteString("    " + line + "\n")
			}
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}
	contentHeight := max(m.height-3, 3)

	title := m.theme.Title.Render(m.tbl.Title.Title) + " " + m.theme.Muted.Render(m.tbl.Title.Subtitle)

	listLines := m.renderList(contentHeight)
	listPanel := lipgloss.NewStyle().Width(m.listWidth).Render(strings.Join(listLines, "\n"))

	detailPanel := lipgloss.NewStyle().
		Width(m.detailWidth).
		PaddingLeft(1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		Render(m.viewport.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
	help := m.theme.Muted.Render("↑/↓ test • pgup/pgdn scroll • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, panels, help)
}

// renderList returns at most height lines, scrolled so the selection shows.
func (m model) renderList(height int) []string {
	lines := make([]string, 0, len(m.entries))
	selectedLine := 0
	for i, e := range m.entries {
		if e.row == nil {
			lines = append(lines, m.theme.Bold.Render(e.section))
			continue
		}
		marker := "  "
		name := e.row.Label.Name
		if len(m.tests) > 0 && m.tests[m.selected] == i {
			marker = "▸ "
			selectedLine = len(lines)
			name = m.theme.Title.Render(name)
		}
		lines = append(lines, marker+name)
	}
	if len(lines) <= height {
		return lines
	}
	start := min(max(selectedLine-height/2, 0), len(lines)-height)
	return lines[start : start+height]
}
