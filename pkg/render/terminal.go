package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/privacytests/ptreport/pkg/report"
	"github.com/privacytests/ptreport/pkg/table"
)

const (
	maxLabelWidth  = 40
	maxColumnWidth = 16
	minColumnWidth = 3
)

// Terminal renders the comparison table as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats the report's table for terminal display.
func (t *Terminal) Render(rep *report.Report) (string, error) {
	tbl := rep.Table
	if tbl == nil {
		return "", nil
	}
	title := cases.Title(language.English)

	labelWidth := t.labelWidth(tbl)
	columns := make([][]string, len(tbl.Headers))
	widths := make([]int, len(tbl.Headers))
	depth := 0
	for i, h := range tbl.Headers {
		lines := h.Lines()
		lines[0] = title.String(lines[0])
		w := minColumnWidth
		for j, line := range lines {
			lines[j] = runewidth.Truncate(line, maxColumnWidth, "…")
			w = max(w, runewidth.StringWidth(lines[j]))
		}
		columns[i], widths[i] = lines, w
		depth = max(depth, len(lines))
	}

	var sb strings.Builder
	sb.WriteString(t.theme.Title.Render(tbl.Title.Title))
	if tbl.Title.Subtitle != "" {
		sb.WriteString(" ")
		sb.WriteString(t.theme.Muted.Render(tbl.Title.Subtitle))
	}
	sb.WriteString("\n\n")

	for line := range depth {
		sb.WriteString(strings.Repeat(" ", labelWidth+2))
		for i, col := range columns {
			text := ""
			if line < len(col) {
				text = col[line]
			}
			style := t.theme.Muted
			if line == 0 {
				style = t.theme.Bold
			}
			sb.WriteString("  ")
			sb.WriteString(style.Render(padRight(text, widths[i])))
		}
		sb.WriteString("\n")
	}

	for _, row := range tbl.Body {
		switch row.Kind {
		case table.RowSubheading:
			sb.WriteString("\n")
			sb.WriteString(t.theme.Bold.Render(row.Subheading.Name))
			if row.Subheading.Tagline != "" {
				sb.WriteString("  ")
				sb.WriteString(t.theme.Muted.Render(row.Subheading.Tagline))
			}
			sb.WriteString("\n")
		case table.RowTest:
			name := runewidth.Truncate(row.Label.Name, labelWidth, "…")
			sb.WriteString("  ")
			sb.WriteString(padRight(name, labelWidth))
			for i, cell := range row.Cells {
				icon, style := t.theme.Cell(cell)
				sb.WriteString("  ")
				sb.WriteString(style.Render(padCenter(icon, widths[i])))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

func (t *Terminal) labelWidth(tbl *table.Table) int {
	w := 0
	for _, row := range tbl.TestRows() {
		w = max(w, runewidth.StringWidth(row.Label.Name))
	}
	// Leave room for at least a few columns on narrow terminals.
	limit := max(12, t.width-(minColumnWidth+2)*min(len(tbl.Headers), 8)-2)
	return min(w, maxLabelWidth, limit)
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func padCenter(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
