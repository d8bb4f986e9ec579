package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/privacytests/ptreport/pkg/report"
	"github.com/privacytests/ptreport/pkg/table"
)

// Text renders the report as terse plain text: no ANSI codes, one line per
// test, columns referenced by number.
type Text struct{}

// NewText creates a plain-text renderer.
func NewText() *Text {
	return &Text{}
}

// Render formats the report as plain text.
func (x *Text) Render(rep *report.Report) (string, error) {
	tbl := rep.Table
	if tbl == nil {
		return "", nil
	}
	var sb strings.Builder

	sb.WriteString(tbl.Title.Title)
	if tbl.Title.Subtitle != "" {
		sb.WriteString(" " + tbl.Title.Subtitle)
	}
	sb.WriteString("\n")
	if rep.TimeStarted != "" {
		fmt.Fprintf(&sb, "RAN: %s git:%s\n", rep.RanAt(), rep.ShortGit())
	}

	cols := make([]string, len(tbl.Headers))
	for i, h := range tbl.Headers {
		cols[i] = "[" + strconv.Itoa(i+1) + "] " + strings.Join(h.Lines(), " ")
	}
	sb.WriteString("COLUMNS: " + strings.Join(cols, " | ") + "\n")

	counts := map[table.State]int{}
	var body strings.Builder
	for _, row := range tbl.Body {
		switch row.Kind {
		case table.RowSubheading:
			body.WriteString("\n## " + row.Subheading.Name + "\n")
		case table.RowTest:
			parts := make([]string, len(row.Cells))
			for i, c := range row.Cells {
				parts[i] = cellText(c)
				if c.Present {
					counts[c.State]++
				}
			}
			body.WriteString(row.Label.Name + ": " + strings.Join(parts, " ") + "\n")
		}
	}
	fmt.Fprintf(&sb, "CELLS: %d good, %d bad, %d na\n",
		counts[table.StateGood], counts[table.StateBad], counts[table.StateNA])
	sb.WriteString(body.String())
	return sb.String(), nil
}

func cellText(c table.Cell) string {
	if !c.Present {
		return "-"
	}
	s := string(c.State)
	if c.TestFailed {
		s += "!"
	}
	return s
}
