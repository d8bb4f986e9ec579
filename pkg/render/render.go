// Package render turns a built report into output: an HTML page, a styled
// terminal table, plain text, or JSON.
package render

import "github.com/privacytests/ptreport/pkg/report"

// Renderer converts a report to formatted output.
type Renderer interface {
	Render(rep *report.Report) (string, error)
}
