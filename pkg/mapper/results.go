// Package mapper turns result sets into the comparison table: it orders
// the browser columns, lays out one section per category and classifies
// every cell.
package mapper

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/privacytests/ptreport/pkg/category"
	"github.com/privacytests/ptreport/pkg/results"
	"github.com/privacytests/ptreport/pkg/table"
	"github.com/privacytests/ptreport/pkg/tooltip"
)

// Options controls table building.
type Options struct {
	Title    string
	Subtitle string
	// IncludeTrackerCookies keeps the tracker_cookies section. Callers set it
	// for desktop reports only.
	IncludeTrackerCookies bool
	// Locale orders browsers and test names. The zero value sorts with the
	// root collation.
	Locale language.Tag
}

// FromResults builds the comparison table for a merged (and usually
// aggregated) result set. Runs without test results get no column.
// Sections are emitted in descriptor order; a section no run has results
// for is left out. A run that lacks a test gets an empty cell.
func FromResults(set *results.ResultSet, descriptors []category.Descriptor, opts Options) (*table.Table, error) {
	if set == nil {
		return nil, &results.MissingDataError{What: "result set"}
	}
	col := collate.New(opts.Locale)

	runs := make([]*results.TestRun, 0, len(set.AllTests))
	for _, run := range set.AllTests {
		if run.HasResults() {
			runs = append(runs, run)
		}
	}
	slices.SortStableFunc(runs, func(a, b *results.TestRun) int {
		switch {
		case a.Browser == "" && b.Browser == "":
			return 0
		case a.Browser == "":
			return -1
		case b.Browser == "":
			return 1
		default:
			return col.CompareString(a.Browser, b.Browser)
		}
	})

	tbl := &table.Table{
		Title:   table.Title{Title: opts.Title, Subtitle: opts.Subtitle},
		Headers: make([]table.Header, 0, len(runs)),
	}
	for _, run := range runs {
		tbl.Headers = append(tbl.Headers, header(run))
	}

	for _, d := range descriptors {
		if d.Category == category.TrackerCookies && !opts.IncludeTrackerCookies {
			continue
		}
		format, err := tooltip.For(d)
		if err != nil {
			return nil, err
		}
		tbl.Body = append(tbl.Body, section(d, runs, format, col)...)
	}
	return tbl, nil
}

func header(run *results.TestRun) table.Header {
	h := table.Header{
		Browser:   run.Browser,
		Version:   run.ShortVersion(),
		Nightly:   run.Nightly,
		Incognito: run.Incognito,
		Tor:       run.Tor,
	}
	for _, p := range run.SortedPrefs() {
		h.Prefs = append(h.Prefs, table.Pref{Name: p.Name, Value: results.Display(p.Value)})
	}
	return h
}

func section(d category.Descriptor, runs []*results.TestRun, format tooltip.Formatter, col *collate.Collator) []table.Row {
	var first results.Tests
	for _, run := range runs {
		if tests := run.TestResults[d.Category]; len(tests) > 0 {
			first = tests
			break
		}
	}
	if first == nil {
		return nil
	}

	names := make([]string, 0, len(first))
	for name := range first {
		names = append(names, name)
	}
	col.SortStrings(names)

	rows := make([]table.Row, 0, len(names)+1)
	rows = append(rows, table.Row{
		Kind: table.RowSubheading,
		Subheading: &table.Subheading{
			Category:    d.Category,
			Name:        d.Name,
			Tagline:     d.Tagline,
			Description: d.Description,
		},
	})
	for _, name := range names {
		row := table.Row{
			Kind:  table.RowTest,
			Label: &table.Label{Name: name, Description: first[name].Description()},
			Cells: make([]table.Cell, len(runs)),
		}
		for i, run := range runs {
			rec := run.TestResults[d.Category][name]
			if rec == nil {
				continue
			}
			state, failed := classifyRecord(rec)
			row.Cells[i] = table.Cell{
				Present:    true,
				State:      state,
				Tooltip:    format.Format(rec),
				TestFailed: failed,
			}
		}
		rows = append(rows, row)
	}
	return rows
}
