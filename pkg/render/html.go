package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/Masterminds/sprig/v3"

	"github.com/privacytests/ptreport/pkg/report"
	"github.com/privacytests/ptreport/pkg/results"
	"github.com/privacytests/ptreport/pkg/table"
)

// DefaultRepoURL hosts the test suite sources.
const DefaultRepoURL = "https://github.com/privacytests/privacytests.org"

// DefaultTagline is shown in the page banner.
const DefaultTagline = "Open-source tests of web browser privacy."

var (
	//go:embed templates/page.html.tmpl
	pageTemplate string
	//go:embed templates/table.css
	tableCSS string
	//go:embed templates/tooltip.js
	tooltipScript string
)

// HTMLOptions configures the HTML page renderer.
type HTMLOptions struct {
	PageTitle    string
	Tagline      string
	RepoURL      string
	RawDataFile  string   // link target for the raw JSON
	PreviewImage string   // og:image for link previews
	IssueNumber  string   // shown as "No. N" when set
	Stylesheets  []string // extra CSS files inlined after the built-in one
}

// HTML renders the report as a standalone web page.
type HTML struct {
	opts   HTMLOptions
	styles []template.CSS
	tmpl   *template.Template
}

type navItem struct {
	Label    string
	Href     string
	Selected bool
}

type rowView struct {
	First      bool
	Subheading *table.Subheading
	Label      *table.Label
	Cells      []table.Cell
}

type pageView struct {
	HTMLOptions
	Updated string
	RanAt   string
	Git     string
	Nav     []navItem
	Table   *table.Table
	Columns int
	Rows    []rowView
	Styles  []template.CSS
	Script  template.JS
}

// NewHTML creates an HTML renderer. Browser logos are looked up in logos,
// which may be nil to render pages without logos.
func NewHTML(opts HTMLOptions, logos *LogoCache) (*HTML, error) {
	if opts.RepoURL == "" {
		opts.RepoURL = DefaultRepoURL
	}
	if opts.Tagline == "" {
		opts.Tagline = DefaultTagline
	}
	opts.RepoURL = strings.TrimSuffix(opts.RepoURL, "/")

	styles := []template.CSS{template.CSS(tableCSS)} //nolint:gosec // embedded stylesheet
	for _, path := range opts.Stylesheets {
		data, err := os.ReadFile(path) //nolint:gosec // stylesheet paths come from config
		if err != nil {
			return nil, fmt.Errorf("read stylesheet: %w", err)
		}
		styles = append(styles, template.CSS(data)) //nolint:gosec // local stylesheet
	}

	funcs := sprig.FuncMap()
	funcs["logo"] = func(browser string, nightly bool) template.URL {
		if logos == nil {
			return ""
		}
		return template.URL(logos.DataURI(browser, nightly)) //nolint:gosec // data: URI built from a local PNG
	}
	tmpl, err := template.New("page").Funcs(funcs).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &HTML{opts: opts, styles: styles, tmpl: tmpl}, nil
}

// Render produces the full HTML page.
func (h *HTML) Render(rep *report.Report) (string, error) {
	if rep.Table == nil {
		return "", &results.MissingDataError{What: "table"}
	}
	view := pageView{
		HTMLOptions: h.opts,
		Git:         rep.Git,
		Nav:         navigation(rep.Platform, rep.Nightly, rep.Incognito),
		Table:       rep.Table,
		Columns:     rep.Table.HeaderCount(),
		Rows:        rows(rep.Table),
		Styles:      h.styles,
		Script:      template.JS(tooltipScript), //nolint:gosec // embedded script
	}
	if view.PageTitle == "" {
		view.PageTitle = rep.Table.Title.Title
	}
	if rep.TimeStarted != "" {
		view.Updated = rep.Updated()
		view.RanAt = rep.RanAt()
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}

func rows(tbl *table.Table) []rowView {
	views := make([]rowView, 0, len(tbl.Body))
	first := true
	for _, row := range tbl.Body {
		switch row.Kind {
		case table.RowSubheading:
			views = append(views, rowView{First: first, Subheading: row.Subheading})
			first = false
		case table.RowTest:
			views = append(views, rowView{Label: row.Label, Cells: row.Cells})
		}
	}
	return views
}

// navigation lists the sibling report pages, marking the current one.
func navigation(platform string, nightly, incognito bool) []navItem {
	mobile := platform == results.PlatformAndroid || platform == results.PlatformIOS
	return []navItem{
		{Label: "Desktop browsers", Href: ".", Selected: !incognito && !nightly && !mobile},
		{Label: "Desktop private modes", Href: "private.html", Selected: incognito && !nightly && !mobile},
		{Label: "iOS browsers", Href: "ios.html", Selected: platform == results.PlatformIOS},
		{Label: "Android browsers", Href: "android.html", Selected: platform == results.PlatformAndroid},
		{Label: "Nightly builds", Href: "nightly.html", Selected: nightly && !incognito},
		{Label: "Nightly private modes", Href: "nightly-private.html", Selected: nightly && incognito},
	}
}
