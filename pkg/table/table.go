// Package table defines the comparison table built from a result set.
// The table is pure data; renderers decide presentation.
package table

// State is the classification of one cell.
type State string

const (
	StateGood State = "good"
	StateBad  State = "bad"
	StateNA   State = "na"
)

// Title is the leading header fragment.
type Title struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Pref is a preference override shown under a column header.
type Pref struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Header describes one configuration column.
type Header struct {
	Browser   string `json:"browser"`
	Version   string `json:"version"`   // major.minor, or "???"
	Nightly   bool   `json:"nightly"`   // selects the nightly logo
	Prefs     []Pref `json:"prefs,omitempty"`
	Incognito bool   `json:"incognito"` // rendered as "private"
	Tor       bool   `json:"tor"`
}

// Lines returns the header text below the logo, one entry per line.
func (h Header) Lines() []string {
	lines := []string{h.Browser, h.Version}
	for _, p := range h.Prefs {
		lines = append(lines, p.Name+": "+p.Value)
	}
	if h.Incognito {
		lines = append(lines, "private")
	}
	if h.Tor {
		lines = append(lines, "Tor")
	}
	return lines
}

// RowKind distinguishes section subheadings from test rows.
type RowKind string

const (
	RowSubheading RowKind = "subheading"
	RowTest       RowKind = "test"
)

// Subheading introduces a category section.
type Subheading struct {
	Category    string `json:"category"`
	Name        string `json:"name"`
	Tagline     string `json:"tagline,omitempty"`
	Description string `json:"description,omitempty"`
}

// Label is the leading cell of a test row.
type Label struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Cell is one configuration's result for a test. A configuration that did
// not run the test has Present == false and nothing else set.
type Cell struct {
	Present    bool   `json:"present"`
	State      State  `json:"state,omitempty"`
	Tooltip    string `json:"tooltip,omitempty"`
	TestFailed bool   `json:"testFailed,omitempty"` // every trial failed to run
}

// Row is either a subheading or a test row with one cell per header.
type Row struct {
	Kind       RowKind     `json:"kind"`
	Subheading *Subheading `json:"subheading,omitempty"`
	Label      *Label      `json:"label,omitempty"`
	Cells      []Cell      `json:"cells,omitempty"`
}

// Table is the comparison table. Cells[i] of every test row belongs to
// Headers[i].
type Table struct {
	Title   Title    `json:"title"`
	Headers []Header `json:"headers"`
	Body    []Row    `json:"body"`
}

// HeaderCount returns the number of header fragments including the title.
func (t *Table) HeaderCount() int {
	return len(t.Headers) + 1
}

// TestRows returns only the test rows of the body.
func (t *Table) TestRows() []Row {
	rows := make([]Row, 0, len(t.Body))
	for _, r := range t.Body {
		if r.Kind == RowTest {
			rows = append(rows, r)
		}
	}
	return rows
}
