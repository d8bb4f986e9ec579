// Package results models raw browser privacy-test result batches and the
// merge and trial-aggregation steps applied to them before a report is built.
// Every transformation works on deep copies; inputs are never mutated.
package results

import (
	"fmt"
	"slices"
	"strings"
)

// Platform values carried in a batch's "platform" field.
const (
	PlatformDesktop = "Desktop"
	PlatformAndroid = "Android"
	PlatformIOS     = "iOS"
)

// TorLauncherPref is set on every Tor Browser run and never shown or keyed on.
const TorLauncherPref = "extensions.torlauncher.prompt_at_startup"

// UnknownVersion stands in for a run that did not report its version.
const UnknownVersion = "???"

// ResultSet is one raw results file, or the merge of several.
type ResultSet struct {
	Platform    string     `json:"platform"`
	Git         string     `json:"git"`
	TimeStarted string     `json:"timeStarted"`
	AllTests    []*TestRun `json:"all_tests"`
}

// Tests maps a test name to its recorded result.
type Tests map[string]*Record

// Categories maps a category name to the tests run under it.
type Categories map[string]Tests

// TestRun is one browser configuration's full set of results.
type TestRun struct {
	Browser         string         `json:"browser"`
	ReportedVersion string         `json:"reportedVersion"`
	OS              string         `json:"os"`
	OSVersion       string         `json:"os_version"`
	Prefs           map[string]any `json:"prefs"`
	Incognito       bool           `json:"incognito"`
	Tor             bool           `json:"tor"`
	Nightly         bool           `json:"nightly"`
	TestResults     Categories     `json:"testResults"`
}

// Pref is a single preference override.
type Pref struct {
	Name  string
	Value any
}

// HasResults reports whether the run carries any test results at all.
func (t *TestRun) HasResults() bool {
	return t != nil && t.TestResults != nil
}

// ShortVersion returns the reported version without its micro component
// ("115.0.2" becomes "115.0"), or UnknownVersion when none was reported.
func (t *TestRun) ShortVersion() string {
	if t.ReportedVersion == "" {
		return UnknownVersion
	}
	parts := strings.Split(t.ReportedVersion, ".")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ".")
}

// SortedPrefs returns the run's preference overrides sorted by name,
// leaving out TorLauncherPref.
func (t *TestRun) SortedPrefs() []Pref {
	names := make([]string, 0, len(t.Prefs))
	for name := range t.Prefs {
		if name != TorLauncherPref {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	prefs := make([]Pref, 0, len(names))
	for _, name := range names {
		prefs = append(prefs, Pref{Name: name, Value: t.Prefs[name]})
	}
	return prefs
}

// Key identifies the run's configuration. Two runs are repeated trials of the
// same configuration iff their keys are equal.
func (t *TestRun) Key() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "browser=%q version=%q os=%q", t.Browser, t.ShortVersion(), t.OS)
	for _, p := range t.SortedPrefs() {
		fmt.Fprintf(&sb, " pref:%q=%q", p.Name, Display(p.Value))
	}
	fmt.Fprintf(&sb, " incognito=%t tor=%t nightly=%t", t.Incognito, t.Tor, t.Nightly)
	return sb.String()
}

// Clone returns a deep copy of the run.
func (t *TestRun) Clone() *TestRun {
	if t == nil {
		return nil
	}
	c := *t
	if t.Prefs != nil {
		c.Prefs = make(map[string]any, len(t.Prefs))
		for k, v := range t.Prefs {
			c.Prefs[k] = cloneValue(v)
		}
	}
	if t.TestResults != nil {
		c.TestResults = make(Categories, len(t.TestResults))
		for cat, tests := range t.TestResults {
			c.TestResults[cat] = tests.Clone()
		}
	}
	return &c
}

// Clone returns a deep copy of the tests.
func (ts Tests) Clone() Tests {
	if ts == nil {
		return nil
	}
	c := make(Tests, len(ts))
	for name, rec := range ts {
		c[name] = rec.Clone()
	}
	return c
}

// Clone returns a deep copy of the result set.
func (s *ResultSet) Clone() *ResultSet {
	if s == nil {
		return nil
	}
	c := *s
	c.AllTests = make([]*TestRun, len(s.AllTests))
	for i, run := range s.AllTests {
		c.AllTests[i] = run.Clone()
	}
	return &c
}
