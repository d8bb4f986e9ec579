package mapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/privacytests/ptreport/pkg/category"
	"github.com/privacytests/ptreport/pkg/results"
	"github.com/privacytests/ptreport/pkg/table"
	"github.com/privacytests/ptreport/pkg/tooltip"
)

func record(kv ...any) *results.Record {
	rec := results.NewRecord()
	for i := 0; i+1 < len(kv); i += 2 {
		rec.Set(kv[i].(string), kv[i+1])
	}
	return rec
}

var testDescriptors = []category.Descriptor{
	{Category: "supercookies", Name: "State Partitioning tests", TooltipType: category.TooltipCrossSite},
	{Category: "fingerprinting", Name: "Fingerprinting resistance tests", TooltipType: category.TooltipFingerprinting},
	{Category: "https", Name: "HTTPS tests", Tagline: "encrypted?", TooltipType: category.TooltipSimple},
	{Category: category.TrackerCookies, Name: "Tracking cookie protection tests", TooltipType: category.TooltipSimple},
}

func opts() Options {
	return Options{Title: "Desktop Browsers", Subtitle: "(default settings)", Locale: language.English}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name                            string
		passed, testFailed, unsupported any
		want                            table.State
	}{
		{"passed", true, nil, nil, table.StateGood},
		{"failed", false, nil, nil, table.StateBad},
		{"unsupported beats failed", false, nil, true, table.StateNA},
		{"some trials unsupported", false, nil, results.Trials{true, false}, table.StateBad},
		{"every trial unsupported", results.Trials{false, false}, nil, results.Trials{true, true}, table.StateNA},
		{"one failing trial", results.Trials{true, false}, nil, nil, table.StateBad},
		{"passed missing", nil, nil, nil, table.StateGood},
		{"non-bool passed", "yes", nil, false, table.StateGood},
		{"test failure alone", true, true, nil, table.StateGood},
		{"raw array", []any{true, false}, nil, nil, table.StateBad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.passed, tt.testFailed, tt.unsupported))
		})
	}
}

func TestAllTestsFailed(t *testing.T) {
	assert.True(t, AllTestsFailed(true))
	assert.True(t, AllTestsFailed(results.Trials{true, true}))
	assert.False(t, AllTestsFailed(results.Trials{true, false}))
	assert.False(t, AllTestsFailed(nil))
}

func TestFromResults_HeadersSortedNamelessFirst(t *testing.T) {
	set := &results.ResultSet{AllTests: []*results.TestRun{
		{Browser: "chrome", ReportedVersion: "120.0.6099.71", TestResults: results.Categories{}},
		{Browser: "", TestResults: results.Categories{}},
		{Browser: "Brave", ReportedVersion: "1.61", Nightly: true, TestResults: results.Categories{}},
		{Browser: "crashed"},
		{Browser: "tor", Tor: true, Incognito: true,
			Prefs:       map[string]any{results.TorLauncherPref: false, "b": 2.0, "a": true},
			TestResults: results.Categories{}},
	}}

	tbl, err := FromResults(set, testDescriptors, opts())
	require.NoError(t, err)

	assert.Equal(t, table.Title{Title: "Desktop Browsers", Subtitle: "(default settings)"}, tbl.Title)
	require.Len(t, tbl.Headers, 4)
	assert.Equal(t, "", tbl.Headers[0].Browser)
	assert.Equal(t, results.UnknownVersion, tbl.Headers[0].Version)
	assert.Equal(t, "Brave", tbl.Headers[1].Browser)
	assert.True(t, tbl.Headers[1].Nightly)
	assert.Equal(t, "120.0", tbl.Headers[2].Version)
	assert.Equal(t, []table.Pref{{Name: "a", Value: "true"}, {Name: "b", Value: "2"}}, tbl.Headers[3].Prefs)
	assert.True(t, tbl.Headers[3].Incognito)
	assert.True(t, tbl.Headers[3].Tor)
	assert.Empty(t, tbl.Body)
}

func TestFromResults_SectionsAndAlignment(t *testing.T) {
	brave := &results.TestRun{Browser: "brave", TestResults: results.Categories{
		"https": results.Tests{
			"Upgradable address": record("upgraded", true, "passed", true, "description", "upgrades http"),
			"Insecure website":   record("passed", false),
		},
	}}
	chrome := &results.TestRun{Browser: "chrome", TestResults: results.Categories{
		"https": results.Tests{
			"Upgradable address": record("upgraded", false, "passed", false),
		},
		category.TrackerCookies: results.Tests{"cookie": record("passed", true)},
	}}
	set := &results.ResultSet{AllTests: []*results.TestRun{chrome, brave}}

	tbl, err := FromResults(set, testDescriptors, opts())
	require.NoError(t, err)

	require.Len(t, tbl.Body, 3, "only https has results; tracker cookies are excluded")
	sub := tbl.Body[0]
	assert.Equal(t, table.RowSubheading, sub.Kind)
	assert.Equal(t, "HTTPS tests", sub.Subheading.Name)
	assert.Equal(t, "encrypted?", sub.Subheading.Tagline)

	insecure, upgradable := tbl.Body[1], tbl.Body[2]
	assert.Equal(t, "Insecure website", insecure.Label.Name)
	assert.Equal(t, "Upgradable address", upgradable.Label.Name)
	assert.Equal(t, "upgrades http", upgradable.Label.Description)

	for _, row := range tbl.TestRows() {
		assert.Len(t, row.Cells, tbl.HeaderCount()-1)
	}
	assert.Equal(t, table.StateBad, insecure.Cells[0].State)
	assert.False(t, insecure.Cells[1].Present, "chrome lacks the test")
	assert.Equal(t, table.StateGood, upgradable.Cells[0].State)
	assert.Equal(t, "upgraded: true\npassed: true", upgradable.Cells[0].Tooltip)
	assert.Equal(t, table.StateBad, upgradable.Cells[1].State)
}

func TestFromResults_TrackerCookiesOnRequest(t *testing.T) {
	set := &results.ResultSet{AllTests: []*results.TestRun{
		{Browser: "firefox", TestResults: results.Categories{
			category.TrackerCookies: results.Tests{"cookie": record("passed", true)},
		}},
	}}
	o := opts()
	o.IncludeTrackerCookies = true

	tbl, err := FromResults(set, testDescriptors, o)
	require.NoError(t, err)

	require.Len(t, tbl.Body, 2)
	assert.Equal(t, category.TrackerCookies, tbl.Body[0].Subheading.Category)
}

func TestFromResults_FullyUnsupportedColumn(t *testing.T) {
	unsupported := func() results.Tests {
		return results.Tests{
			"screen.width":  record("expression", "screen.width", "passed", false, "unsupported", true),
			"navigator.cpu": record("expression", "navigator.cpu", "passed", true, "unsupported", true),
		}
	}
	set := &results.ResultSet{AllTests: []*results.TestRun{
		{Browser: "safari", TestResults: results.Categories{"fingerprinting": unsupported()}},
		{Browser: "brave", TestResults: results.Categories{"fingerprinting": results.Tests{
			"screen.width":  record("passed", true),
			"navigator.cpu": record("passed", false),
		}}},
	}}

	tbl, err := FromResults(set, testDescriptors, opts())
	require.NoError(t, err)

	rows := tbl.TestRows()
	require.Len(t, rows, 2)
	states := map[string][]table.State{}
	for _, row := range rows {
		states[row.Label.Name] = []table.State{row.Cells[0].State, row.Cells[1].State}
	}
	assert.Equal(t, []table.State{table.StateGood, table.StateNA}, states["screen.width"])
	assert.Equal(t, []table.State{table.StateBad, table.StateNA}, states["navigator.cpu"])
}

func TestFromResults_UnknownTooltipType(t *testing.T) {
	set := &results.ResultSet{AllTests: []*results.TestRun{{Browser: "brave", TestResults: results.Categories{}}}}
	descriptors := []category.Descriptor{{Category: "misc", TooltipType: "sparkle"}}

	_, err := FromResults(set, descriptors, opts())

	var unknown *tooltip.UnknownTooltipTypeError
	assert.True(t, errors.As(err, &unknown))
}

func TestFromResults_NilSet(t *testing.T) {
	_, err := FromResults(nil, testDescriptors, opts())
	var missing *results.MissingDataError
	assert.True(t, errors.As(err, &missing))
}

func TestFromResults_AggregatedTrialsEndToEnd(t *testing.T) {
	trial := func(passed bool) *results.TestRun {
		return &results.TestRun{Browser: "firefox", ReportedVersion: "115.0.2", Prefs: map[string]any{},
			TestResults: results.Categories{"supercookies": results.Tests{
				"ETag": record("write", "w", "read", "r", "passed", passed),
			}}}
	}
	agg, err := results.Aggregate(&results.ResultSet{AllTests: []*results.TestRun{trial(true), trial(false)}})
	require.NoError(t, err)

	tbl, err := FromResults(agg, testDescriptors, opts())
	require.NoError(t, err)

	rows := tbl.TestRows()
	require.Len(t, rows, 1)
	assert.Equal(t, table.StateBad, rows[0].Cells[0].State)
	assert.Contains(t, rows[0].Cells[0].Tooltip, "passed: true, false")
}
