// Package report assembles a report from raw result batches: merge, optional
// trial aggregation, and the comparison table with its title.
package report

import (
	"time"

	"golang.org/x/text/language"

	"github.com/privacytests/ptreport/pkg/category"
	"github.com/privacytests/ptreport/pkg/mapper"
	"github.com/privacytests/ptreport/pkg/results"
	"github.com/privacytests/ptreport/pkg/table"
)

// DefaultSubtitle is shown under every table title.
const DefaultSubtitle = "(default settings)"

// Options controls report assembly.
type Options struct {
	Aggregate bool
	Locale    language.Tag
}

// Report is everything a renderer needs for one page.
type Report struct {
	Platform    string             `json:"platform"`
	Git         string             `json:"git"`
	TimeStarted string             `json:"timeStarted"`
	Nightly     bool               `json:"nightly"`
	Incognito   bool               `json:"incognito"`
	Table       *table.Table       `json:"table"`
	Results     *results.ResultSet `json:"-"`
}

// Build merges the batches, folds repeated trials when opts.Aggregate is
// set, and builds the table. The first batch supplies the metadata; the
// nightly and private flags are taken over every merged run.
func Build(batches []*results.ResultSet, descriptors []category.Descriptor, opts Options) (*Report, error) {
	set, err := results.Merge(batches...)
	if err != nil {
		return nil, err
	}
	nightly, incognito := modes(set.AllTests)
	if opts.Aggregate {
		if set, err = results.Aggregate(set); err != nil {
			return nil, err
		}
	}

	rep := &Report{
		Platform:    set.Platform,
		Git:         set.Git,
		TimeStarted: set.TimeStarted,
		Nightly:     nightly,
		Incognito:   incognito,
		Results:     set,
	}

	rep.Table, err = mapper.FromResults(set, descriptors, mapper.Options{
		Title:                 Title(set.Platform, rep.Nightly, rep.Incognito),
		Subtitle:              DefaultSubtitle,
		IncludeTrackerCookies: set.Platform == results.PlatformDesktop,
		Locale:                opts.Locale,
	})
	if err != nil {
		return nil, err
	}
	return rep, nil
}

// modes reports whether every run is a nightly build and whether every run
// is private (incognito or Tor). Both are false without runs.
func modes(runs []*results.TestRun) (nightly, incognito bool) {
	seen := false
	nightly, incognito = true, true
	for _, run := range runs {
		if run == nil {
			continue
		}
		seen = true
		nightly = nightly && run.Nightly
		incognito = incognito && (run.Incognito || run.Tor)
	}
	if !seen {
		return false, false
	}
	return nightly, incognito
}

// Title names the table for a report variant.
func Title(platform string, nightly, incognito bool) string {
	switch {
	case nightly && incognito:
		return "Nightly private modes"
	case nightly:
		return "Nightly Builds"
	case platform == results.PlatformAndroid:
		return "Android Browsers"
	case platform == results.PlatformIOS:
		return "iOS Browsers"
	case incognito:
		return "Desktop private modes"
	default:
		return "Desktop Browsers"
	}
}

// Updated returns the date the tests ran, as YYYY-MM-DD. It falls back to
// the first ten characters of TimeStarted when it does not parse.
func (r *Report) Updated() string {
	if t, err := time.Parse(time.RFC3339Nano, r.TimeStarted); err == nil {
		return t.UTC().Format(time.DateOnly)
	}
	if len(r.TimeStarted) >= 10 {
		return r.TimeStarted[:10]
	}
	return r.TimeStarted
}

// RanAt returns TimeStarted as "YYYY-MM-DD HH:MM:SS UTC".
func (r *Report) RanAt() string {
	if t, err := time.Parse(time.RFC3339Nano, r.TimeStarted); err == nil {
		return t.UTC().Format(time.DateTime) + " UTC"
	}
	return r.TimeStarted
}

// ShortGit returns the first eight characters of the git revision.
func (r *Report) ShortGit() string {
	if len(r.Git) > 8 {
		return r.Git[:8]
	}
	return r.Git
}
