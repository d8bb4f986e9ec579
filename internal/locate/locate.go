// Package locate finds raw results files and derives the paths of the pages
// written next to them.
package locate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/privacytests/ptreport/pkg/results"
)

// LatestPage is the file name of the page that always shows the newest run.
const LatestPage = "latest.html"

// LatestResultsFile returns the last .json file, by name, in the last
// subdirectory, by name, of dir. Results are stored one directory per day.
func LatestResultsFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", &results.MissingDataError{What: "results directory " + dir, Err: err}
	}
	var days []string
	for _, e := range entries {
		if e.IsDir() {
			days = append(days, e.Name())
		}
	}
	if len(days) == 0 {
		return "", &results.MissingDataError{What: "results directory " + dir, Err: errors.New("no run directories")}
	}
	slices.Sort(days)
	dayDir := filepath.Join(dir, days[len(days)-1])

	files, err := os.ReadDir(dayDir)
	if err != nil {
		return "", &results.MissingDataError{What: "results directory " + dayDir, Err: err}
	}
	var names []string
	for _, f := range files {
		if !f.IsDir() && strings.HasSuffix(f.Name(), ".json") {
			names = append(names, f.Name())
		}
	}
	if len(names) == 0 {
		return "", &results.MissingDataError{What: "results file", Err: fmt.Errorf("no .json files in %s", dayDir)}
	}
	slices.Sort(names)
	return filepath.Join(dayDir, names[len(names)-1]), nil
}

// Outputs are the files written for one report.
type Outputs struct {
	Page    string // <first>.html, next to the first results file
	Latest  string // <results dir>/latest.html
	Preview string // <first>-preview.png
	Results string // the first results file
}

// OutputsFor derives output paths from the first results file.
func OutputsFor(resultsDir, firstResults string) Outputs {
	stem := strings.TrimSuffix(firstResults, ".json")
	return Outputs{
		Page:    stem + ".html",
		Latest:  filepath.Join(resultsDir, LatestPage),
		Preview: stem + "-preview.png",
		Results: firstResults,
	}
}

// Link returns a relative URL from the page at page to the file target.
func Link(page, target string) string {
	rel, err := filepath.Rel(filepath.Dir(page), target)
	if err != nil {
		return filepath.Base(target)
	}
	return filepath.ToSlash(rel)
}

// ReadIssueNumber returns the trimmed contents of path, or "" when the file
// does not exist.
func ReadIssueNumber(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from config
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read issue number: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
