package locate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privacytests/ptreport/pkg/results"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
}

func TestLatestResultsFile(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "20240101-000000", "z.json"))
	touch(t, filepath.Join(dir, "20240302-101010", "a.json"))
	touch(t, filepath.Join(dir, "20240302-101010", "b.json"))
	touch(t, filepath.Join(dir, "20240302-101010", "c.html"))
	touch(t, filepath.Join(dir, "latest.html"))

	got, err := LatestResultsFile(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "20240302-101010", "b.json"), got)
}

func TestLatestResultsFile_Missing(t *testing.T) {
	tests := []struct {
		name  string
		setup func(dir string)
	}{
		{"no directory", func(dir string) { require.NoError(t, os.RemoveAll(dir)) }},
		{"no run directories", func(dir string) { touch(t, filepath.Join(dir, "x.json")) }},
		{"no json in latest run", func(dir string) { touch(t, filepath.Join(dir, "2024", "x.html")) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(dir)

			_, err := LatestResultsFile(dir)
			var missing *results.MissingDataError
			assert.True(t, errors.As(err, &missing))
		})
	}
}

func TestOutputsFor(t *testing.T) {
	out := OutputsFor("results", filepath.Join("results", "2024", "run.json"))

	assert.Equal(t, filepath.Join("results", "2024", "run.html"), out.Page)
	assert.Equal(t, filepath.Join("results", "latest.html"), out.Latest)
	assert.Equal(t, filepath.Join("results", "2024", "run-preview.png"), out.Preview)
	assert.Equal(t, "run.json", Link(out.Page, out.Results))
	assert.Equal(t, "2024/run.json", Link(out.Latest, out.Results))
	assert.Equal(t, "2024/run-preview.png", Link(out.Latest, out.Preview))
}

func TestReadIssueNumber(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "issue-number")

	got, err := ReadIssueNumber(path)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, os.WriteFile(path, []byte(" 17\n"), 0o600))
	got, err = ReadIssueNumber(path)
	require.NoError(t, err)
	assert.Equal(t, "17", got)
}
