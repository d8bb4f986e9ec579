package results

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-json-experiment/json"
)

// ReadFile parses a raw results file from disk.
func ReadFile(path string) (*ResultSet, error) {
	f, err := os.Open(path) //nolint:gosec // CLI reads user-specified results files
	if err != nil {
		return nil, &MissingDataError{What: "results file " + path, Err: err}
	}
	defer f.Close()

	set, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// ReadFiles parses every file in order. The first failure aborts.
func ReadFiles(paths []string) ([]*ResultSet, error) {
	if len(paths) == 0 {
		return nil, &MissingDataError{What: "results files"}
	}
	sets := make([]*ResultSet, 0, len(paths))
	for _, path := range paths {
		set, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// Read parses a raw results batch from an io.Reader.
func Read(r io.Reader) (*ResultSet, error) {
	var set ResultSet
	if err := json.UnmarshalRead(r, &set); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	if set.AllTests == nil {
		return nil, &MissingDataError{What: "all_tests"}
	}
	return &set, nil
}

// ReadBytes parses a raw results batch from a byte slice.
func ReadBytes(data []byte) (*ResultSet, error) {
	return Read(bytes.NewReader(data))
}
