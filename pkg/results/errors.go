package results

import "fmt"

// MissingDataError reports that a required input was absent or could not be
// loaded. It aborts a report build before anything is written.
type MissingDataError struct {
	What string // what was missing, e.g. "result batches"
	Err  error  // underlying cause, if any
}

func (e *MissingDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missing %s: %v", e.What, e.Err)
	}
	return "missing " + e.What
}

func (e *MissingDataError) Unwrap() error { return e.Err }

// AggregationInconsistencyError reports a repeated trial that ran a test the
// first trial of its configuration did not.
type AggregationInconsistencyError struct {
	Subcategory string
	TestName    string
	TrialIndex  int // 0-based position of the offending run in the merged all_tests
}

func (e *AggregationInconsistencyError) Error() string {
	return fmt.Sprintf("can't find the %q %s test in testing round %d", e.TestName, e.Subcategory, e.TrialIndex)
}
