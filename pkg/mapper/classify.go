package mapper

import (
	"github.com/privacytests/ptreport/pkg/results"
	"github.com/privacytests/ptreport/pkg/table"
)

// Classify returns the state of a cell from a record's passed, testFailed
// and unsupported fields, each a scalar or Trials.
//
// Unsupported wins over failure: a cell is na when every unsupported value is
// true, else bad when any passed value is exactly false, else good.
// testFailed does not affect the state; see AllTestsFailed.
func Classify(passed, testFailed, unsupported any) table.State {
	switch {
	case allEqual(unsupported, true):
		return table.StateNA
	case anyEqual(passed, false):
		return table.StateBad
	default:
		return table.StateGood
	}
}

// AllTestsFailed reports whether every trial reported a test failure.
func AllTestsFailed(testFailed any) bool {
	return allEqual(testFailed, true)
}

func classifyRecord(rec *results.Record) (table.State, bool) {
	return Classify(rec.Passed(), rec.TestFailed(), rec.Unsupported()), AllTestsFailed(rec.TestFailed())
}

// elements treats a raw JSON array like Trials and a scalar as one trial.
func elements(v any) []any {
	if arr, ok := v.([]any); ok {
		return arr
	}
	return results.Values(v)
}

func allEqual(v any, want bool) bool {
	for _, item := range elements(v) {
		if b, isBool := item.(bool); !isBool || b != want {
			return false
		}
	}
	return true
}

func anyEqual(v any, want bool) bool {
	for _, item := range elements(v) {
		if b, isBool := item.(bool); isBool && b == want {
			return true
		}
	}
	return false
}
