package results

import (
	"maps"
	"slices"
)

// Subcategories are the test categories a run can report, in the order the
// aggregator walks them.
var Subcategories = []string{
	"supercookies",
	"fingerprinting",
	"https",
	"misc",
	"navigation",
	"query",
	"trackers",
	"tracker_cookies",
}

// TrialFields are the result fields collected into Trials when repeated
// trials of one configuration are folded together.
var TrialFields = []string{
	"passed", "testFailed",
	"readSameFirstParty", "readDifferentFirstParty",
	"actual_value", "desired_value",
	"IsTorExit", "cloudflareDoH", "nextDoH", "result",
	"unsupported", "upgraded", "cookieFound",
}

// Aggregate folds repeated trials of the same configuration into one run per
// configuration key, in first-seen order. For each later trial, every
// TrialFields value is appended to the first run's value, which becomes
// Trials on the first fold. Runs without test results are dropped.
//
// A later trial that reports a test the first trial did not is an
// *AggregationInconsistencyError.
func Aggregate(set *ResultSet) (*ResultSet, error) {
	if set == nil {
		return nil, &MissingDataError{What: "result set"}
	}

	var order []string
	byKey := make(map[string]*TestRun)

	for idx, run := range set.AllTests {
		if !run.HasResults() {
			continue
		}
		key := run.Key()
		base, seen := byKey[key]
		if !seen {
			byKey[key] = run.Clone()
			order = append(order, key)
			continue
		}
		if err := foldTrial(base, run, idx); err != nil {
			return nil, err
		}
	}

	out := &ResultSet{
		Platform:    set.Platform,
		Git:         set.Git,
		TimeStarted: set.TimeStarted,
		AllTests:    make([]*TestRun, 0, len(order)),
	}
	for _, key := range order {
		out.AllTests = append(out.AllTests, byKey[key])
	}
	return out, nil
}

func foldTrial(base, trial *TestRun, trialIndex int) error {
	for _, subcategory := range Subcategories {
		baseTests := base.TestResults[subcategory]
		trialTests := trial.TestResults[subcategory]
		for _, testName := range slices.Sorted(maps.Keys(trialTests)) {
			rec := trialTests[testName]
			for _, field := range TrialFields {
				v, ok := rec.Get(field)
				if !ok {
					continue
				}
				baseRec := baseTests[testName]
				if baseRec == nil {
					return &AggregationInconsistencyError{
						Subcategory: subcategory,
						TestName:    testName,
						TrialIndex:  trialIndex,
					}
				}
				prev := baseRec.Value(field)
				trials, isTrials := prev.(Trials)
				if !isTrials {
					trials = Trials{prev}
				}
				baseRec.Set(field, append(trials, cloneValue(v)))
			}
		}
	}
	return nil
}
