package results

// Merge combines result batches into one set. Metadata comes from the first
// batch; all_tests is the concatenation of every batch's runs in order.
// Repeated trials are kept as separate runs; see Aggregate.
func Merge(batches ...*ResultSet) (*ResultSet, error) {
	if len(batches) == 0 || batches[0] == nil {
		return nil, &MissingDataError{What: "result batches"}
	}

	first := batches[0]
	merged := &ResultSet{
		Platform:    first.Platform,
		Git:         first.Git,
		TimeStarted: first.TimeStarted,
	}
	for _, batch := range batches {
		if batch == nil {
			continue
		}
		for _, run := range batch.AllTests {
			merged.AllTests = append(merged.AllTests, run.Clone())
		}
	}
	return merged, nil
}
