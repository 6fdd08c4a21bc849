package domain

// Outcome classifies the result of processing one target.
type Outcome string

const (
	// OutcomeSkipped indicates the target was up to date.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeBuilt indicates the target was rebuilt and its entry committed.
	OutcomeBuilt Outcome = "built"
	// OutcomeFailed indicates the build failed; the manifest is untouched.
	OutcomeFailed Outcome = "failed"
)

// BuildResult is the transient per-target outcome of one batch pass. It is
// never persisted; it only drives logging and the end-of-batch flush decision.
type BuildResult struct {
	Target      string
	Outcome     Outcome
	Reason      string
	Fingerprint string
	Err         error
}

// BatchSummary accumulates per-target results across one batch run.
type BatchSummary struct {
	Built   int
	Skipped int
	Failed  int
	Results []BuildResult
}

// Add records one result in the summary.
func (s *BatchSummary) Add(res BuildResult) {
	switch res.Outcome {
	case OutcomeBuilt:
		s.Built++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
	}
	s.Results = append(s.Results, res)
}

// Updated reports whether at least one target was built, which is the sole
// condition for persisting the manifest.
func (s *BatchSummary) Updated() bool {
	return s.Built > 0
}
