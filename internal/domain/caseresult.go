package domain

// CaseResult is the outcome of running one test case. Immutable once created.
// ActualOutput is nil when the case never produced output (compile failure,
// transport failure); ErrorDetail is nil for a clean run.
type CaseResult struct {
	TestCase     TestCase
	ActualOutput *string
	Passed       bool
	ErrorDetail  *string
}

// ExecutionReport aggregates the case results for one submission. It is the
// only artifact the orchestrator returns to the rest of the system.
type ExecutionReport struct {
	AllPassed   bool
	PassedCount int
	TotalCount  int
	Results     []CaseResult
}

// NewExecutionReport tallies the given results into a report
func NewExecutionReport(results []CaseResult) *ExecutionReport {
	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}
	return &ExecutionReport{
		AllPassed:   passed == len(results),
		PassedCount: passed,
		TotalCount:  len(results),
		Results:     results,
	}
}
