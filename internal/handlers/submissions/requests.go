package submissions

// TestCasePayload is one instructor test case in an execute request
type TestCasePayload struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
}

// ExecuteRequest represents a submission-for-grading request
type ExecuteRequest struct {
	Code      string            `json:"code"`
	Language  string            `json:"language"`
	TestCases []TestCasePayload `json:"testCases"`
}

// CaseResultPayload is one per-case verdict in an execute response
type CaseResultPayload struct {
	Input          string  `json:"input"`
	ExpectedOutput string  `json:"expectedOutput"`
	ActualOutput   *string `json:"actualOutput"`
	Passed         bool    `json:"passed"`
	Error          *string `json:"error"`
}

// ExecuteResponse represents a successful execute response
type ExecuteResponse struct {
	Success     bool                `json:"success"`
	AllPassed   bool                `json:"allPassed"`
	PassedCount int                 `json:"passedCount"`
	TotalCount  int                 `json:"totalCount"`
	Results     []CaseResultPayload `json:"results"`
}
