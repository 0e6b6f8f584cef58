package domain

// Limits applied by the validator before any sandbox call is made.
const (
	MaxSourceLen     = 10000
	MaxTestCases     = 20
	MaxTestCaseInput = 1000
	MaxNestingDepth  = 20
)

// TestCase is an instructor-supplied input/expected-output pair. Value type,
// never mutated after construction.
type TestCase struct {
	Input          string
	ExpectedOutput string
}
