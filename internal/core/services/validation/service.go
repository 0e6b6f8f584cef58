package validation

import (
	"gitlab.com/codequiz-2025.net/internal/domain"
)

// IValidationService is the static gate every code submission passes before
// it may reach the execution service. Pure over its inputs; a rejection is
// terminal for the submission.
type IValidationService interface {
	// Validate applies every check to the source and test-case inputs
	Validate(sourceCode string, testCases []domain.TestCase) domain.ValidationVerdict
}
