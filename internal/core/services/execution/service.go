package execution

import (
	"context"

	"gitlab.com/codequiz-2025.net/internal/domain"
)

// IExecutionService runs a validated submission against its test cases and
// returns the aggregated report. Callable only after the validation service
// accepted the submission.
type IExecutionService interface {
	Execute(ctx context.Context, submission *domain.CodeSubmission) (*domain.ExecutionReport, error)
}
