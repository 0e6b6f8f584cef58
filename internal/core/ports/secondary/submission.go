package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codequiz-2025.net/internal/domain"
)

type SubmissionRepository interface {
	// SaveSubmission saves a student submission record
	SaveSubmission(ctx context.Context, submission *domain.StudentSubmission) error

	// GetSubmission retrieves a submission by ID, nil if not found
	GetSubmission(ctx context.Context, submissionID uuid.UUID) (*domain.StudentSubmission, error)

	// GetByAssignmentAndOwner retrieves the submission a caller made for an
	// assignment, nil if not found
	GetByAssignmentAndOwner(ctx context.Context, assignmentID uuid.UUID, ownerID string) (*domain.StudentSubmission, error)

	// UpdateGrade writes the persisted grade field. This is the single
	// writer path for grades; only the grade aggregator calls it.
	UpdateGrade(ctx context.Context, submissionID uuid.UUID, grade *float64, status domain.GradeStatus) error
}
