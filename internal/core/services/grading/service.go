package grading

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codequiz-2025.net/internal/domain"
)

// IGradingService is the single authority over the persisted grade field.
// Grades are always computed from server-held records, never accepted from a
// caller-supplied value.
type IGradingService interface {
	// GradeInitial grades a freshly submitted assignment. The grade is nil
	// (pending) when any short-answer question is under manual grading;
	// otherwise it is the multiple-choice percentage. Persists the grade and
	// returns it.
	GradeInitial(ctx context.Context, assignment *domain.Assignment, submission *domain.StudentSubmission) (*domain.CompositeGrade, error)

	// ReviseGrade recomputes the composite after short-answer scores arrive.
	// Rejects unless the submission belongs to callerID and is marked
	// complete. Scores outside [0,100] are discarded, not clamped.
	ReviseGrade(ctx context.Context, callerID string, assignmentID uuid.UUID, shortAnswerScores map[int]float64) (*domain.GradeBreakdown, error)
}
