package grades

import (
	"github.com/google/uuid"

	"gitlab.com/codequiz-2025.net/internal/domain"
)

// CreateAssignmentRequest represents an instructor creating a question batch
type CreateAssignmentRequest struct {
	Title     string            `json:"title"`
	Questions []domain.Question `json:"questions"`
}

// CreateAssignmentResponse represents a response to assignment creation
type CreateAssignmentResponse struct {
	AssignmentID uuid.UUID `json:"assignmentId"`
}

// SubmitRequest represents a student submitting answers for grading. Any
// grade-like field a client might attach is ignored by construction: only
// answers are read.
type SubmitRequest struct {
	Answers []domain.Answer `json:"answers"`
}

// SubmitResponse carries the initial grade, null while pending manual review
type SubmitResponse struct {
	SubmissionID uuid.UUID          `json:"submissionId"`
	Grade        *float64           `json:"grade"`
	Status       domain.GradeStatus `json:"status"`
}

// ReviseRequest represents a grade revision after short answers were graded
type ReviseRequest struct {
	AssignmentID      uuid.UUID          `json:"assignmentId"`
	ShortAnswerGrades map[string]float64 `json:"shortAnswerGrades"`
}
