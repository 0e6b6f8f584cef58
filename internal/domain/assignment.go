package domain

import (
	"time"

	"github.com/google/uuid"
)

// QuestionKind discriminates the sub-question variants of an assignment
type QuestionKind string

const (
	QuestionMultipleChoice QuestionKind = "multiple_choice"
	QuestionShortAnswer    QuestionKind = "short_answer"
	QuestionCode           QuestionKind = "code"
)

// GradingMode is fixed per question at creation time, not inferred at
// grading time, so the submission path and the revision path agree.
type GradingMode string

const (
	GradingModeAuto   GradingMode = "auto"
	GradingModeManual GradingMode = "manual"
)

// Question is one sub-question of an assignment. CorrectChoice is only set
// for multiple-choice questions and is never sent to students.
type Question struct {
	Index         int          `json:"index"`
	Kind          QuestionKind `json:"kind"`
	Mode          GradingMode  `json:"mode"`
	Prompt        string       `json:"prompt"`
	Choices       []string     `json:"choices,omitempty"`
	CorrectChoice *int         `json:"correctChoice,omitempty"`
}

// Assignment is the server-held record of a question batch. The grade
// aggregator trusts these stored questions, never client-supplied answers
// about them.
type Assignment struct {
	ID        uuid.UUID
	CreatedBy string
	Title     string
	Questions []Question
	CreatedAt time.Time
}

// NewAssignment creates a new assignment
func NewAssignment(createdBy, title string, questions []Question) *Assignment {
	return &Assignment{
		ID:        uuid.New(),
		CreatedBy: createdBy,
		Title:     title,
		Questions: questions,
		CreatedAt: time.Now(),
	}
}

// MultipleChoiceCount returns how many multiple-choice questions the
// assignment has
func (a *Assignment) MultipleChoiceCount() int {
	n := 0
	for _, q := range a.Questions {
		if q.Kind == QuestionMultipleChoice {
			n++
		}
	}
	return n
}

// HasManualShortAnswers reports whether any short-answer question is under a
// manual grading policy, which forces the initial grade to pending.
func (a *Assignment) HasManualShortAnswers() bool {
	for _, q := range a.Questions {
		if q.Kind == QuestionShortAnswer && q.Mode == GradingModeManual {
			return true
		}
	}
	return false
}

// ShortAnswerIndexes returns the question indexes that may carry a revision
// score. Scores keyed to any other index are not part of the assignment and
// must not enter the composite.
func (a *Assignment) ShortAnswerIndexes() map[int]bool {
	indexes := make(map[int]bool)
	for _, q := range a.Questions {
		if q.Kind == QuestionShortAnswer {
			indexes[q.Index] = true
		}
	}
	return indexes
}

// Answer is one sub-answer of a student submission
type Answer struct {
	QuestionIndex int     `json:"questionIndex"`
	Choice        *int    `json:"choice,omitempty"`
	Text          *string `json:"text,omitempty"`
}

// StudentSubmission is the server-held record of a student's answers for one
// assignment. Grade and GradeStatus are written only through the grade
// aggregator.
type StudentSubmission struct {
	ID           uuid.UUID
	AssignmentID uuid.UUID
	OwnerID      string
	Answers      []Answer
	Completed    bool
	Grade        *float64
	GradeStatus  GradeStatus
	SubmittedAt  time.Time
}

// NewStudentSubmission creates a new student submission record
func NewStudentSubmission(assignmentID uuid.UUID, ownerID string, answers []Answer) *StudentSubmission {
	return &StudentSubmission{
		ID:           uuid.New(),
		AssignmentID: assignmentID,
		OwnerID:      ownerID,
		Answers:      answers,
		Completed:    true,
		GradeStatus:  GradeStatusUnset,
		SubmittedAt:  time.Now(),
	}
}
