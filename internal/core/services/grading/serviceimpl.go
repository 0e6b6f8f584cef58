package grading

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/codequiz-2025.net/internal/core/ports/primary"
	"gitlab.com/codequiz-2025.net/internal/core/ports/secondary"
	"gitlab.com/codequiz-2025.net/internal/domain"
	"gitlab.com/codequiz-2025.net/internal/static/errs"
)

var _ IGradingService = (*GradingService)(nil)

// GradingService implements the grade aggregator. It owns the only writer
// path to the persisted grade field.
type GradingService struct {
	assignmentRepo secondary.AssignmentRepository
	submissionRepo secondary.SubmissionRepository
	logger         primary.Logger
}

// NewGradingService creates a new grading service
func NewGradingService(
	assignmentRepo secondary.AssignmentRepository,
	submissionRepo secondary.SubmissionRepository,
	logger primary.Logger,
) *GradingService {
	return &GradingService{
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		logger:         logger,
	}
}

// GradeInitial computes and persists the initial grade for a submission
func (s *GradingService) GradeInitial(ctx context.Context, assignment *domain.Assignment, submission *domain.StudentSubmission) (*domain.CompositeGrade, error) {
	grade := &domain.CompositeGrade{}
	status := domain.GradeStatusFinal

	if assignment.HasManualShortAnswers() {
		// Pending human or async review; the grade stays null until the
		// revision path resolves it.
		status = domain.GradeStatusPending
	} else {
		mcTotal := assignment.MultipleChoiceCount()
		value := 0.0
		if mcTotal > 0 {
			correct := countCorrectChoices(assignment, submission.Answers)
			value = domain.RoundGrade(100 * float64(correct) / float64(mcTotal))
		}
		grade.Value = &value
	}

	if err := s.submissionRepo.UpdateGrade(ctx, submission.ID, grade.Value, status); err != nil {
		s.logger.Error("Failed to persist grade",
			"submissionId", submission.ID,
			"error", err)
		return nil, fmt.Errorf("failed to persist grade: %w", err)
	}

	submission.Grade = grade.Value
	submission.GradeStatus = status

	s.logger.Info("Initial grade computed",
		"submissionId", submission.ID,
		"status", status)

	return grade, nil
}

// ReviseGrade recomputes the weighted composite once short-answer scores are
// available. The multiple-choice share is rebuilt from the stored answers
// and stored correct choices on every call, never taken from the request.
func (s *GradingService) ReviseGrade(ctx context.Context, callerID string, assignmentID uuid.UUID, shortAnswerScores map[int]float64) (*domain.GradeBreakdown, error) {
	assignment, err := s.assignmentRepo.GetAssignment(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	if assignment == nil {
		return nil, errs.AssignmentNotFound
	}

	submission, err := s.submissionRepo.GetByAssignmentAndOwner(ctx, assignmentID, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	if submission == nil {
		return nil, errs.NotSubmissionOwner
	}
	if !submission.Completed {
		return nil, errs.SubmissionNotCompleted
	}

	mcCount := assignment.MultipleChoiceCount()
	mcGrade := 0.0
	if mcCount > 0 {
		correct := countCorrectChoices(assignment, submission.Answers)
		mcGrade = domain.RoundGrade(100 * float64(correct) / float64(mcCount))
	}

	// Scores keyed to an index that is not a short-answer question of this
	// assignment, and out-of-range scores, are discarded from the mean
	// rather than clamped, so malformed input is never silently rewarded.
	saIndexes := assignment.ShortAnswerIndexes()
	valid := make([]float64, 0, len(shortAnswerScores))
	for idx, score := range shortAnswerScores {
		if !saIndexes[idx] {
			s.logger.Warn("Discarding score for unknown short-answer question",
				"assignmentId", assignmentID,
				"questionIndex", idx)
			continue
		}
		if score < 0 || score > 100 {
			s.logger.Warn("Discarding out-of-range short-answer score",
				"assignmentId", assignmentID,
				"questionIndex", idx,
				"score", score)
			continue
		}
		valid = append(valid, score)
	}

	saCount := len(valid)
	saAvg := 0.0
	for _, v := range valid {
		saAvg += v
	}
	if saCount > 0 {
		saAvg = domain.RoundGrade(saAvg / float64(saCount))
	}

	var combined float64
	switch {
	case saCount == 0:
		combined = mcGrade
	case mcCount == 0:
		combined = saAvg
	default:
		combined = domain.RoundGrade(
			(mcGrade*float64(mcCount) + saAvg*float64(saCount)) / float64(mcCount+saCount))
	}

	if err := s.submissionRepo.UpdateGrade(ctx, submission.ID, &combined, domain.GradeStatusFinal); err != nil {
		s.logger.Error("Failed to persist revised grade",
			"submissionId", submission.ID,
			"error", err)
		return nil, fmt.Errorf("failed to persist revised grade: %w", err)
	}

	s.logger.Info("Grade revised",
		"submissionId", submission.ID,
		"grade", combined,
		"mcCount", mcCount,
		"shortAnswerCount", saCount)

	return &domain.GradeBreakdown{
		Grade:            combined,
		MCGrade:          mcGrade,
		ShortAnswerAvg:   saAvg,
		MCCount:          mcCount,
		ShortAnswerCount: saCount,
	}, nil
}

// countCorrectChoices compares stored answers against the stored correct
// choices of the assignment's multiple-choice questions.
func countCorrectChoices(assignment *domain.Assignment, answers []domain.Answer) int {
	byIndex := make(map[int]domain.Answer, len(answers))
	for _, a := range answers {
		byIndex[a.QuestionIndex] = a
	}

	correct := 0
	for _, q := range assignment.Questions {
		if q.Kind != domain.QuestionMultipleChoice || q.CorrectChoice == nil {
			continue
		}
		answer, ok := byIndex[q.Index]
		if !ok || answer.Choice == nil {
			continue
		}
		if *answer.Choice == *q.CorrectChoice {
			correct++
		}
	}
	return correct
}
