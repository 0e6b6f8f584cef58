// package submissionrepository contains the PostgreSQL implementation of the
// student submission repository
package submissionrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/codequiz-2025.net/internal/core/ports/primary"
	"gitlab.com/codequiz-2025.net/internal/domain"
)

// SubmissionRepository implements the SubmissionRepository interface with
// PostgreSQL
type SubmissionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewSubmissionRepository creates a new PostgreSQL submission repository
func NewSubmissionRepository(db *sqlx.DB, logger primary.Logger) *SubmissionRepository {
	return &SubmissionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSubmission saves a student submission to PostgreSQL. The grade columns
// are intentionally not part of the upsert; they change only through
// UpdateGrade.
func (r *SubmissionRepository) SaveSubmission(ctx context.Context, submission *domain.StudentSubmission) error {
	answersJSON, err := json.Marshal(submission.Answers)
	if err != nil {
		r.logger.Error("Failed to marshal submission answers", "error", err)
		return fmt.Errorf("failed to marshal submission answers: %w", err)
	}

	query := `
		INSERT INTO submissions (
			id, assignment_id, owner_id, answers, completed,
			grade, grade_status, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			answers = EXCLUDED.answers,
			completed = EXCLUDED.completed,
			submitted_at = EXCLUDED.submitted_at
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		submission.ID,
		submission.AssignmentID,
		submission.OwnerID,
		answersJSON,
		submission.Completed,
		submission.Grade,
		submission.GradeStatus,
		submission.SubmittedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save submission", "error", err)
		return fmt.Errorf("failed to save submission: %w", err)
	}

	return nil
}

// GetSubmission retrieves a submission from PostgreSQL by ID
func (r *SubmissionRepository) GetSubmission(ctx context.Context, submissionID uuid.UUID) (*domain.StudentSubmission, error) {
	query := `
		SELECT id, assignment_id, owner_id, answers, completed,
			   grade, grade_status, submitted_at
		FROM submissions
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, submissionID))
}

// GetByAssignmentAndOwner retrieves the submission a caller made for an
// assignment. The latest row wins if historic duplicates exist.
func (r *SubmissionRepository) GetByAssignmentAndOwner(ctx context.Context, assignmentID uuid.UUID, ownerID string) (*domain.StudentSubmission, error) {
	query := `
		SELECT id, assignment_id, owner_id, answers, completed,
			   grade, grade_status, submitted_at
		FROM submissions
		WHERE assignment_id = $1 AND owner_id = $2
		ORDER BY submitted_at DESC
		LIMIT 1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, assignmentID, ownerID))
}

// UpdateGrade writes the persisted grade field. Single writer path; only the
// grading service calls it.
func (r *SubmissionRepository) UpdateGrade(ctx context.Context, submissionID uuid.UUID, grade *float64, status domain.GradeStatus) error {
	query := `
		UPDATE submissions
		SET grade = $2, grade_status = $3
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, submissionID, grade, status)
	if err != nil {
		r.logger.Error("Failed to update grade", "submissionId", submissionID, "error", err)
		return fmt.Errorf("failed to update grade: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("submission not found: %s", submissionID)
	}

	return nil
}

func (r *SubmissionRepository) scanOne(row *sql.Row) (*domain.StudentSubmission, error) {
	var submission domain.StudentSubmission
	var answersJSON []byte
	var grade sql.NullFloat64

	err := row.Scan(
		&submission.ID,
		&submission.AssignmentID,
		&submission.OwnerID,
		&answersJSON,
		&submission.Completed,
		&grade,
		&submission.GradeStatus,
		&submission.SubmittedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Failed to scan submission row", "error", err)
		return nil, fmt.Errorf("failed to scan submission row: %w", err)
	}

	if grade.Valid {
		submission.Grade = &grade.Float64
	}

	if err := json.Unmarshal(answersJSON, &submission.Answers); err != nil {
		r.logger.Error("Failed to unmarshal submission answers", "error", err)
		return nil, fmt.Errorf("failed to unmarshal submission answers: %w", err)
	}

	return &submission, nil
}
